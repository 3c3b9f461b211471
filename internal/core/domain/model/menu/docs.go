// Package menu provides the MenuItem entity, the reference data staff order
// against. Orders never own menu items; they copy a price and name snapshot
// into their own line items at the moment an item is added.
package menu
