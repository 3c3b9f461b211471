// Package order provides the Order aggregate of the hotel POS: the line items
// of one order, the totals derived from them, and the status lifecycle.
//
// The package includes:
//   - Order: the aggregate root owning its line items and derived totals
//   - LineItem: one line of an order with the menu item price snapshotted at add time
//   - Status: the lifecycle pending -> preparing -> ready -> delivered -> paid
//   - Type: room-service, restaurant or bar
//   - StatusChanged, Placed: domain events raised by the aggregate
//
// Key business rules:
//   - subtotal = Σ(unit price × quantity), tax = subtotal × tax rate rounded to
//     the nearest minor unit, total = subtotal + tax; all three are recomputed
//     after every line mutation and are never set directly
//   - a line quantity is always at least 1; decrementing the last unit removes the line
//   - status only moves one step forward at a time; payment is the one side channel
//     that moves an order straight to paid
//   - line mutations with an unknown line id or a quantity below 1 are no-ops
package order
