// Package staff models the hotel employees who operate the POS and the
// capabilities their roles grant.
//
// Roles are ordered: Staff < Manager < Admin < SuperAdmin. Every permission
// check in the application layer goes through an AdminUser capability method
// so role comparisons live in one place.
package staff
