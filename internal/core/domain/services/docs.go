// Package services provides domain services that coordinate more than one
// aggregate of the POS domain.
//
// The package includes:
//   - PaymentApplier: validates a payment against an order and marks the order paid
package services
