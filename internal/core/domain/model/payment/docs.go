// Package payment models a settlement recorded against an order.
//
// A Payment is immutable once recorded. Only a completed payment whose amount
// covers the order total can mark an order paid; see services.PaymentApplier.
package payment
