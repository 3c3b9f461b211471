// Package kernel provides the shared value objects of the hotel POS domain model.
//
// The package includes:
//   - UUID: identifier of every entity and aggregate
//   - Money: an amount in integer minor currency units
//   - TaxRate: a rate in basis points with the tax rounding policy
//   - Location: where an order goes, a hotel room or a restaurant table
//   - DomainEvent: the contract for events raised by aggregates
//
// Value objects are immutable and are only valid when built through their
// constructors; zero values fail Validate.
package kernel
