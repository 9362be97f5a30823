// Package kernel provides the value objects shared by every aggregate of the pizzeria engine.
//
// The package includes:
//   - UUID: identifier of customers, catalog items, orders, couriers and discount codes
//   - PostalCode: delivery area key used by customers and courier coverage
//   - calendar helpers used by the age, birthday and expiry rules
//
// Value objects are immutable; the ones with a constructor embed a guard so a
// zero value fails Validate.
package kernel
