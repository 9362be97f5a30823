// Package services provides domain services of the pizzeria engine that span
// more than one aggregate.
//
// The package includes:
//   - the constraint validator: stateless checks run before any mutating commit
//   - DiscountCalculator: stacks loyalty, birthday and promo code discounts
//   - CourierDispatcher: ranks covering couriers and binds the best one to an order
package services
