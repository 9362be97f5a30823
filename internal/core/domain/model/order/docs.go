// Package order provides the Order aggregate of the pizzeria engine: its line
// items, its lifecycle state machine, the cancellation audit record and the
// domain events raised on every status change.
//
// The package includes:
//   - Order: the aggregate root, created already priced and discounted
//   - Item: a price-snapshotted order line of kind pizza, drink or dessert
//   - Status: the lifecycle state machine
//   - Cancellation: an append-only audit entry written when an order is cancelled
//   - StatusChanged: the event collected for publishing after commit
//
// Key business rules:
//   - an order contains at least one pizza line
//   - line quantities lie in 1..20
//   - the total lies in [0, 1000) and the discount never exceeds the subtotal
//   - estimated and actual delivery times are never before the creation time
//   - customers may cancel within five minutes of creation, staff at any time
//     before the order is out for delivery
//   - Delivered and Cancelled are terminal
package order
