// Package courier provides the Courier aggregate: a delivery person, the
// postal codes they cover with an ETA each, and their availability.
//
// Business rules:
//   - a courier covers a postal code at most once, with an ETA of 1 to 120 minutes
//   - a courier bound to an order is never dispatched again until released
//   - after a delivery the courier stays unavailable for a 30 minute cool-down
package courier
