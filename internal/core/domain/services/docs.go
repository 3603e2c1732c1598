// Package services provides the domain services of order fulfillment.
//
// The package includes:
//   - EtaEstimator: computes a point-in-time delivery estimate from order status
//     and courier assignment
//   - AssignmentTracker: attaches and releases couriers while enforcing order eligibility
//   - FulfillmentGate: decides whether a payment may be recorded and whether a review
//     may be submitted
//
// All services are pure: they take already-loaded aggregates and return decisions.
// Loading state in a consistent snapshot is the job of the application layer.
package services
