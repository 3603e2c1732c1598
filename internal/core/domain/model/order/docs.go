// Package order implements the Order aggregate and its status state machine.
//
// Business rules:
//   - Status moves forward one step at a time:
//     Created -> Confirmed -> Preparing -> OutForDelivery -> Delivered
//   - Any non-terminal order can be cancelled
//   - Delivered and Cancelled are terminal; every transition out of them fails
//   - A courier can be attached only between Confirmed and OutForDelivery
//   - The order carries a version used for optimistic concurrency by its repository
//
// The status is changed exclusively through TransitionTo; there is no raw setter.
package order
