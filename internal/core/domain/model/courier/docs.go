// Package courier models the attachment of a courier to an order.
//
// An Assignment is created by dispatch once a courier accepts a confirmed order.
// There is at most one active assignment per order; it is removed only when the
// order is cancelled.
package courier
