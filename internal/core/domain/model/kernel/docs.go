// Package kernel holds the shared value objects of the fulfillment domain.
//
// UUID identifies orders, customers, restaurants, couriers, payments and reviews.
// Its zero value is invalid, so an identifier that was never set is caught by Validate.
package kernel
