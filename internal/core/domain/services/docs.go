// Package services provides the domain services of shippix: operations that
// belong to no single value object.
//
// The package includes:
//   - ShippingEstimator: the shipping fee formula and its cancellable quote request
package services
