// Package kernel holds the primitives shared by every shippix domain package.
//
// At present that is UUID, the identifier used for orders and for the one-shot
// handoff tokens that carry an order from one page to the next. Values in this
// package are immutable and safe for concurrent use.
package kernel
