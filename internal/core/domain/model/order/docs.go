// Package order models a shipping order on its way through the submission
// workflow: Create Order, Review Order, Payment and Dashboard.
//
// The package includes:
//   - Draft: the validated fields of the create-order form
//   - Estimate and Cost: the shipping fee quoted for a draft
//   - PaymentMethod: the fixed payment options, Visa by default
//   - Stage: the workflow state machine
//   - Handoff: the per-stage transfer objects passed between pages
//
// Key business rules:
//   - A draft only exists once the create-order form validates
//   - The order ID is assigned when a draft enters review and survives edits
//   - Each handoff carries only the fields valid for its stage
//   - Completed is final; nothing in this package is persisted
package order
