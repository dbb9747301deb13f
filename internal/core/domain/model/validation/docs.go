// Package validation implements the field validators of every shippix form as a
// declarative rule table.
//
// A Form is an ordered list of Fields. Each Field owns a list of Rules, and each
// Rule pairs a Predicate with the message shown when the predicate does not hold.
// Rules are evaluated in order and the first failing rule wins, so a field never
// reports more than one message at a time.
//
// The forms known to the service are registered by name and can be retrieved with
// Lookup:
//
//	form, ok := validation.Lookup(validation.FormCreateOrder)
//	if !ok {
//	    // unknown form
//	}
//	errs := form.Check(values)       // every field evaluated
//	msg := form.CheckField("city", values)
//	ready := form.IsComplete(values) // drives the "Calculate" action
//
// Validators are pure: they read the submitted Values and never mutate them.
package validation
