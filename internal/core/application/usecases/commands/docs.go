// Package commands contains the write-side use cases of shippix.
//
// Every command follows the same shape: a value built by its constructor and
// guarded against zero values, and a handler whose Handle method validates the
// command before doing any work. Handlers of the order workflow move handoffs
// through a ports.HandoffStore: they take the handoff addressed by the incoming
// token, apply one stage transition and put the result under a fresh token.
package commands
