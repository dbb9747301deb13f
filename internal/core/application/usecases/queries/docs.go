// Package queries contains the read-side use cases of shippix. Queries never
// touch the handoff store: pages redeem their handoff through
// commands.ReceiveHandoffCommandHandler and pass the result in.
package queries
