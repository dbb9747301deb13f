package commands

import (
	"context"

	"shippix/internal/core/domain/model/kernel"
	"shippix/internal/core/domain/model/order"
	"shippix/internal/core/ports"
)

// ReceivedHandoff is a handoff redeemed by a page, together with the fresh
// token under which it was stored again for the page's next action.
type ReceivedHandoff struct {
	Handoff order.Handoff
	Token   kernel.UUID
}

// ReceiveHandoffCommandHandler redeems the token a page was opened with and
// relays the handoff under a new token. Reloading the page therefore finds the
// original token spent and shows the "no data" fallback, while the forms on the
// page carry the relay token forward.
type ReceiveHandoffCommandHandler struct {
	store ports.HandoffStore
}

func NewReceiveHandoffCommandHandler(store ports.HandoffStore) ReceiveHandoffCommandHandler {
	return ReceiveHandoffCommandHandler{store: store}
}

// Handle returns an *errs.ObjectNotFoundError when the token is spent, expired,
// unknown or addresses a handoff of another stage. In the last case the
// handoff stays redeemable by its own page.
func (h ReceiveHandoffCommandHandler) Handle(ctx context.Context, cmd ReceiveHandoffCommand) (ReceivedHandoff, error) {
	if err := cmd.Validate(); err != nil {
		return ReceivedHandoff{}, err
	}

	handoff, err := h.store.Take(ctx, cmd.Token(), cmd.Expected())
	if err != nil {
		return ReceivedHandoff{}, err
	}

	relay, err := h.store.Put(ctx, handoff)
	if err != nil {
		return ReceivedHandoff{}, err
	}

	return ReceivedHandoff{Handoff: handoff, Token: relay}, nil
}
