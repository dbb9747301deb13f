package commands

import (
	"context"
	"errors"
	"log/slog"

	"shippix/internal/core/domain/model/kernel"
	"shippix/internal/core/domain/model/order"
	"shippix/internal/core/ports"
	"shippix/internal/pkg/errs"
)

// SubmitDraftCommandHandler moves an order from Drafting to Reviewing: it
// validates the draft, quotes it and stores the ReviewHandoff for the review
// page.
//
// Example:
//
//	handler := NewSubmitDraftCommandHandler(store, estimateHandler, logger)
//	token, err := handler.Handle(ctx, cmd)
//
//	var invalid *validation.InvalidFormError
//	if errors.As(err, &invalid) {
//	    // re-render the form with invalid.Fields
//	}
type SubmitDraftCommandHandler struct {
	store    ports.HandoffStore
	estimate EstimateShippingCommandHandler
	logger   *slog.Logger
}

func NewSubmitDraftCommandHandler(
	store ports.HandoffStore,
	estimate EstimateShippingCommandHandler,
	logger *slog.Logger,
) SubmitDraftCommandHandler {
	return SubmitDraftCommandHandler{
		store:    store,
		estimate: estimate,
		logger:   logger.With("component", "submit_draft_handler"),
	}
}

// Handle returns the token of the stored ReviewHandoff. A resume token that can
// no longer be redeemed starts a new order instead of failing the submission.
func (h SubmitDraftCommandHandler) Handle(ctx context.Context, cmd SubmitDraftCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	draft, err := order.NewDraft(cmd.Values())
	if err != nil {
		return kernel.UUID{}, err
	}

	estimateCmd, err := NewEstimateShippingCommand(draft.WeightKg())
	if err != nil {
		return kernel.UUID{}, err
	}

	estimate, err := h.estimate.Handle(ctx, estimateCmd)
	if err != nil {
		return kernel.UUID{}, err
	}

	review, err := h.review(ctx, cmd.Resume(), draft, estimate)
	if err != nil {
		return kernel.UUID{}, err
	}

	token, err := h.store.Put(ctx, review)
	if err != nil {
		return kernel.UUID{}, err
	}

	h.logger.InfoContext(ctx, "Order submitted for review",
		"order_id", review.OrderID().String(),
		"shipping_cost", review.ShippingCost().String(),
	)
	return token, nil
}

func (h SubmitDraftCommandHandler) review(
	ctx context.Context,
	resume *kernel.UUID,
	draft order.Draft,
	estimate order.Estimate,
) (order.ReviewHandoff, error) {
	if resume == nil {
		return order.NewReviewHandoff(draft, estimate)
	}

	edited, err := takeAs[order.DraftHandoff](ctx, h.store, *resume)
	if errors.Is(err, errs.ErrObjectNotFound) {
		h.logger.WarnContext(ctx, "Draft handoff is gone, submitting as a new order", "token", resume.String())
		return order.NewReviewHandoff(draft, estimate)
	}
	if err != nil {
		return order.ReviewHandoff{}, err
	}

	return edited.Resubmit(draft, estimate)
}
