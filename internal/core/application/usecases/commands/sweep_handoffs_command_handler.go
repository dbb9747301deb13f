package commands

import (
	"context"
	"log/slog"

	"shippix/internal/core/ports"
)

type SweepHandoffsCommandHandler struct {
	store  ports.HandoffStore
	logger *slog.Logger
}

func NewSweepHandoffsCommandHandler(store ports.HandoffStore, logger *slog.Logger) SweepHandoffsCommandHandler {
	return SweepHandoffsCommandHandler{store: store, logger: logger.With("component", "sweep_handoffs_handler")}
}

// Handle returns the number of handoffs removed.
func (h SweepHandoffsCommandHandler) Handle(ctx context.Context, cmd SweepHandoffsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	removed, err := h.store.DeleteExpired(ctx)
	if err != nil {
		return 0, err
	}

	if removed > 0 {
		h.logger.InfoContext(ctx, "Expired handoffs removed", "count", removed)
	}
	return removed, nil
}
