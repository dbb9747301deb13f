package ports

import (
	"context"

	"shippix/internal/core/domain/model/content"
)

// ContentRepository serves the static content of the informational pages.
type ContentRepository interface {
	Landing(ctx context.Context) (content.Landing, error)
	HelpCenter(ctx context.Context) (content.HelpCenter, error)
	Dashboard(ctx context.Context) (content.Dashboard, error)
	AdminConsole(ctx context.Context) (content.AdminConsole, error)

	// ShipmentSample returns the canned tracking state of a shipment. Unknown
	// IDs yield an *errs.ObjectNotFoundError.
	ShipmentSample(ctx context.Context, id string) (content.ShipmentSample, error)
}
