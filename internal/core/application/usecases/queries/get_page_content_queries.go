package queries

import (
	"context"
	"errors"

	"shippix/internal/core/domain/model/content"
	"shippix/internal/core/ports"
	"shippix/internal/pkg/guard"
)

var ErrGetPageContentQueryIsNotConstructed = errors.New(
	"GetPageContentQuery must be created via NewGetPageContentQuery constructor",
)

// GetPageContentQuery reads the static content of an informational page: the
// landing page, the help center or the admin console.
type GetPageContentQuery struct {
	guard guard.ConstructorGuard
}

func NewGetPageContentQuery() GetPageContentQuery {
	return GetPageContentQuery{guard: guard.NewConstructorGuard()}
}

func (q GetPageContentQuery) Validate() error {
	return q.guard.Validate(ErrGetPageContentQueryIsNotConstructed)
}

// GetPageContentQueryHandler serves the static pages from the content repository.
//
// Example:
//
//	handler := NewGetPageContentQueryHandler(fixtures)
//	help, err := handler.HelpCenter(ctx, NewGetPageContentQuery())
type GetPageContentQueryHandler struct {
	content ports.ContentRepository
}

func NewGetPageContentQueryHandler(content ports.ContentRepository) GetPageContentQueryHandler {
	return GetPageContentQueryHandler{content: content}
}

func (h GetPageContentQueryHandler) Landing(ctx context.Context, query GetPageContentQuery) (content.Landing, error) {
	if err := query.Validate(); err != nil {
		return content.Landing{}, err
	}
	return h.content.Landing(ctx)
}

func (h GetPageContentQueryHandler) HelpCenter(ctx context.Context, query GetPageContentQuery) (content.HelpCenter, error) {
	if err := query.Validate(); err != nil {
		return content.HelpCenter{}, err
	}
	return h.content.HelpCenter(ctx)
}

func (h GetPageContentQueryHandler) AdminConsole(ctx context.Context, query GetPageContentQuery) (content.AdminConsole, error) {
	if err := query.Validate(); err != nil {
		return content.AdminConsole{}, err
	}
	return h.content.AdminConsole(ctx)
}
