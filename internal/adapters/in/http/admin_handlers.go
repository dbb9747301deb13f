package http

import (
	"errors"
	"net/http"

	"shippix/internal/core/application/usecases/commands"
	"shippix/internal/core/application/usecases/queries"
	"shippix/internal/core/domain/model/content"
	"shippix/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

type adminOrdersView struct {
	Orders []content.AdminOrder
	Notice string
}

func (s *Server) adminConsole(c echo.Context) (content.AdminConsole, error) {
	return s.h.GetPageContent.AdminConsole(c.Request().Context(), queries.NewGetPageContentQuery())
}

// AdminOverview handles GET /admin/dashboard.
func (s *Server) AdminOverview(c echo.Context) error {
	console, err := s.adminConsole(c)
	if err != nil {
		return err
	}
	return s.render(c, http.StatusOK, "admin-overview", "Overview", console)
}

// AdminOrders handles GET /admin/orders.
func (s *Server) AdminOrders(c echo.Context) error {
	console, err := s.adminConsole(c)
	if err != nil {
		return err
	}
	return s.render(c, http.StatusOK, "admin-orders", "Order Review", adminOrdersView{Orders: console.Orders})
}

// DecideOrder handles POST /admin/orders/:id/:decision. The decision is shown
// on the rendered list only.
func (s *Server) DecideOrder(c echo.Context) error {
	decision, err := content.ParseDecision(c.Param("decision"))
	if err != nil {
		return echo.ErrNotFound
	}

	cmd, err := commands.NewDecideOrderReviewCommand(c.Param("id"), decision)
	if err != nil {
		return echo.ErrNotFound
	}

	orders, err := s.h.DecideOrderReview.Handle(c.Request().Context(), cmd)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return echo.ErrNotFound
	}
	if errors.Is(err, errs.ErrValueIsInvalid) {
		console, consoleErr := s.adminConsole(c)
		if consoleErr != nil {
			return consoleErr
		}
		return s.render(c, http.StatusConflict, "admin-orders", "Order Review", adminOrdersView{
			Orders: console.Orders,
			Notice: "Order " + cmd.OrderID() + " has already been reviewed.",
		})
	}
	if err != nil {
		return err
	}

	notice := "Order " + cmd.OrderID() + " approved."
	if decision == content.Reject {
		notice = "Order " + cmd.OrderID() + " rejected."
	}
	return s.render(c, http.StatusOK, "admin-orders", "Order Review", adminOrdersView{Orders: orders, Notice: notice})
}

// AdminBusinessOwners handles GET /admin/business-owners.
func (s *Server) AdminBusinessOwners(c echo.Context) error {
	console, err := s.adminConsole(c)
	if err != nil {
		return err
	}
	return s.render(c, http.StatusOK, "admin-owners", "Business Owners", console.BusinessOwners)
}

// AdminAnalytics handles GET /admin/analytics.
func (s *Server) AdminAnalytics(c echo.Context) error {
	console, err := s.adminConsole(c)
	if err != nil {
		return err
	}
	return s.render(c, http.StatusOK, "admin-analytics", "Analytics & Reports", console.Analytics)
}
