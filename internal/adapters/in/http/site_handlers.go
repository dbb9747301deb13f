package http

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"shippix/internal/core/application/usecases/commands"
	"shippix/internal/core/application/usecases/queries"
	"shippix/internal/core/domain/model/content"
	"shippix/internal/core/domain/model/shipment"
	"shippix/internal/core/domain/model/validation"
	"shippix/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

type landingView struct {
	Landing    content.Landing
	TrackingID string
	Error      string
}

type shipmentView struct {
	Details       shipment.Details
	Steps         []shipment.Step
	CanReschedule bool
	Rescheduled   bool
}

type rescheduleView struct {
	Details shipment.Details
	Form    formView
}

type accountPage struct {
	Form   string
	Title  string
	Submit string
}

var accountPages = map[string]accountPage{
	"/signup":      {Form: validation.FormSignup, Title: "Sign Up", Submit: "Create Account"},
	"/login":       {Form: validation.FormLogin, Title: "Sign In", Submit: "Sign In"},
	"/admin-login": {Form: validation.FormAdminLogin, Title: "Admin Login", Submit: "Sign In"},
}

func (s *Server) renderLanding(c echo.Context, code int, trackingID, problem string) error {
	landing, err := s.h.GetPageContent.Landing(c.Request().Context(), queries.NewGetPageContentQuery())
	if err != nil {
		return err
	}
	return s.render(c, code, "landing", "Home", landingView{Landing: landing, TrackingID: trackingID, Error: problem})
}

// Landing handles GET /.
func (s *Server) Landing(c echo.Context) error {
	return s.renderLanding(c, http.StatusOK, "", "")
}

// Track handles POST /track, the tracking-ID lookup of the landing page.
func (s *Server) Track(c echo.Context) error {
	id := strings.TrimSpace(c.FormValue("trackingId"))
	if id == "" {
		return s.renderLanding(c, http.StatusOK, "", "Please enter a tracking ID.")
	}
	return c.Redirect(http.StatusSeeOther, "/shipment/"+url.PathEscape(id))
}

// Help handles GET /help.
func (s *Server) Help(c echo.Context) error {
	help, err := s.h.GetPageContent.HelpCenter(c.Request().Context(), queries.NewGetPageContentQuery())
	if err != nil {
		return err
	}
	return s.render(c, http.StatusOK, "help", "Help Center", help)
}

func (s *Server) shipmentDetails(c echo.Context) (shipment.Details, error) {
	query, err := queries.NewGetShipmentDetailsQuery(c.Param("id"))
	if err != nil {
		return shipment.Details{}, echo.ErrNotFound
	}

	details, err := s.h.GetShipmentDetails.Handle(c.Request().Context(), query)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return shipment.Details{}, echo.ErrNotFound
	}
	return details, err
}

// Shipment handles GET /shipment/:id.
func (s *Server) Shipment(c echo.Context) error {
	details, err := s.shipmentDetails(c)
	if err != nil {
		return err
	}

	return s.render(c, http.StatusOK, "shipment", "Shipment "+details.ID, shipmentView{
		Details:       details,
		Steps:         details.Track.Steps(),
		CanReschedule: details.CanReschedule(),
		Rescheduled:   c.QueryParam("rescheduled") != "",
	})
}

func (s *Server) renderReschedule(c echo.Context, code int, details shipment.Details, view formView) error {
	view.Action = "/shipment/" + url.PathEscape(details.ID) + "/reschedule"
	view.Submit = "Confirm Reschedule"
	if !details.CanReschedule() {
		view.Error = "This shipment is already out for delivery and can no longer be rescheduled."
	}
	return s.render(c, code, "reschedule", "Reschedule Shipment", rescheduleView{Details: details, Form: view})
}

// RescheduleForm handles GET /shipment/:id/reschedule.
func (s *Server) RescheduleForm(c echo.Context) error {
	details, err := s.shipmentDetails(c)
	if err != nil {
		return err
	}

	values := validation.Values{"selectedAddress": validation.AddressHome}
	return s.renderReschedule(c, http.StatusOK, details, newFormView(validation.RescheduleForm(), values, nil))
}

// Reschedule handles POST /shipment/:id/reschedule.
func (s *Server) Reschedule(c echo.Context) error {
	details, err := s.shipmentDetails(c)
	if err != nil {
		return err
	}

	form := validation.RescheduleForm()
	values, err := readForm(c, form)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid form data")
	}

	cmd, err := commands.NewRescheduleShipmentCommand(details.ID, values)
	if err != nil {
		return err
	}

	err = s.h.RescheduleShipment.Handle(c.Request().Context(), cmd)

	var invalid *validation.InvalidFormError
	switch {
	case errors.As(err, &invalid):
		return s.renderReschedule(c, http.StatusOK, details, newFormView(form, values, invalid.Fields))
	case errors.Is(err, shipment.ErrRescheduleNotAllowed):
		return s.renderReschedule(c, http.StatusConflict, details, newFormView(form, values, nil))
	case errors.Is(err, errs.ErrObjectNotFound):
		return echo.ErrNotFound
	case err != nil:
		return err
	}

	return c.Redirect(http.StatusSeeOther, "/shipment/"+url.PathEscape(details.ID)+"?rescheduled=1")
}

func (s *Server) renderAccount(c echo.Context, code int, page accountPage, values validation.Values, problems validation.Errors) error {
	form, _ := validation.Lookup(page.Form)
	view := newFormView(form, values, problems)
	view.Action = c.Request().URL.Path
	view.Submit = page.Submit
	return s.render(c, code, "account", page.Title, view)
}

// AccountForm handles GET /signup, /login and /admin-login.
func (s *Server) AccountForm(c echo.Context) error {
	page, ok := accountPages[c.Path()]
	if !ok {
		return echo.ErrNotFound
	}
	return s.renderAccount(c, http.StatusOK, page, validation.Values{}, nil)
}

// SubmitAccountForm handles POST /signup, /login and /admin-login. Accepted
// forms redirect to the page the account flow continues on; nothing is stored.
func (s *Server) SubmitAccountForm(c echo.Context) error {
	page, ok := accountPages[c.Path()]
	if !ok {
		return echo.ErrNotFound
	}

	form, _ := validation.Lookup(page.Form)
	values, err := readForm(c, form)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid form data")
	}

	cmd, err := commands.NewAuthenticateCommand(page.Form, values)
	if err != nil {
		return err
	}

	redirect, err := s.h.Authenticate.Handle(c.Request().Context(), cmd)

	var invalid *validation.InvalidFormError
	if errors.As(err, &invalid) {
		return s.renderAccount(c, http.StatusOK, page, values, invalid.Fields)
	}
	if err != nil {
		return err
	}

	return c.Redirect(http.StatusSeeOther, redirect)
}
