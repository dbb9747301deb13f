package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"shippix/internal/adapters/in/http/chrome"
	"shippix/internal/core/application/usecases/commands"
	"shippix/internal/core/application/usecases/queries"
	"shippix/internal/core/domain/model/validation"
	"shippix/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

type validateFormRequest struct {
	Values map[string]string `json:"values" validate:"required"`
	Field  string            `json:"field"`
}

type validateFormResponse struct {
	Valid    bool              `json:"valid"`
	Complete bool              `json:"complete"`
	Errors   validation.Errors `json:"errors"`
}

type estimateRequest struct {
	WeightKg *float64 `json:"weightKg" validate:"required,gte=0"`
}

type estimateResponse struct {
	WeightKg   float64 `json:"weightKg"`
	DistanceKm float64 `json:"distanceKm"`
	Cost       string  `json:"cost"`
	Display    string  `json:"display"`
}

type stepResponse struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	State       string `json:"state"`
}

type shipmentResponse struct {
	ID            string         `json:"id"`
	CurrentStep   string         `json:"currentStep"`
	Steps         []stepResponse `json:"steps"`
	ETA           string         `json:"eta,omitempty"`
	DriverNote    string         `json:"driverNote,omitempty"`
	DriverName    string         `json:"driverName,omitempty"`
	DriverRating  string         `json:"driverRating,omitempty"`
	PickupAddress string         `json:"pickupAddress,omitempty"`
	CanReschedule bool           `json:"canReschedule"`
}

type chromeResponse struct {
	Navbar  string               `json:"navbar"`
	Footer  bool                 `json:"footer"`
	Sidebar []chrome.SidebarItem `json:"sidebar"`
}

func bindPathParam(c echo.Context, name string, dest any) error {
	return runtime.BindStyledParameterWithOptions("simple", name, c.Param(name), dest, runtime.BindStyledParameterOptions{
		ParamLocation: runtime.ParamLocationPath,
		Explode:       false,
		Required:      true,
	})
}

// ValidateForm handles POST /api/v1/forms/{form}/validate. With a field name
// only that field is checked, as a form does when an input loses focus.
func (s *Server) ValidateForm(c echo.Context) error {
	var name string
	if err := bindPathParam(c, "form", &name); err != nil {
		return s.apiError(c, http.StatusBadRequest, "Invalid format for parameter form")
	}

	form, ok := validation.Lookup(name)
	if !ok {
		return s.apiError(c, http.StatusNotFound, "Unknown form "+name)
	}

	var req validateFormRequest
	if err := c.Bind(&req); err != nil {
		return s.apiError(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return s.apiError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
	}

	values := validation.Values(req.Values)
	problems := form.Check(values)
	if req.Field != "" {
		problems = validation.Errors{}
		if msg := form.CheckField(req.Field, values); msg != "" {
			problems[req.Field] = msg
		}
	}

	return c.JSON(http.StatusOK, validateFormResponse{
		Valid:    problems.Empty(),
		Complete: form.IsComplete(values),
		Errors:   problems,
	})
}

// EstimateShipping handles POST /api/v1/shipping/estimate.
func (s *Server) EstimateShipping(c echo.Context) error {
	var req estimateRequest
	if err := c.Bind(&req); err != nil {
		return s.apiError(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return s.apiError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
	}

	cmd, err := commands.NewEstimateShippingCommand(*req.WeightKg)
	if err != nil {
		return s.apiError(c, http.StatusUnprocessableEntity, "Invalid weight: "+err.Error())
	}

	estimate, err := s.h.EstimateShipping.Handle(c.Request().Context(), cmd)
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return s.apiError(c, http.StatusGatewayTimeout, "Shipping estimate timed out")
	case errors.Is(err, errs.ErrValueIsInvalid), errors.Is(err, errs.ErrValueIsOutOfRange):
		return s.apiError(c, http.StatusUnprocessableEntity, "Invalid weight: "+err.Error())
	case err != nil:
		return err
	}

	return c.JSON(http.StatusOK, estimateResponse{
		WeightKg:   estimate.WeightKg(),
		DistanceKm: estimate.DistanceKm(),
		Cost:       estimate.Cost().Amount(),
		Display:    estimate.Cost().String(),
	})
}

// GetShipment handles GET /api/v1/shipments/{id}.
func (s *Server) GetShipment(c echo.Context) error {
	var id string
	if err := bindPathParam(c, "id", &id); err != nil {
		return s.apiError(c, http.StatusBadRequest, "Invalid format for parameter id")
	}

	query, err := queries.NewGetShipmentDetailsQuery(id)
	if err != nil {
		return s.apiError(c, http.StatusBadRequest, "Invalid shipment id")
	}

	details, err := s.h.GetShipmentDetails.Handle(c.Request().Context(), query)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return s.apiError(c, http.StatusNotFound, "Shipment "+id+" not found")
	}
	if err != nil {
		return err
	}

	steps := details.Track.Steps()
	response := shipmentResponse{
		ID:            details.ID,
		CurrentStep:   details.Track.Current(),
		Steps:         make([]stepResponse, len(steps)),
		ETA:           details.ETA,
		DriverNote:    details.DriverNote,
		DriverName:    details.DriverName,
		DriverRating:  details.DriverRating,
		PickupAddress: details.PickupAddress,
		CanReschedule: details.CanReschedule(),
	}
	for i, step := range steps {
		response.Steps[i] = stepResponse{
			Title:       step.Title,
			Description: step.Description,
			State:       strings.ToLower(step.State.String()),
		}
	}

	return c.JSON(http.StatusOK, response)
}

// GetChrome handles GET /api/v1/chrome.
func (s *Server) GetChrome(c echo.Context) error {
	var path string
	if err := runtime.BindQueryParameter("form", true, true, "path", c.QueryParams(), &path); err != nil {
		return s.apiError(c, http.StatusBadRequest, "Invalid format for parameter path")
	}

	selected := chrome.Select(path)
	sidebar := selected.Sidebar
	if sidebar == nil {
		sidebar = []chrome.SidebarItem{}
	}

	return c.JSON(http.StatusOK, chromeResponse{
		Navbar:  selected.Navbar.String(),
		Footer:  selected.Footer,
		Sidebar: sidebar,
	})
}
