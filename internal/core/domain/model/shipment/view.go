package shipment

import (
	"errors"
	"strings"

	"shippix/internal/pkg/errs"
	"shippix/internal/pkg/guard"
)

var ErrViewIsNotConstructed = errors.New("View must be created via NewView constructor")

// View is one row of the active-shipments list.
type View struct {
	id            string
	route         string
	status        string
	timeRemaining string
	level         ProgressLevel
	guard         guard.ConstructorGuard
}

// NewView validates and builds a View. ID and route are required and the level
// must lie in [MinProgressLevel, MaxProgressLevel].
func NewView(id, route, status, timeRemaining string, level int) (View, error) {
	progress, levelErr := NewProgressLevel(level)

	var idErr, routeErr error
	if strings.TrimSpace(id) == "" {
		idErr = errs.NewValueIsRequiredError("id")
	}
	if strings.TrimSpace(route) == "" {
		routeErr = errs.NewValueIsRequiredError("route")
	}
	if err := errors.Join(idErr, routeErr, levelErr); err != nil {
		return View{}, err
	}

	return View{
		id:            id,
		route:         route,
		status:        status,
		timeRemaining: timeRemaining,
		level:         progress,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (v View) Validate() error {
	return v.guard.Validate(ErrViewIsNotConstructed)
}

func (v View) ID() string            { return v.id }
func (v View) Route() string         { return v.route }
func (v View) Status() string        { return v.status }
func (v View) TimeRemaining() string { return v.timeRemaining }
func (v View) Level() ProgressLevel  { return v.level }
