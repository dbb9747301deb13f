package commands

import (
	"context"
	"log/slog"
	"time"

	"shippix/internal/core/domain/model/validation"
)

// Landing pages after a successful account form.
const (
	RedirectAfterSignup     = "/login"
	RedirectAfterLogin      = "/dashboard"
	RedirectAfterAdminLogin = "/admin/dashboard"
)

// AuthLatency is the simulated round trip of each account form.
type AuthLatency struct {
	Signup     time.Duration
	Login      time.Duration
	AdminLogin time.Duration
}

// AuthenticateCommandHandler accepts any account form that validates. There is
// no credential store: success is logged and the caller is sent on.
type AuthenticateCommandHandler struct {
	latency AuthLatency
	logger  *slog.Logger
}

func NewAuthenticateCommandHandler(latency AuthLatency, logger *slog.Logger) AuthenticateCommandHandler {
	return AuthenticateCommandHandler{latency: latency, logger: logger.With("component", "authenticate_handler")}
}

// Handle validates the form, waits the simulated latency and returns the path
// to redirect to. Form errors come back as *validation.InvalidFormError.
func (h AuthenticateCommandHandler) Handle(ctx context.Context, cmd AuthenticateCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	form, _ := validation.Lookup(cmd.Form())
	values := cmd.Values()
	if err := form.Validate(values); err != nil {
		return "", err
	}

	var (
		wait     time.Duration
		redirect string
		identity string
	)
	switch cmd.Form() {
	case validation.FormSignup:
		wait, redirect, identity = h.latency.Signup, RedirectAfterSignup, values.Get("email")
	case validation.FormLogin:
		wait, redirect, identity = h.latency.Login, RedirectAfterLogin, values.Get("username")
	default:
		wait, redirect, identity = h.latency.AdminLogin, RedirectAfterAdminLogin, values.Get("email")
	}

	if err := sleep(ctx, wait); err != nil {
		return "", err
	}

	h.logger.InfoContext(ctx, "Account form accepted", "form", cmd.Form(), "identity", identity)
	return redirect, nil
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
