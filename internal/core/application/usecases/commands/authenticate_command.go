package commands

import (
	"errors"
	"fmt"
	"maps"

	"shippix/internal/core/domain/model/validation"
	"shippix/internal/pkg/errs"
	"shippix/internal/pkg/guard"
)

var ErrAuthenticateCommandIsNotConstructed = errors.New(
	"AuthenticateCommand must be created via NewAuthenticateCommand constructor",
)

// AuthenticateCommand submits one of the account forms: signup, login or
// admin-login.
type AuthenticateCommand struct { //nolint:recvcheck //using for validation
	form   string
	values validation.Values

	guard guard.ConstructorGuard
}

func NewAuthenticateCommand(form string, values validation.Values) (AuthenticateCommand, error) {
	cmd := AuthenticateCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setForm(form),
		cmd.setValues(values),
	); err != nil {
		return AuthenticateCommand{}, err
	}

	return cmd, nil
}

func (c AuthenticateCommand) Validate() error {
	return c.guard.Validate(ErrAuthenticateCommandIsNotConstructed)
}

func (c AuthenticateCommand) Form() string { return c.form }

func (c AuthenticateCommand) Values() validation.Values {
	return maps.Clone(c.values)
}

func (c *AuthenticateCommand) setForm(form string) error {
	switch form {
	case validation.FormSignup, validation.FormLogin, validation.FormAdminLogin:
		c.form = form
		return nil
	case "":
		return errs.NewValueIsRequiredError("form")
	default:
		return errs.NewValueIsInvalidErrorWithCause("form", fmt.Errorf("%q is not an account form", form))
	}
}

func (c *AuthenticateCommand) setValues(values validation.Values) error {
	if values == nil {
		return errs.NewValueIsRequiredError("values")
	}
	c.values = maps.Clone(values)
	return nil
}
