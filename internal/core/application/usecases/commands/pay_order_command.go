package commands

import (
	"errors"

	"shippix/internal/core/domain/model/kernel"
	"shippix/internal/core/domain/model/order"
	"shippix/internal/pkg/guard"
)

var ErrPayOrderCommandIsNotConstructed = errors.New(
	"PayOrderCommand must be created via NewPayOrderCommand constructor",
)

// PayOrderCommand pays the shipping fee of an approved order.
//
// Example:
//
//	method, _ := order.ParsePaymentMethod(c.FormValue("paymentMethod"))
//	cmd, err := NewPayOrderCommand(paymentToken, method)
type PayOrderCommand struct { //nolint:recvcheck //using for validation
	token  kernel.UUID
	method order.PaymentMethod

	guard guard.ConstructorGuard
}

func NewPayOrderCommand(token kernel.UUID, method order.PaymentMethod) (PayOrderCommand, error) {
	cmd := PayOrderCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setToken(token),
		cmd.setMethod(method),
	); err != nil {
		return PayOrderCommand{}, err
	}

	return cmd, nil
}

func (c PayOrderCommand) Validate() error {
	return c.guard.Validate(ErrPayOrderCommandIsNotConstructed)
}

func (c PayOrderCommand) Token() kernel.UUID          { return c.token }
func (c PayOrderCommand) Method() order.PaymentMethod { return c.method }

func (c *PayOrderCommand) setToken(token kernel.UUID) error {
	if err := token.Validate(); err != nil {
		return err
	}
	c.token = token
	return nil
}

func (c *PayOrderCommand) setMethod(method order.PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}
	c.method = method
	return nil
}
