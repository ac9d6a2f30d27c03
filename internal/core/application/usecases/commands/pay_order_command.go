package commands

import (
	"errors"

	"renthub/internal/core/domain/model/kernel"
	"renthub/internal/pkg/errs"
	"renthub/internal/pkg/guard"
)

var ErrPayOrderCommandIsNotConstructed = errors.New(
	"PayOrderCommand must be created via NewPayOrderCommand constructor",
)

// PayOrderCommand represents the tenant's payment for an order.
type PayOrderCommand struct {
	orderID kernel.UUID
	actor   kernel.Actor
	method  string

	guard guard.ConstructorGuard
}

// NewPayOrderCommand creates a payment command. The payment method is free
// text supplied by the payment collaborator and must not be empty.
func NewPayOrderCommand(orderID kernel.UUID, actor kernel.Actor, method string) (PayOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return PayOrderCommand{}, err
	}
	if err := actor.Validate(); err != nil {
		return PayOrderCommand{}, err
	}
	if method == "" {
		return PayOrderCommand{}, errs.NewValueIsRequiredError("payment method")
	}

	return PayOrderCommand{
		orderID: orderID,
		actor:   actor,
		method:  method,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c PayOrderCommand) Validate() error {
	return c.guard.Validate(ErrPayOrderCommandIsNotConstructed)
}

// OrderID returns the order being paid.
func (c PayOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the paying party.
func (c PayOrderCommand) Actor() kernel.Actor {
	return c.actor
}

// Method returns the payment method.
func (c PayOrderCommand) Method() string {
	return c.method
}
