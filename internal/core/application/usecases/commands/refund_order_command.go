package commands

import (
	"errors"

	"renthub/internal/core/domain/model/kernel"
	"renthub/internal/pkg/guard"
)

var ErrRefundOrderCommandIsNotConstructed = errors.New(
	"RefundOrderCommand must be created via NewRefundOrderCommand constructor",
)

// RefundOrderCommand represents the tenant's refund request for a paid but
// unconfirmed order.
type RefundOrderCommand struct {
	orderID kernel.UUID
	actor   kernel.Actor

	guard guard.ConstructorGuard
}

// NewRefundOrderCommand creates a refund command.
func NewRefundOrderCommand(orderID kernel.UUID, actor kernel.Actor) (RefundOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return RefundOrderCommand{}, err
	}
	if err := actor.Validate(); err != nil {
		return RefundOrderCommand{}, err
	}

	return RefundOrderCommand{
		orderID: orderID,
		actor:   actor,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RefundOrderCommand) Validate() error {
	return c.guard.Validate(ErrRefundOrderCommandIsNotConstructed)
}

// OrderID returns the order being refunded.
func (c RefundOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the requesting party.
func (c RefundOrderCommand) Actor() kernel.Actor {
	return c.actor
}
