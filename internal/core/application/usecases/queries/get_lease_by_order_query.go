package queries

import (
	"errors"
	"time"

	"renthub/internal/core/domain/model/kernel"
	"renthub/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetLeaseByOrderQueryIsNotConstructed = errors.New(
	"GetLeaseByOrderQuery must be created via NewGetLeaseByOrderQuery constructor",
)

// GetLeaseByOrderQuery retrieves the lease created from a confirmed order.
type GetLeaseByOrderQuery struct {
	orderID kernel.UUID
	actor   kernel.Actor

	guard guard.ConstructorGuard
}

// NewGetLeaseByOrderQuery creates a lease lookup for the given order.
func NewGetLeaseByOrderQuery(orderID kernel.UUID, actor kernel.Actor) (GetLeaseByOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetLeaseByOrderQuery{}, err
	}
	if err := actor.Validate(); err != nil {
		return GetLeaseByOrderQuery{}, err
	}

	return GetLeaseByOrderQuery{
		orderID: orderID,
		actor:   actor,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetLeaseByOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetLeaseByOrderQueryIsNotConstructed)
}

// OrderID returns the order whose lease is looked up.
func (q GetLeaseByOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// Actor returns the requesting party.
func (q GetLeaseByOrderQuery) Actor() kernel.Actor {
	return q.actor
}

// GetLeaseByOrderQueryResponse is the lease as presented to its parties.
type GetLeaseByOrderQueryResponse struct {
	ID              kernel.UUID
	OrderID         kernel.UUID
	HouseID         kernel.UUID
	TenantID        kernel.UUID
	LandlordID      kernel.UUID
	StartDate       time.Time
	EndDate         time.Time
	RentAmount      decimal.Decimal
	PaymentCycle    string
	Status          int
	ContractLocator string
}
