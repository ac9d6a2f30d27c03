// Package queries contains read-side operations that bypass the domain
// model and read projections straight from the database.
package queries

import (
	"errors"
	"time"

	"renthub/internal/core/domain/model/kernel"
	"renthub/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetUserLedgerQueryIsNotConstructed = errors.New(
	"GetUserLedgerQuery must be created via NewGetUserLedgerQuery constructor",
)

// GetUserLedgerQuery retrieves the ledger entries attributed to one user.
// Only the user themselves or an admin may read a ledger.
type GetUserLedgerQuery struct {
	userID kernel.UUID
	actor  kernel.Actor

	guard guard.ConstructorGuard
}

// NewGetUserLedgerQuery creates a ledger query for the given user.
func NewGetUserLedgerQuery(userID kernel.UUID, actor kernel.Actor) (GetUserLedgerQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetUserLedgerQuery{}, err
	}
	if err := actor.Validate(); err != nil {
		return GetUserLedgerQuery{}, err
	}

	return GetUserLedgerQuery{
		userID: userID,
		actor:  actor,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUserLedgerQuery) Validate() error {
	return q.guard.Validate(ErrGetUserLedgerQueryIsNotConstructed)
}

// UserID returns the user whose ledger is read.
func (q GetUserLedgerQuery) UserID() kernel.UUID {
	return q.userID
}

// Actor returns the requesting party.
func (q GetUserLedgerQuery) Actor() kernel.Actor {
	return q.actor
}

// GetUserLedgerQueryResponse is one ledger row as presented to the user.
type GetUserLedgerQueryResponse struct {
	ID          kernel.UUID
	OrderID     kernel.UUID
	Direction   int
	Amount      decimal.Decimal
	Description string
	CreatedAt   time.Time
}
