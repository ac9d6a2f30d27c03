// Package ledger models the append-only income/expense record tied to orders.
//
// Entries are immutable once created and are only ever written in balanced
// pairs: every payment or refund produces exactly one INCOME and one EXPENSE
// entry of equal amount, attributed to opposite parties of the same order.
// NewSettlementPair is the sole factory for those pairs.
package ledger

import (
	"fmt"
	"time"

	"renthub/internal/core/domain/model/kernel"
	"renthub/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Direction distinguishes money flowing to a party from money flowing away.
// The numeric values are persisted and must stay stable.
type Direction int

const (
	// Income is money received by the attributed party.
	Income Direction = 1

	// Expense is money paid out by the attributed party.
	Expense Direction = 2
)

// Validate checks the direction is Income or Expense.
func (d Direction) Validate() error {
	if d != Income && d != Expense {
		return errs.NewValueIsInvalidErrorWithCause("direction", fmt.Errorf("%d is not a valid direction", d))
	}
	return nil
}

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case Income:
		return "Income"
	case Expense:
		return "Expense"
	default:
		return "Unknown"
	}
}

// Entry is one immutable row of the ledger. It exposes no mutators; the
// ledger supports append and read only.
type Entry struct {
	id          kernel.UUID
	orderID     kernel.UUID
	userID      kernel.UUID
	direction   Direction
	amount      decimal.Decimal
	description string
	createdAt   time.Time
}

// NewEntry creates a single ledger entry. Collaborators outside the order
// workflow may use it directly, but it carries no balanced-pair guarantee;
// payment and refund flows must go through NewSettlementPair.
func NewEntry(
	id kernel.UUID,
	orderID kernel.UUID,
	userID kernel.UUID,
	direction Direction,
	amount decimal.Decimal,
	description string,
	now time.Time,
) (Entry, error) {
	if err := id.Validate(); err != nil {
		return Entry{}, err
	}
	if err := orderID.Validate(); err != nil {
		return Entry{}, err
	}
	if err := userID.Validate(); err != nil {
		return Entry{}, err
	}
	if err := direction.Validate(); err != nil {
		return Entry{}, err
	}
	if amount.IsNegative() {
		return Entry{}, errs.NewValueIsInvalidError("amount")
	}

	return Entry{
		id:          id,
		orderID:     orderID,
		userID:      userID,
		direction:   direction,
		amount:      amount,
		description: description,
		createdAt:   now,
	}, nil
}

// ID returns the entry's identifier.
func (e Entry) ID() kernel.UUID {
	return e.id
}

// OrderID returns the order the entry settles.
func (e Entry) OrderID() kernel.UUID {
	return e.orderID
}

// UserID returns the party the entry is attributed to.
func (e Entry) UserID() kernel.UUID {
	return e.userID
}

// Direction returns whether the entry is income or expense.
func (e Entry) Direction() Direction {
	return e.direction
}

// Amount returns the entry's amount.
func (e Entry) Amount() decimal.Decimal {
	return e.amount
}

// Description returns the human-readable description. Descriptions are plain
// text and stable once issued.
func (e Entry) Description() string {
	return e.description
}

// CreatedAt returns the append timestamp.
func (e Entry) CreatedAt() time.Time {
	return e.createdAt
}

// Validate ensures the entry was created through a constructor.
func (e Entry) Validate() error {
	if err := e.id.Validate(); err != nil {
		return err
	}
	return e.direction.Validate()
}

// NewSettlementPair creates the balanced entry pair for one money movement on
// an order: the payer's expense and the payee's income, equal in amount.
// Payment flows pass tenant as payer and landlord as payee; refunds reverse
// the parties.
func NewSettlementPair(
	orderID kernel.UUID,
	payerID kernel.UUID,
	payeeID kernel.UUID,
	amount decimal.Decimal,
	payerDescription string,
	payeeDescription string,
	now time.Time,
) ([2]Entry, error) {
	expense, err := NewEntry(kernel.NewUUID(), orderID, payerID, Expense, amount, payerDescription, now)
	if err != nil {
		return [2]Entry{}, err
	}

	income, err := NewEntry(kernel.NewUUID(), orderID, payeeID, Income, amount, payeeDescription, now)
	if err != nil {
		return [2]Entry{}, err
	}

	return [2]Entry{expense, income}, nil
}
