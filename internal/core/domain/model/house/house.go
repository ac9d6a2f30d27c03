// Package house models the rentable unit as seen by the order workflow.
// The core only reads a unit's availability and flips it to Rented on
// confirmation; everything else about houses (listings, catalogs, images)
// belongs to the inventory collaborator.
package house

import (
	"fmt"

	"renthub/internal/core/domain/model/kernel"
	"renthub/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Status is the availability state of a unit.
type Status int

const (
	// OffMarket means the unit is delisted and cannot be rented.
	OffMarket Status = 0

	// Available means the unit can accept new orders.
	Available Status = 1

	// Rented means the unit is occupied under a confirmed order.
	Rented Status = 2
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		OffMarket: "OffMarket",
		Available: "Available",
		Rented:    "Rented",
	}
}

// Validate checks the status belongs to the known set.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("unit status", fmt.Errorf("%d is not a valid unit status", s))
	}
	return nil
}

// String implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Unit is the read-side snapshot of a rentable unit consumed by the core:
// its owner, listed monthly price, and availability. It carries no live
// reference back to the inventory.
type Unit struct {
	id      kernel.UUID
	ownerID kernel.UUID
	price   decimal.Decimal
	status  Status
}

// NewUnit builds a unit snapshot after validating identifiers and status.
// The price must not be negative; a zero price is allowed for promotional
// listings.
func NewUnit(id kernel.UUID, ownerID kernel.UUID, price decimal.Decimal, status Status) (Unit, error) {
	if err := id.Validate(); err != nil {
		return Unit{}, err
	}
	if err := ownerID.Validate(); err != nil {
		return Unit{}, err
	}
	if price.IsNegative() {
		return Unit{}, errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%s is negative", price.String()))
	}
	if err := status.Validate(); err != nil {
		return Unit{}, err
	}
	return Unit{id: id, ownerID: ownerID, price: price, status: status}, nil
}

// ID returns the unit's identifier.
func (u Unit) ID() kernel.UUID {
	return u.id
}

// OwnerID returns the landlord owning the unit.
func (u Unit) OwnerID() kernel.UUID {
	return u.ownerID
}

// Price returns the listed monthly rent.
func (u Unit) Price() decimal.Decimal {
	return u.price
}

// Status returns the unit's availability state.
func (u Unit) Status() Status {
	return u.status
}

// IsAvailable reports whether the unit can accept a new order.
func (u Unit) IsAvailable() bool {
	return u.status == Available
}
