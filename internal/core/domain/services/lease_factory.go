// Package services contains domain services coordinating multiple aggregates.
package services

import (
	"time"

	"renthub/internal/core/domain/model/house"
	"renthub/internal/core/domain/model/kernel"
	"renthub/internal/core/domain/model/lease"
	"renthub/internal/core/domain/model/order"
	"renthub/internal/pkg/errs"
)

// DefaultLeaseTermMonths is the lease term applied when none is configured.
const DefaultLeaseTermMonths = 12

// LeaseFactory is a domain service that builds the lease record owed to a
// freshly confirmed order.
//
// Business rules:
//   - The lease starts the day of confirmation and runs for the configured
//     default term.
//   - Rent is the unit's listed price; the payment cycle defaults to monthly.
//   - The lease references the same unit, tenant, and landlord as the order.
//   - A lease is only ever created from a confirmed order.
type LeaseFactory struct {
	termMonths int
}

// NewLeaseFactory creates a factory with the given default term in months.
// Non-positive terms fall back to DefaultLeaseTermMonths.
func NewLeaseFactory(termMonths int) LeaseFactory {
	if termMonths <= 0 {
		termMonths = DefaultLeaseTermMonths
	}
	return LeaseFactory{termMonths: termMonths}
}

// CreateFromConfirmedOrder builds the lease record for a confirmed order and
// its unit snapshot. The order must already be in Confirmed status; anything
// else is a programming error surfaced as an invalid state failure.
func (f LeaseFactory) CreateFromConfirmedOrder(
	o *order.Order,
	unit house.Unit,
	now time.Time,
) (*lease.LeaseRecord, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if o.Status() != order.Confirmed {
		return nil, errs.NewInvalidStateError("create lease", o.Status().String())
	}
	if !unit.ID().IsEqual(o.HouseID()) {
		return nil, errs.NewDataIntegrityError("unit", unit.ID().String())
	}

	startDate := now.Truncate(24 * time.Hour)
	endDate := startDate.AddDate(0, f.termMonths, 0)

	return lease.NewLeaseRecord(
		kernel.NewUUID(),
		o.ID(),
		o.HouseID(),
		o.TenantID(),
		o.LandlordID(),
		startDate,
		endDate,
		unit.Price(),
		lease.CycleMonthly,
		now,
	)
}
