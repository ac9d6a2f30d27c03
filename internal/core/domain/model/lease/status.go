package lease

import (
	"fmt"

	"renthub/internal/pkg/errs"
)

// Status is the lifecycle state of a lease record. The numeric values are
// persisted and must stay stable.
type Status int

const (
	// StatusCanceled means the lease was voided before taking effect.
	StatusCanceled Status = 0

	// StatusActive is a running tenancy.
	StatusActive Status = 1

	// StatusEnded means the lease ran to its agreed end date.
	StatusEnded Status = 2

	// StatusTerminated means the lease was cut short before its end date.
	StatusTerminated Status = 3
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusCanceled:   "Canceled",
		StatusActive:     "Active",
		StatusEnded:      "Ended",
		StatusTerminated: "Terminated",
	}
}

// Validate checks the status belongs to the known set.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("lease status", fmt.Errorf("%d is not a valid lease status", s))
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

// PaymentCycle is how often rent falls due under a lease.
type PaymentCycle string

const (
	CycleMonthly   PaymentCycle = "MONTHLY"
	CycleQuarterly PaymentCycle = "QUARTERLY"
	CycleYearly    PaymentCycle = "YEARLY"
)

// Validate checks the cycle is one of the supported values.
func (c PaymentCycle) Validate() error {
	switch c {
	case CycleMonthly, CycleQuarterly, CycleYearly:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("payment cycle",
			fmt.Errorf("%q is not a valid payment cycle", string(c)))
	}
}
