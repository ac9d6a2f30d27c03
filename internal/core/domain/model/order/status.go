package order

import (
	"renthub/internal/pkg/errs"

	"fmt"
)

// Status represents the lifecycle state of a rental order.
// It implements a state machine with defined transitions:
//
//	WaitingPayment ──> PaidWaitingConfirm ──> Confirmed
//	      │                    │
//	      v                    v
//	  Canceled             Refunded
//
// Confirmed, Canceled, and Refunded are absorbing states: no transition
// leaves them. The numeric values are persisted and must stay stable.
type Status int

const (
	// WaitingPayment is the initial status of a freshly created order.
	WaitingPayment Status = 0

	// PaidWaitingConfirm means the tenant has paid and the landlord has
	// not yet confirmed.
	PaidWaitingConfirm Status = 1

	// Confirmed means the landlord accepted the paid order. Terminal.
	Confirmed Status = 2

	// Canceled means the tenant withdrew before paying. Terminal.
	Canceled Status = 3

	// Refunded means the payment was reversed before confirmation. Terminal.
	Refunded Status = 4
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		WaitingPayment:     "WaitingPayment",
		PaidWaitingConfirm: "PaidWaitingConfirm",
		Confirmed:          "Confirmed",
		Canceled:           "Canceled",
		Refunded:           "Refunded",
	}
}

// Validate checks the status belongs to the known set.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("order status", fmt.Errorf("%d is not a valid status", s))
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

// IsTerminal reports whether the status is absorbing.
func (s Status) IsTerminal() bool {
	return s == Confirmed || s == Canceled || s == Refunded
}

// Pay transitions WaitingPayment to PaidWaitingConfirm.
func (s Status) Pay() (Status, error) {
	if s != WaitingPayment {
		return 0, errs.NewInvalidStateError("pay order", s.String())
	}
	return PaidWaitingConfirm, nil
}

// Confirm transitions PaidWaitingConfirm to Confirmed.
func (s Status) Confirm() (Status, error) {
	if s != PaidWaitingConfirm {
		return 0, errs.NewInvalidStateError("confirm order", s.String())
	}
	return Confirmed, nil
}

// Cancel transitions WaitingPayment to Canceled. Once money has moved the
// order can no longer be canceled, only refunded.
func (s Status) Cancel() (Status, error) {
	if s != WaitingPayment {
		return 0, errs.NewInvalidStateError("cancel order", s.String())
	}
	return Canceled, nil
}

// Refund transitions PaidWaitingConfirm to Refunded.
func (s Status) Refund() (Status, error) {
	if s != PaidWaitingConfirm {
		return 0, errs.NewInvalidStateError("refund order", s.String())
	}
	return Refunded, nil
}
