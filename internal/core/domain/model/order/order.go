package order

import (
	"errors"
	"time"

	"renthub/internal/core/domain/model/kernel"
	"renthub/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// Order is the aggregate root of the rental workflow. It moves through the
// Status state machine and records who pays whom for which unit.
//
// Invariants:
//   - The landlord is derived from the unit at creation time and is never
//     independently settable.
//   - Amount and deposit are non-negative.
//   - Status transitions follow the Status state machine; terminal states
//     accept no further transitions.
//   - Orders are never deleted; cancellation and refund are terminal states.
//
// The version field supports optimistic concurrency at the storage layer:
// two racing transitions on the same order resolve to exactly one winner.
type Order struct {
	id            kernel.UUID
	orderNo       string
	houseID       kernel.UUID
	tenantID      kernel.UUID
	landlordID    kernel.UUID
	amount        decimal.Decimal
	deposit       decimal.Decimal
	status        Status
	paymentTime   *time.Time
	paymentMethod string
	createdAt     time.Time
	updatedAt     time.Time
	version       int

	isConstructed bool
}

// NewOrder creates an order in WaitingPayment status. The landlord ID must be
// the owner of the referenced unit; callers derive it from the unit snapshot,
// never from user input.
func NewOrder(
	id kernel.UUID,
	orderNo string,
	houseID kernel.UUID,
	tenantID kernel.UUID,
	landlordID kernel.UUID,
	amount decimal.Decimal,
	deposit decimal.Decimal,
	now time.Time,
) (*Order, error) {
	o := &Order{
		status:        WaitingPayment,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setOrderNo(orderNo),
		o.setParties(houseID, tenantID, landlordID),
		o.setAmounts(amount, deposit),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence without running
// creation-time defaults. The stored status must be valid.
func RestoreOrder(
	id kernel.UUID,
	orderNo string,
	houseID kernel.UUID,
	tenantID kernel.UUID,
	landlordID kernel.UUID,
	amount decimal.Decimal,
	deposit decimal.Decimal,
	status Status,
	paymentTime *time.Time,
	paymentMethod string,
	createdAt time.Time,
	updatedAt time.Time,
	version int,
) (*Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	o := &Order{
		status:        status,
		paymentTime:   paymentTime,
		paymentMethod: paymentMethod,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		version:       version,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setOrderNo(orderNo),
		o.setParties(houseID, tenantID, landlordID),
		o.setAmounts(amount, deposit),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OrderNo returns the human-readable order number.
func (o *Order) OrderNo() string {
	return o.orderNo
}

// HouseID returns the rented unit's identifier.
func (o *Order) HouseID() kernel.UUID {
	return o.houseID
}

// TenantID returns the paying party.
func (o *Order) TenantID() kernel.UUID {
	return o.tenantID
}

// LandlordID returns the receiving party, derived from the unit at creation.
func (o *Order) LandlordID() kernel.UUID {
	return o.landlordID
}

// Amount returns the order's monetary amount.
func (o *Order) Amount() decimal.Decimal {
	return o.amount
}

// Deposit returns the deposit held against the order.
func (o *Order) Deposit() decimal.Decimal {
	return o.deposit
}

// Status returns the current lifecycle state.
func (o *Order) Status() Status {
	return o.status
}

// PaymentTime returns when the order was paid, or nil before payment.
func (o *Order) PaymentTime() *time.Time {
	return o.paymentTime
}

// PaymentMethod returns the method used to pay, empty before payment.
func (o *Order) PaymentMethod() string {
	return o.paymentMethod
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the last mutation timestamp.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Version returns the optimistic concurrency counter.
func (o *Order) Version() int {
	return o.version
}

// Pay records the tenant's payment: status moves to PaidWaitingConfirm and
// payment time and method are captured. The caller writes the matching
// balanced ledger pair within the same unit of work.
func (o *Order) Pay(method string, now time.Time) error {
	if method == "" {
		return errs.NewValueIsRequiredError("payment method")
	}

	newStatus, err := o.status.Pay()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.paymentTime = &now
	o.paymentMethod = method
	o.updatedAt = now
	return nil
}

// Confirm records the landlord's acceptance of a paid order.
func (o *Order) Confirm(now time.Time) error {
	newStatus, err := o.status.Confirm()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.updatedAt = now
	return nil
}

// Cancel withdraws an unpaid order. No money has moved, so no ledger or
// inventory effect accompanies this transition.
func (o *Order) Cancel(now time.Time) error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.updatedAt = now
	return nil
}

// Refund reverses a paid-but-unconfirmed order. The caller writes the inverse
// balanced ledger pair within the same unit of work.
func (o *Order) Refund(now time.Time) error {
	newStatus, err := o.status.Refund()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.updatedAt = now
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOrderNo(orderNo string) error {
	if orderNo == "" {
		return errs.NewValueIsRequiredError("order number")
	}
	o.orderNo = orderNo
	return nil
}

func (o *Order) setParties(houseID, tenantID, landlordID kernel.UUID) error {
	if err := errors.Join(houseID.Validate(), tenantID.Validate(), landlordID.Validate()); err != nil {
		return err
	}
	o.houseID = houseID
	o.tenantID = tenantID
	o.landlordID = landlordID
	return nil
}

func (o *Order) setAmounts(amount, deposit decimal.Decimal) error {
	if amount.IsNegative() {
		return errs.NewValueIsInvalidError("amount")
	}
	if deposit.IsNegative() {
		return errs.NewValueIsInvalidError("deposit")
	}
	o.amount = amount
	o.deposit = deposit
	return nil
}
