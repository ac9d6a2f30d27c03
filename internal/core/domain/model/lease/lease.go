// Package lease contains the LeaseRecord aggregate: the durable record of an
// active tenancy created as a side effect of order confirmation, never
// independently. Exactly one lease exists per confirmed order; the storage
// layer enforces the uniqueness.
package lease

import (
	"errors"
	"time"

	"renthub/internal/core/domain/model/kernel"
	"renthub/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrLeaseIsNotConstructed is returned when a LeaseRecord was not created
// through NewLeaseRecord or RestoreLeaseRecord.
var ErrLeaseIsNotConstructed = errors.New("LeaseRecord must be created via NewLeaseRecord or RestoreLeaseRecord")

// Evaluation bounds for tenant scores.
const (
	MinEvaluationScore = 1
	MaxEvaluationScore = 5
)

// LeaseRecord tracks one tenancy: its term, rent, contract document locator,
// and the tenant's optional evaluation. The contract locator may be empty
// when document generation degraded; the backfill flow repairs it later.
type LeaseRecord struct {
	id                kernel.UUID
	orderID           kernel.UUID
	houseID           kernel.UUID
	tenantID          kernel.UUID
	landlordID        kernel.UUID
	startDate         time.Time
	endDate           time.Time
	rentAmount        decimal.Decimal
	paymentCycle      PaymentCycle
	status            Status
	actualEndDate     *time.Time
	contractLocator   string
	evaluationScore   *int
	evaluationContent string
	createdAt         time.Time
	updatedAt         time.Time

	isConstructed bool
}

// NewLeaseRecord creates an active lease. The end date must not precede the
// start date.
func NewLeaseRecord(
	id kernel.UUID,
	orderID kernel.UUID,
	houseID kernel.UUID,
	tenantID kernel.UUID,
	landlordID kernel.UUID,
	startDate time.Time,
	endDate time.Time,
	rentAmount decimal.Decimal,
	paymentCycle PaymentCycle,
	now time.Time,
) (*LeaseRecord, error) {
	l := &LeaseRecord{
		status:        StatusActive,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		l.setIDs(id, orderID, houseID, tenantID, landlordID),
		l.setTerm(startDate, endDate),
		l.setRent(rentAmount, paymentCycle),
	); err != nil {
		return nil, err
	}

	return l, nil
}

// RestoreLeaseRecord reconstructs a lease from persistence.
func RestoreLeaseRecord(
	id kernel.UUID,
	orderID kernel.UUID,
	houseID kernel.UUID,
	tenantID kernel.UUID,
	landlordID kernel.UUID,
	startDate time.Time,
	endDate time.Time,
	rentAmount decimal.Decimal,
	paymentCycle PaymentCycle,
	status Status,
	actualEndDate *time.Time,
	contractLocator string,
	evaluationScore *int,
	evaluationContent string,
	createdAt time.Time,
	updatedAt time.Time,
) (*LeaseRecord, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if evaluationScore != nil &&
		(*evaluationScore < MinEvaluationScore || *evaluationScore > MaxEvaluationScore) {
		return nil, errs.NewValueIsOutOfRangeError(
			"evaluation score", *evaluationScore, MinEvaluationScore, MaxEvaluationScore)
	}

	l := &LeaseRecord{
		status:            status,
		actualEndDate:     actualEndDate,
		contractLocator:   contractLocator,
		evaluationScore:   evaluationScore,
		evaluationContent: evaluationContent,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
		isConstructed:     true,
	}

	if err := errors.Join(
		l.setIDs(id, orderID, houseID, tenantID, landlordID),
		l.setTerm(startDate, endDate),
		l.setRent(rentAmount, paymentCycle),
	); err != nil {
		return nil, err
	}

	return l, nil
}

// Validate ensures the lease was created through a constructor.
func (l *LeaseRecord) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrLeaseIsNotConstructed
	}
	return nil
}

// ID returns the lease's identifier.
func (l *LeaseRecord) ID() kernel.UUID {
	return l.id
}

// OrderID returns the confirmed order the lease was created from.
func (l *LeaseRecord) OrderID() kernel.UUID {
	return l.orderID
}

// HouseID returns the leased unit.
func (l *LeaseRecord) HouseID() kernel.UUID {
	return l.houseID
}

// TenantID returns the renting party.
func (l *LeaseRecord) TenantID() kernel.UUID {
	return l.tenantID
}

// LandlordID returns the letting party.
func (l *LeaseRecord) LandlordID() kernel.UUID {
	return l.landlordID
}

// StartDate returns the first day of the term.
func (l *LeaseRecord) StartDate() time.Time {
	return l.startDate
}

// EndDate returns the agreed last day of the term.
func (l *LeaseRecord) EndDate() time.Time {
	return l.endDate
}

// RentAmount returns the rent per payment cycle.
func (l *LeaseRecord) RentAmount() decimal.Decimal {
	return l.rentAmount
}

// PaymentCycle returns how often rent falls due.
func (l *LeaseRecord) PaymentCycle() PaymentCycle {
	return l.paymentCycle
}

// Status returns the lease's lifecycle state.
func (l *LeaseRecord) Status() Status {
	return l.status
}

// ActualEndDate returns when the tenancy actually ended, nil while running.
func (l *LeaseRecord) ActualEndDate() *time.Time {
	return l.actualEndDate
}

// ContractLocator returns the opaque locator of the generated contract
// document, empty when generation degraded or has not run.
func (l *LeaseRecord) ContractLocator() string {
	return l.contractLocator
}

// HasContract reports whether a contract document has been attached.
func (l *LeaseRecord) HasContract() bool {
	return l.contractLocator != ""
}

// EvaluationScore returns the tenant's score, nil before evaluation.
func (l *LeaseRecord) EvaluationScore() *int {
	return l.evaluationScore
}

// EvaluationContent returns the tenant's free-text evaluation.
func (l *LeaseRecord) EvaluationContent() string {
	return l.evaluationContent
}

// CreatedAt returns the creation timestamp.
func (l *LeaseRecord) CreatedAt() time.Time {
	return l.createdAt
}

// UpdatedAt returns the last mutation timestamp.
func (l *LeaseRecord) UpdatedAt() time.Time {
	return l.updatedAt
}

// AttachContract stores the rendered document's locator, overwriting any
// previous one.
func (l *LeaseRecord) AttachContract(locator string, now time.Time) error {
	if locator == "" {
		return errs.NewValueIsRequiredError("contract locator")
	}
	l.contractLocator = locator
	l.updatedAt = now
	return nil
}

// SubmitEvaluation records the tenant's score and content. Resubmission
// overwrites the prior evaluation; the lease status does not change.
func (l *LeaseRecord) SubmitEvaluation(score int, content string, now time.Time) error {
	if score < MinEvaluationScore || score > MaxEvaluationScore {
		return errs.NewValueIsOutOfRangeError(
			"evaluation score", score, MinEvaluationScore, MaxEvaluationScore)
	}
	l.evaluationScore = &score
	l.evaluationContent = content
	l.updatedAt = now
	return nil
}

// Complete marks an active lease whose term has passed as ended.
func (l *LeaseRecord) Complete(now time.Time) error {
	if l.status != StatusActive {
		return errs.NewInvalidStateError("complete lease", l.status.String())
	}
	l.status = StatusEnded
	l.actualEndDate = &now
	l.updatedAt = now
	return nil
}

// Terminate cuts an active lease short before its agreed end date.
func (l *LeaseRecord) Terminate(now time.Time) error {
	if l.status != StatusActive {
		return errs.NewInvalidStateError("terminate lease", l.status.String())
	}
	l.status = StatusTerminated
	l.actualEndDate = &now
	l.updatedAt = now
	return nil
}

func (l *LeaseRecord) setIDs(id, orderID, houseID, tenantID, landlordID kernel.UUID) error {
	if err := errors.Join(
		id.Validate(), orderID.Validate(), houseID.Validate(),
		tenantID.Validate(), landlordID.Validate(),
	); err != nil {
		return err
	}
	l.id = id
	l.orderID = orderID
	l.houseID = houseID
	l.tenantID = tenantID
	l.landlordID = landlordID
	return nil
}

func (l *LeaseRecord) setTerm(startDate, endDate time.Time) error {
	if endDate.Before(startDate) {
		return errs.NewValueIsInvalidError("lease term")
	}
	l.startDate = startDate
	l.endDate = endDate
	return nil
}

func (l *LeaseRecord) setRent(rentAmount decimal.Decimal, paymentCycle PaymentCycle) error {
	if rentAmount.IsNegative() {
		return errs.NewValueIsInvalidError("rent amount")
	}
	if err := paymentCycle.Validate(); err != nil {
		return err
	}
	l.rentAmount = rentAmount
	l.paymentCycle = paymentCycle
	return nil
}
