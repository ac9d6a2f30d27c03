// Package leaserepo persists lease records through GORM.
package leaserepo

import (
	"time"

	"renthub/internal/core/domain/model/kernel"
	"renthub/internal/core/domain/model/lease"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LeaseRecordDTO is the database row backing a lease record. OrderID carries
// a unique index: at most one lease exists per confirmed order, enforced at
// the storage level even under concurrent confirmation attempts.
type LeaseRecordDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID           uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	HouseID           uuid.UUID `gorm:"type:uuid;index"`
	TenantID          uuid.UUID `gorm:"type:uuid;index"`
	LandlordID        uuid.UUID `gorm:"type:uuid;index"`
	StartDate         time.Time
	EndDate           time.Time `gorm:"index"`
	RentAmount        decimal.Decimal `gorm:"type:numeric(12,2)"`
	PaymentCycle      string `gorm:"size:16"`
	Status            int `gorm:"index"`
	ActualEndDate     *time.Time
	ContractLocator   string
	EvaluationScore   *int
	EvaluationContent string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName overrides GORM's default naming to use "lease_records".
func (LeaseRecordDTO) TableName() string {
	return "lease_records"
}

func fromDomain(l *lease.LeaseRecord) LeaseRecordDTO {
	return LeaseRecordDTO{
		ID:                l.ID().Bytes(),
		OrderID:           l.OrderID().Bytes(),
		HouseID:           l.HouseID().Bytes(),
		TenantID:          l.TenantID().Bytes(),
		LandlordID:        l.LandlordID().Bytes(),
		StartDate:         l.StartDate(),
		EndDate:           l.EndDate(),
		RentAmount:        l.RentAmount(),
		PaymentCycle:      string(l.PaymentCycle()),
		Status:            int(l.Status()),
		ActualEndDate:     l.ActualEndDate(),
		ContractLocator:   l.ContractLocator(),
		EvaluationScore:   l.EvaluationScore(),
		EvaluationContent: l.EvaluationContent(),
		CreatedAt:         l.CreatedAt(),
		UpdatedAt:         l.UpdatedAt(),
	}
}

func toDomain(dto LeaseRecordDTO) (*lease.LeaseRecord, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	houseID, err := kernel.UUIDFromBytes(dto.HouseID[:])
	if err != nil {
		return nil, err
	}
	tenantID, err := kernel.UUIDFromBytes(dto.TenantID[:])
	if err != nil {
		return nil, err
	}
	landlordID, err := kernel.UUIDFromBytes(dto.LandlordID[:])
	if err != nil {
		return nil, err
	}

	return lease.RestoreLeaseRecord(
		id,
		orderID,
		houseID,
		tenantID,
		landlordID,
		dto.StartDate,
		dto.EndDate,
		dto.RentAmount,
		lease.PaymentCycle(dto.PaymentCycle),
		lease.Status(dto.Status),
		dto.ActualEndDate,
		dto.ContractLocator,
		dto.EvaluationScore,
		dto.EvaluationContent,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
