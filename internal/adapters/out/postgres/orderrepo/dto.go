// Package orderrepo persists order aggregates through GORM, converting
// between the domain model and its relational representation.
package orderrepo

import (
	"time"

	"renthub/internal/core/domain/model/kernel"
	"renthub/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is the database row backing an order aggregate. The order number
// carries a unique index so a generator collision fails the insert instead of
// producing two orders with the same number. Version backs the optimistic
// concurrency check in Update.
type OrderDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderNo       string    `gorm:"uniqueIndex;size:32"`
	HouseID       uuid.UUID `gorm:"type:uuid;index"`
	TenantID      uuid.UUID `gorm:"type:uuid;index"`
	LandlordID    uuid.UUID `gorm:"type:uuid;index"`
	Amount        decimal.Decimal `gorm:"type:numeric(12,2)"`
	Deposit       decimal.Decimal `gorm:"type:numeric(12,2)"`
	Status        int `gorm:"index"`
	PaymentTime   *time.Time
	PaymentMethod string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	Version       int
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(o *order.Order) OrderDTO {
	return OrderDTO{
		ID:            o.ID().Bytes(),
		OrderNo:       o.OrderNo(),
		HouseID:       o.HouseID().Bytes(),
		TenantID:      o.TenantID().Bytes(),
		LandlordID:    o.LandlordID().Bytes(),
		Amount:        o.Amount(),
		Deposit:       o.Deposit(),
		Status:        int(o.Status()),
		PaymentTime:   o.PaymentTime(),
		PaymentMethod: o.PaymentMethod(),
		CreatedAt:     o.CreatedAt(),
		UpdatedAt:     o.UpdatedAt(),
		Version:       o.Version(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
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

	return order.RestoreOrder(
		id,
		dto.OrderNo,
		houseID,
		tenantID,
		landlordID,
		dto.Amount,
		dto.Deposit,
		order.Status(dto.Status),
		dto.PaymentTime,
		dto.PaymentMethod,
		dto.CreatedAt,
		dto.UpdatedAt,
		dto.Version,
	)
}
