// Package houserepo implements the house inventory port over the houses
// table. The core only reads unit snapshots and flips availability; listing
// management writes the rest of the row elsewhere.
package houserepo

import (
	"time"

	"renthub/internal/core/domain/model/house"
	"renthub/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// HouseDTO is the database row for a rentable unit.
type HouseDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID   uuid.UUID `gorm:"type:uuid;index"`
	Price     decimal.Decimal `gorm:"type:numeric(12,2)"`
	Status    int `gorm:"index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides GORM's default naming to use "houses".
func (HouseDTO) TableName() string {
	return "houses"
}

func toDomain(dto HouseDTO) (house.Unit, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return house.Unit{}, err
	}
	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return house.Unit{}, err
	}

	return house.NewUnit(id, ownerID, dto.Price, house.Status(dto.Status))
}
