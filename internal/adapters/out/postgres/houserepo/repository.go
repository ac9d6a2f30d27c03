package houserepo

import (
	"context"
	"errors"

	"renthub/internal/core/domain/model/house"
	"renthub/internal/core/domain/model/kernel"
	"renthub/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormHouseInventory implements the house inventory port using GORM.
type GormHouseInventory struct {
	db *gorm.DB
}

// NewGormHouseInventory creates a new GORM house inventory.
func NewGormHouseInventory(db *gorm.DB) *GormHouseInventory {
	return &GormHouseInventory{db: db}
}

// GetUnit retrieves the snapshot of a unit.
func (r *GormHouseInventory) GetUnit(ctx context.Context, id kernel.UUID) (house.Unit, error) {
	if err := id.Validate(); err != nil {
		return house.Unit{}, err
	}

	var dto HouseDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return house.Unit{}, errs.NewObjectNotFoundError("house", id.String())
		}
		return house.Unit{}, err
	}

	return toDomain(dto)
}

// SetUnitStatus updates a unit's availability.
func (r *GormHouseInventory) SetUnitStatus(ctx context.Context, id kernel.UUID, status house.Status) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if err := status.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&HouseDTO{}).
		Where("id = ?", id.Bytes()).
		Update("status", int(status))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("house", id.String())
	}

	return nil
}
