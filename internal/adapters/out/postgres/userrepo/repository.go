package userrepo

import (
	"context"
	"errors"

	"renthub/internal/core/domain/model/kernel"
	"renthub/internal/core/ports"
	"renthub/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormUserDirectory implements the user directory port using GORM.
type GormUserDirectory struct {
	db *gorm.DB
}

// NewGormUserDirectory creates a new GORM user directory.
func NewGormUserDirectory(db *gorm.DB) *GormUserDirectory {
	return &GormUserDirectory{db: db}
}

// GetUser retrieves the snapshot of a user.
func (r *GormUserDirectory) GetUser(ctx context.Context, id kernel.UUID) (ports.UserSnapshot, error) {
	if err := id.Validate(); err != nil {
		return ports.UserSnapshot{}, err
	}

	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.UserSnapshot{}, errs.NewObjectNotFoundError("user", id.String())
		}
		return ports.UserSnapshot{}, err
	}

	return toSnapshot(dto)
}
