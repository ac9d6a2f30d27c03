// Package userrepo implements the user directory port over the users table.
// The core only resolves user snapshots; account management lives elsewhere.
package userrepo

import (
	"time"

	"renthub/internal/core/domain/model/kernel"
	"renthub/internal/core/ports"

	"github.com/google/uuid"
)

// UserDTO is the database row for a user as seen by the directory.
type UserDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string
	Phone     string
	Role      string `gorm:"size:16"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides GORM's default naming to use "users".
func (UserDTO) TableName() string {
	return "users"
}

func toSnapshot(dto UserDTO) (ports.UserSnapshot, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return ports.UserSnapshot{}, err
	}

	return ports.UserSnapshot{
		ID:    id,
		Name:  dto.Name,
		Phone: dto.Phone,
	}, nil
}
