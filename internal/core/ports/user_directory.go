package ports

import (
	"context"

	"renthub/internal/core/domain/model/kernel"
)

// UserSnapshot is the read-side view of a party needed by lease creation and
// contract rendering: plain data, no live reference to the user store.
type UserSnapshot struct {
	ID    kernel.UUID
	Name  string
	Phone string
}

// UserDirectory is the collaborator resolving user references. An order or
// lease pointing at a user the directory cannot resolve is a data integrity
// failure.
type UserDirectory interface {
	// GetUser retrieves the snapshot of a user.
	GetUser(ctx context.Context, id kernel.UUID) (UserSnapshot, error)
}
