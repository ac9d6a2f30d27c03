// Package ledgerrepo persists ledger entries through GORM. The ledger is
// append-only: the repository exposes no update or delete path.
package ledgerrepo

import (
	"time"

	"renthub/internal/core/domain/model/kernel"
	"renthub/internal/core/domain/model/ledger"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LedgerEntryDTO is the database row backing one ledger entry.
type LedgerEntryDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `gorm:"type:uuid;index"`
	UserID      uuid.UUID `gorm:"type:uuid;index"`
	Direction   int
	Amount      decimal.Decimal `gorm:"type:numeric(12,2)"`
	Description string
	CreatedAt   time.Time
}

// TableName overrides GORM's default naming to use "ledger_entries".
func (LedgerEntryDTO) TableName() string {
	return "ledger_entries"
}

func fromDomain(e ledger.Entry) LedgerEntryDTO {
	return LedgerEntryDTO{
		ID:          e.ID().Bytes(),
		OrderID:     e.OrderID().Bytes(),
		UserID:      e.UserID().Bytes(),
		Direction:   int(e.Direction()),
		Amount:      e.Amount(),
		Description: e.Description(),
		CreatedAt:   e.CreatedAt(),
	}
}

func toDomain(dto LedgerEntryDTO) (ledger.Entry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return ledger.Entry{}, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return ledger.Entry{}, err
	}
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return ledger.Entry{}, err
	}

	return ledger.NewEntry(
		id,
		orderID,
		userID,
		ledger.Direction(dto.Direction),
		dto.Amount,
		dto.Description,
		dto.CreatedAt,
	)
}
