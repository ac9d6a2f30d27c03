package queries

import (
	"context"

	"renthub/internal/core/domain/model/kernel"
	"renthub/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetUserLedgerQueryHandler reads a user's ledger entries from the database,
// newest first.
type GetUserLedgerQueryHandler struct {
	db *gorm.DB
}

// NewGetUserLedgerQueryHandler creates a handler for user ledger queries.
func NewGetUserLedgerQueryHandler(db *gorm.DB) GetUserLedgerQueryHandler {
	return GetUserLedgerQueryHandler{db: db}
}

// Handle executes the query. The actor must be the ledger's owner or an
// admin.
func (h GetUserLedgerQueryHandler) Handle(
	ctx context.Context,
	query GetUserLedgerQuery,
) ([]GetUserLedgerQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if !query.Actor().Is(query.UserID()) && !query.Actor().IsAdmin() {
		return nil, errs.NewPermissionError("read ledger", query.Actor().UserID().String())
	}

	entries := make([]GetUserLedgerQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			direction,
			amount,
			description,
			created_at
		FROM ledger_entries
		WHERE user_id = ?
		ORDER BY created_at DESC, id
	`, query.UserID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry GetUserLedgerQueryResponse
		var id, orderID uuid.UUID

		err = rows.Scan(
			&id,
			&orderID,
			&entry.Direction,
			&entry.Amount,
			&entry.Description,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		entry.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		entry.OrderID, err = kernel.UUIDFromBytes(orderID[:])
		if err != nil {
			return nil, err
		}

		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
