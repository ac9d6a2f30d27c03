package queries

import (
	"context"
	"database/sql"
	"errors"

	"renthub/internal/core/domain/model/kernel"
	"renthub/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetLeaseByOrderQueryHandler reads the lease belonging to an order. At most
// one exists; the lease table carries a unique index on the order reference.
type GetLeaseByOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetLeaseByOrderQueryHandler creates a handler for lease-by-order
// lookups.
func NewGetLeaseByOrderQueryHandler(db *gorm.DB) GetLeaseByOrderQueryHandler {
	return GetLeaseByOrderQueryHandler{db: db}
}

// Handle executes the lookup. Only the lease's tenant, its landlord, or an
// admin may read it.
func (h GetLeaseByOrderQueryHandler) Handle(
	ctx context.Context,
	query GetLeaseByOrderQuery,
) (GetLeaseByOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetLeaseByOrderQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			house_id,
			tenant_id,
			landlord_id,
			start_date,
			end_date,
			rent_amount,
			payment_cycle,
			status,
			contract_locator
		FROM lease_records
		WHERE order_id = ?
	`, query.OrderID().String()).Row()

	var resp GetLeaseByOrderQueryResponse
	var id, orderID, houseID, tenantID, landlordID uuid.UUID

	err := row.Scan(
		&id,
		&orderID,
		&houseID,
		&tenantID,
		&landlordID,
		&resp.StartDate,
		&resp.EndDate,
		&resp.RentAmount,
		&resp.PaymentCycle,
		&resp.Status,
		&resp.ContractLocator,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetLeaseByOrderQueryResponse{}, errs.NewObjectNotFoundErrorWithCause(
				"lease", query.OrderID().String(), err)
		}
		return GetLeaseByOrderQueryResponse{}, err
	}

	resp.ID, err = kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetLeaseByOrderQueryResponse{}, err
	}
	resp.OrderID, err = kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return GetLeaseByOrderQueryResponse{}, err
	}
	resp.HouseID, err = kernel.UUIDFromBytes(houseID[:])
	if err != nil {
		return GetLeaseByOrderQueryResponse{}, err
	}
	resp.TenantID, err = kernel.UUIDFromBytes(tenantID[:])
	if err != nil {
		return GetLeaseByOrderQueryResponse{}, err
	}
	resp.LandlordID, err = kernel.UUIDFromBytes(landlordID[:])
	if err != nil {
		return GetLeaseByOrderQueryResponse{}, err
	}

	if !query.Actor().Is(resp.TenantID) && !query.Actor().Is(resp.LandlordID) && !query.Actor().IsAdmin() {
		return GetLeaseByOrderQueryResponse{}, errs.NewPermissionError(
			"read lease", query.Actor().UserID().String())
	}

	return resp, nil
}
