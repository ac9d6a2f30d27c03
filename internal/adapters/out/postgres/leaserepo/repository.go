package leaserepo

import (
	"context"
	"errors"
	"time"

	"renthub/internal/core/domain/model/kernel"
	"renthub/internal/core/domain/model/lease"
	"renthub/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormLeaseRepository implements LeaseRepository using GORM.
type GormLeaseRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormLeaseRepository creates a new GORM lease repository.
func NewGormLeaseRepository(db *gorm.DB, tracker aggregateTracker) *GormLeaseRepository {
	return &GormLeaseRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new lease record. A second lease for the same order violates
// the unique order index and fails the insert.
func (r *GormLeaseRepository) Add(ctx context.Context, aggregate *lease.LeaseRecord) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing lease record.
func (r *GormLeaseRepository) Update(ctx context.Context, aggregate *lease.LeaseRecord) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&LeaseRecordDTO{}).
		Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("lease", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a lease record by ID.
func (r *GormLeaseRepository) Get(ctx context.Context, id kernel.UUID) (*lease.LeaseRecord, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto LeaseRecordDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("lease", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByOrderID retrieves the lease record created from the given order.
func (r *GormLeaseRepository) GetByOrderID(ctx context.Context, orderID kernel.UUID) (*lease.LeaseRecord, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto LeaseRecordDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_id = ?", orderID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("lease", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllActiveExpired retrieves active leases whose end date lies before asOf.
func (r *GormLeaseRepository) GetAllActiveExpired(ctx context.Context, asOf time.Time) ([]*lease.LeaseRecord, error) {
	var dtos []LeaseRecordDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "status = ? AND end_date < ?", lease.StatusActive, asOf).Error
	if err != nil {
		return nil, err
	}

	return r.toDomainAll(dtos)
}

// GetAllMissingContract retrieves leases without a contract locator.
func (r *GormLeaseRepository) GetAllMissingContract(ctx context.Context) ([]*lease.LeaseRecord, error) {
	var dtos []LeaseRecordDTO
	err := r.db.WithContext(ctx).Find(&dtos, "contract_locator = ''").Error
	if err != nil {
		return nil, err
	}

	return r.toDomainAll(dtos)
}

func (r *GormLeaseRepository) toDomainAll(dtos []LeaseRecordDTO) ([]*lease.LeaseRecord, error) {
	leases := make([]*lease.LeaseRecord, 0, len(dtos))
	for _, dto := range dtos {
		l, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		leases = append(leases, l)
	}
	return leases, nil
}
