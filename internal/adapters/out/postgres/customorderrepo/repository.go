package customorderrepo

import (
	"context"
	"errors"
	"time"

	"marketplace/internal/core/domain/model/customorder"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCustomOrderRepository implements CustomOrderRepository using GORM.
type GormCustomOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCustomOrderRepository creates a new GORM custom order repository.
func NewGormCustomOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormCustomOrderRepository {
	return &GormCustomOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new custom order to the database.
func (r *GormCustomOrderRepository) Add(ctx context.Context, aggregate *customorder.CustomOrder) error {
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

// Update saves an existing custom order to the database. The write is
// conditional on the stored status still being the status the aggregate was
// loaded with; a zero-row update means a concurrent transition won the race.
func (r *GormCustomOrderRepository) Update(ctx context.Context, aggregate *customorder.CustomOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&CustomOrderDTO{}).
		Where("id = ? AND status = ?", dto.ID, int(aggregate.LoadedStatus())).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewConflictError("customOrder", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a custom order by ID.
func (r *GormCustomOrderRepository) Get(ctx context.Context, id kernel.UUID) (*customorder.CustomOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CustomOrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("customOrder", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete physically removes a custom order.
func (r *GormCustomOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&CustomOrderDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("customOrder", id.String())
	}
	return nil
}

// GetAllPendingPastDeadline retrieves pending custom orders whose delivery
// deadline lies at or before the given instant.
func (r *GormCustomOrderRepository) GetAllPendingPastDeadline(
	ctx context.Context,
	now time.Time,
) ([]*customorder.CustomOrder, error) {
	var dtos []CustomOrderDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "status = ? AND deadline IS NOT NULL AND deadline <= ?", int(customorder.Pending), now).
		Error
	if err != nil {
		return nil, err
	}

	customOrders := make([]*customorder.CustomOrder, 0, len(dtos))
	for _, dto := range dtos {
		co, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		customOrders = append(customOrders, co)
	}

	return customOrders, nil
}
