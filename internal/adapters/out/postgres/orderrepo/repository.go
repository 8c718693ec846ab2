package orderrepo

import (
	"context"
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.ID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the order and all of its items in one statement batch and
// assigns the generated order id to the aggregate.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	if err := aggregate.AssignID(kernel.ID(dto.ID)); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes the order status. Items are never rewritten.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", aggregate.ID().Int64()).
		Update("status", aggregate.Status().String())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().Int64())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order with its items. Non-positive ids are reported as
// not found.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.ID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, errs.NewObjectNotFoundErrorWithCause("order", id.Int64(), err)
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_items.id")
		}).
		First(&dto, "id = ?", id.Int64()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.Int64())
		}
		return nil, err
	}

	return toDomain(dto)
}
