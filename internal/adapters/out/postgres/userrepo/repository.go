package userrepo

import (
	"context"
	"errors"
	"strings"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/user"
	"ordering/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

const uniqueViolation = "23505"

// GormUserRepository implements ports.UserRepository using GORM.
type GormUserRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.ID, aggregate any)
}

func NewGormUserRepository(db *gorm.DB, tracker aggregateTracker) *GormUserRepository {
	return &GormUserRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the user and assigns the generated id.
func (r *GormUserRepository) Add(ctx context.Context, aggregate *user.User) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if isUniqueViolation(err) {
			return errs.NewObjectAlreadyExistsErrorWithCause("user", aggregate.Email(), err)
		}
		return err
	}

	if err := aggregate.AssignID(kernel.ID(dto.ID)); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a user by ID. Non-positive ids are reported as not found.
func (r *GormUserRepository) Get(ctx context.Context, id kernel.ID) (*user.User, error) {
	if err := id.Validate(); err != nil {
		return nil, errs.NewObjectNotFoundErrorWithCause("user", id.Int64(), err)
	}

	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user", id.Int64())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	email = strings.ToLower(email)

	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user", email)
		}
		return nil, err
	}

	return toDomain(dto)
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == uniqueViolation
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
