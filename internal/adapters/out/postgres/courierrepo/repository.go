package courierrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pizzeria/internal/adapters/out/postgres/pgerrs"
	"pizzeria/internal/core/domain/model/courier"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCourierRepository implements CourierRepository using GORM.
type GormCourierRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCourierRepository creates a new GORM courier repository.
func NewGormCourierRepository(db *gorm.DB, tracker aggregateTracker) *GormCourierRepository {
	return &GormCourierRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new courier with its coverages.
func (r *GormCourierRepository) Add(ctx context.Context, aggregate *courier.Courier) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerrs.Translate("add courier", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes availability and binding and inserts coverages added since
// the courier was loaded. Binding is conditional on the stored row being
// unbound or bound to the same order.
func (r *GormCourierRepository) Update(ctx context.Context, aggregate *courier.Courier) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	query := r.db.WithContext(ctx).Model(&CourierDTO{}).Where("id = ?", dto.ID)
	if dto.CurrentOrderID != nil {
		query = query.Where("(current_order_id IS NULL OR current_order_id = ?)", *dto.CurrentOrderID)
	}

	result := query.Updates(map[string]any{
		"is_available":       dto.IsAvailable,
		"last_delivery_time": dto.LastDeliveryTime,
		"current_order_id":   dto.CurrentOrderID,
	})
	if result.Error != nil {
		return pgerrs.Translate("update courier", result.Error)
	}
	if result.RowsAffected == 0 {
		if dto.CurrentOrderID != nil {
			return errs.NewNoCourierAvailableError(fmt.Sprintf("courier %s was bound by another order", aggregate.ID()))
		}
		return errs.NewObjectNotFoundError("courier", aggregate.ID().String())
	}

	if len(dto.Coverages) > 0 {
		if err := r.db.WithContext(ctx).
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(&dto.Coverages).Error; err != nil {
			return pgerrs.Translate("add courier coverage", err)
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a courier by ID.
func (r *GormCourierRepository) Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error) {
	return r.get(ctx, r.db, id)
}

func (r *GormCourierRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*courier.Courier, error) {
	return r.get(ctx, r.db.Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}), id)
}

// GetAvailableCovering locks the candidate rows with SELECT ... FOR UPDATE OF couriers.
// The availability predicate is evaluated again after a lock wait, so a courier
// bound by the transaction holding the lock drops out.
func (r *GormCourierRepository) GetAvailableCovering(
	ctx context.Context,
	postalCode kernel.PostalCode,
	asOf time.Time,
) ([]*courier.Courier, error) {
	if err := postalCode.Validate(); err != nil {
		return nil, err
	}

	var dtos []CourierDTO
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate, Table: clause.Table{Name: "couriers"}}).
		Preload("Coverages").
		Select("couriers.*").
		Joins("JOIN courier_coverages ON courier_coverages.courier_id = couriers.id").
		Where("courier_coverages.postal_code = ?", postalCode.String()).
		Where("couriers.current_order_id IS NULL").
		Where("(couriers.is_available OR couriers.last_delivery_time < ?)", asOf.Add(-courier.CoolDown)).
		Order("couriers.id").
		Find(&dtos).Error; err != nil {
		return nil, pgerrs.Translate("get available couriers", err)
	}

	couriers := make([]*courier.Courier, 0, len(dtos))
	for _, dto := range dtos {
		c, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		couriers = append(couriers, c)
	}

	return couriers, nil
}

func (r *GormCourierRepository) get(ctx context.Context, db *gorm.DB, id kernel.UUID) (*courier.Courier, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CourierDTO
	if err := db.WithContext(ctx).Preload("Coverages").First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("courier", id.String())
		}
		return nil, pgerrs.Translate("get courier", err)
	}

	return toDomain(dto)
}
