package discountrepo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"pizzeria/internal/adapters/out/postgres/pgerrs"
	"pizzeria/internal/core/domain/model/discount"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDiscountCodeRepository implements DiscountCodeRepository using GORM.
type GormDiscountCodeRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormDiscountCodeRepository(db *gorm.DB, tracker aggregateTracker) *GormDiscountCodeRepository {
	return &GormDiscountCodeRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormDiscountCodeRepository) Add(ctx context.Context, code *discount.Code) error {
	if err := code.Validate(); err != nil {
		return err
	}

	dto := fromDomain(code)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerrs.Translate("add discount code", err)
	}

	r.tracker.TrackAggregate(code.ID(), code)
	return nil
}

func (r *GormDiscountCodeRepository) GetByCode(ctx context.Context, code string) (*discount.Code, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, errs.NewValueIsRequiredError("discount code")
	}

	var dto DiscountCodeDTO
	if err := r.db.WithContext(ctx).First(&dto, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("discount code", code)
		}
		return nil, pgerrs.Translate("get discount code", err)
	}

	return toDomain(dto)
}

// MarkUsed flips is_used only while it is still false. A concurrent redeemer
// waits on the row lock and then matches no row.
func (r *GormDiscountCodeRepository) MarkUsed(ctx context.Context, code *discount.Code) error {
	if err := code.Validate(); err != nil {
		return err
	}
	if !code.IsUsed() || code.UsedBy() == nil {
		return errs.NewValueIsInvalidErrorWithCause("discount code",
			fmt.Errorf("code %s has not been redeemed", code.Code()))
	}

	result := r.db.WithContext(ctx).
		Model(&DiscountCodeDTO{}).
		Where("id = ? AND is_used = ?", code.ID().Bytes(), false).
		Updates(map[string]any{
			"is_used": true,
			"used_by": code.UsedBy().Bytes(),
		})
	if result.Error != nil {
		return pgerrs.Translate("mark discount code used", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewAlreadyUsedError(fmt.Sprintf("discount code %s has already been used", code.Code()))
	}

	r.tracker.TrackAggregate(code.ID(), code)
	return nil
}
