package queries

import (
	"context"
	"errors"
	"time"

	"pizzeria/internal/core/domain/model/discount"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/services"
	"pizzeria/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	reasonUnknownCode = "discount code does not exist"
	reasonExpiredCode = "discount code has expired"
	reasonUsedCode    = "discount code has already been used"
)

// CheckDiscountCodeQueryHandler applies the checkout rules to a stored code.
// An unknown code is a negative answer, not an error.
type CheckDiscountCodeQueryHandler struct {
	db *gorm.DB
}

func NewCheckDiscountCodeQueryHandler(db *gorm.DB) CheckDiscountCodeQueryHandler {
	return CheckDiscountCodeQueryHandler{db: db}
}

func (h CheckDiscountCodeQueryHandler) Handle(
	ctx context.Context,
	query CheckDiscountCodeQuery,
) (CheckDiscountCodeQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return CheckDiscountCodeQueryResponse{}, err
	}

	resp := CheckDiscountCodeQueryResponse{Code: query.Code()}

	var row struct {
		ID      uuid.UUID
		Code    string
		Percent int
		IsUsed  bool
		UsedBy  *uuid.UUID
		Expiry  time.Time
	}
	result := h.db.WithContext(ctx).Raw(`
		SELECT id, code, percent, is_used, used_by, expiry
		FROM discount_codes
		WHERE code = ?
	`, query.Code()).Scan(&row)
	if result.Error != nil {
		return CheckDiscountCodeQueryResponse{}, errs.NewStorageError("check discount code", result.Error)
	}
	if result.RowsAffected == 0 {
		resp.Reason = reasonUnknownCode
		return resp, nil
	}

	codeID, err := kernel.UUIDFromBytes(row.ID[:])
	if err != nil {
		return CheckDiscountCodeQueryResponse{}, err
	}
	var usedBy *kernel.UUID
	if row.UsedBy != nil {
		customerID, idErr := kernel.UUIDFromBytes(row.UsedBy[:])
		if idErr != nil {
			return CheckDiscountCodeQueryResponse{}, idErr
		}
		usedBy = &customerID
	}
	code, err := discount.RestoreCode(codeID, row.Code, row.Percent, row.Expiry, row.IsUsed, usedBy)
	if err != nil {
		return CheckDiscountCodeQueryResponse{}, err
	}

	switch err = services.ValidateDiscountCode(code, query.AsOf()); {
	case err == nil:
		resp.Valid = true
		resp.Percent = code.Percent()
	case errors.Is(err, errs.ErrAlreadyUsed):
		resp.Reason = reasonUsedCode
	case errors.Is(err, errs.ErrObjectNotFound):
		resp.Reason = reasonExpiredCode
	default:
		return CheckDiscountCodeQueryResponse{}, err
	}

	return resp, nil
}
