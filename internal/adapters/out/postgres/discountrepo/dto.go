// Package discountrepo persists discount codes with GORM.
package discountrepo

import (
	"time"

	"pizzeria/internal/core/domain/model/discount"
	"pizzeria/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type DiscountCodeDTO struct {
	ID      uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Code    string     `gorm:"type:varchar(64);not null;uniqueIndex:idx_discount_codes_code"`
	Percent int        `gorm:"type:int;not null;check:chk_discount_codes_percent,percent BETWEEN 1 AND 100"`
	IsUsed  bool       `gorm:"not null;default:false"`
	UsedBy  *uuid.UUID `gorm:"type:uuid"`
	Expiry  time.Time  `gorm:"type:date;not null"`
}

func (DiscountCodeDTO) TableName() string {
	return "discount_codes"
}

func fromDomain(code *discount.Code) DiscountCodeDTO {
	var usedBy *uuid.UUID
	if id := code.UsedBy(); id != nil {
		raw := id.Bytes()
		usedBy = &raw
	}

	return DiscountCodeDTO{
		ID:      code.ID().Bytes(),
		Code:    code.Code(),
		Percent: code.Percent(),
		IsUsed:  code.IsUsed(),
		UsedBy:  usedBy,
		Expiry:  code.Expiry(),
	}
}

func toDomain(dto DiscountCodeDTO) (*discount.Code, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var usedBy *kernel.UUID
	if dto.UsedBy != nil {
		customerID, customerErr := kernel.UUIDFromBytes((*dto.UsedBy)[:])
		if customerErr != nil {
			return nil, customerErr
		}
		usedBy = &customerID
	}

	return discount.RestoreCode(id, dto.Code, dto.Percent, dto.Expiry, dto.IsUsed, usedBy)
}
