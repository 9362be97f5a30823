// Package courierrepo persists courier aggregates and their coverages with GORM.
package courierrepo

import (
	"time"

	"pizzeria/internal/core/domain/model/courier"
	"pizzeria/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CourierDTO is the couriers table row. CurrentOrderID is set while the
// courier is bound to an order.
type CourierDTO struct {
	ID               uuid.UUID     `gorm:"type:uuid;primaryKey"`
	Name             string        `gorm:"type:varchar(255);not null"`
	Phone            string        `gorm:"type:varchar(32);not null"`
	VehicleType      int           `gorm:"type:smallint;not null"`
	IsAvailable      bool          `gorm:"not null"`
	LastDeliveryTime *time.Time    `gorm:"index"`
	CurrentOrderID   *uuid.UUID    `gorm:"type:uuid;uniqueIndex:idx_couriers_current_order"`
	Coverages        []CoverageDTO `gorm:"foreignKey:CourierID;constraint:OnDelete:CASCADE"`
}

func (CourierDTO) TableName() string {
	return "couriers"
}

// CoverageDTO is one postal code served by a courier.
type CoverageDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CourierID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_coverages_courier_postal_code"`
	PostalCode string    `gorm:"type:varchar(16);not null;uniqueIndex:idx_coverages_courier_postal_code;index"`
	AreaName   string    `gorm:"type:varchar(100);not null"`
	ETAMinutes int       `gorm:"column:eta_minutes;type:int;not null;check:chk_coverages_eta,eta_minutes BETWEEN 1 AND 120"`
}

func (CoverageDTO) TableName() string {
	return "courier_coverages"
}

func fromDomain(aggregate *courier.Courier) CourierDTO {
	courierID := aggregate.ID().Bytes()
	coverages := make([]CoverageDTO, 0, len(aggregate.Coverages()))

	for _, coverage := range aggregate.Coverages() {
		coverages = append(coverages, CoverageDTO{
			ID:         coverage.ID().Bytes(),
			CourierID:  courierID,
			PostalCode: coverage.PostalCode().String(),
			AreaName:   coverage.AreaName(),
			ETAMinutes: coverage.ETAMinutes(),
		})
	}

	var currentOrderID *uuid.UUID
	if id := aggregate.CurrentOrder(); id != nil {
		raw := id.Bytes()
		currentOrderID = &raw
	}

	return CourierDTO{
		ID:               courierID,
		Name:             aggregate.Name(),
		Phone:            aggregate.Phone(),
		VehicleType:      int(aggregate.Vehicle()),
		IsAvailable:      aggregate.IsAvailable(),
		LastDeliveryTime: aggregate.LastDelivery(),
		CurrentOrderID:   currentOrderID,
		Coverages:        coverages,
	}
}

func toDomain(dto CourierDTO) (*courier.Courier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var currentOrderID *kernel.UUID
	if dto.CurrentOrderID != nil {
		orderID, orderErr := kernel.UUIDFromBytes((*dto.CurrentOrderID)[:])
		if orderErr != nil {
			return nil, orderErr
		}
		currentOrderID = &orderID
	}

	coverages := make([]*courier.Coverage, 0, len(dto.Coverages))
	for _, coverageDTO := range dto.Coverages {
		coverage, coverageErr := coverageToDomain(coverageDTO)
		if coverageErr != nil {
			return nil, coverageErr
		}
		coverages = append(coverages, coverage)
	}

	return courier.RestoreCourier(
		id,
		dto.Name,
		dto.Phone,
		courier.VehicleType(dto.VehicleType),
		dto.IsAvailable,
		dto.LastDeliveryTime,
		currentOrderID,
		coverages,
	)
}

func coverageToDomain(dto CoverageDTO) (*courier.Coverage, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	postalCode, err := kernel.NewPostalCode(dto.PostalCode)
	if err != nil {
		return nil, err
	}
	return courier.NewCoverage(id, postalCode, dto.AreaName, dto.ETAMinutes)
}
