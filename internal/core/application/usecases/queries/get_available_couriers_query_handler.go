package queries

import (
	"context"

	"pizzeria/internal/core/domain/model/courier"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAvailableCouriersQueryHandler reads the dispatch candidates without
// locking them. The result can be stale by the time an order is placed; the
// dispatcher re-reads the couriers under a row lock.
type GetAvailableCouriersQueryHandler struct {
	db *gorm.DB
}

func NewGetAvailableCouriersQueryHandler(db *gorm.DB) GetAvailableCouriersQueryHandler {
	return GetAvailableCouriersQueryHandler{db: db}
}

// Handle returns the unbound couriers covering the postal code that are
// available or past their cool-down, fastest coverage first. Equal ETAs are
// ordered by courier id.
func (h GetAvailableCouriersQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableCouriersQuery,
) ([]GetAvailableCouriersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	couriers := make([]GetAvailableCouriersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			c.id,
			c.name,
			c.phone,
			c.vehicle_type,
			cc.area_name,
			cc.eta_minutes
		FROM couriers c
		JOIN courier_coverages cc ON cc.courier_id = c.id
		WHERE cc.postal_code = ?
			AND c.current_order_id IS NULL
			AND (c.is_available OR c.last_delivery_time < ?)
		ORDER BY cc.eta_minutes, c.id::text
	`, query.PostalCode().String(), query.AsOf().Add(-courier.CoolDown)).Rows()
	if err != nil {
		return nil, errs.NewStorageError("get available couriers", err)
	}
	defer rows.Close()

	for rows.Next() {
		var candidate GetAvailableCouriersQueryResponse
		var id uuid.UUID
		var vehicle int

		err = rows.Scan(
			&id,
			&candidate.Name,
			&candidate.Phone,
			&vehicle,
			&candidate.AreaName,
			&candidate.ETAMinutes,
		)
		if err != nil {
			return nil, errs.NewStorageError("get available couriers", err)
		}

		courierID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		candidate.ID = courierID
		candidate.Vehicle = courier.VehicleType(vehicle)
		couriers = append(couriers, candidate)
	}

	if err = rows.Err(); err != nil {
		return nil, errs.NewStorageError("get available couriers", err)
	}

	return couriers, nil
}
