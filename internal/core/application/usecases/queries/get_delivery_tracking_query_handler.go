package queries

import (
	"context"
	"time"

	"pizzeria/internal/core/domain/model/courier"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetDeliveryTrackingQueryHandler struct {
	db *gorm.DB
}

func NewGetDeliveryTrackingQueryHandler(db *gorm.DB) GetDeliveryTrackingQueryHandler {
	return GetDeliveryTrackingQueryHandler{db: db}
}

type deliveryTrackingRow struct {
	Status            int
	CreatedAt         time.Time
	EstimatedDelivery *time.Time
	ActualDelivery    *time.Time
	Notes             string
	CustomerName      string
	Address           string
	PostalCode        string
	CourierID         *uuid.UUID
	CourierName       *string
	CourierPhone      *string
	VehicleType       *int
	AreaName          *string
}

func (h GetDeliveryTrackingQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryTrackingQuery,
) (GetDeliveryTrackingQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDeliveryTrackingQueryResponse{}, err
	}

	var row deliveryTrackingRow
	result := h.db.WithContext(ctx).Raw(`
		SELECT
			o.status             AS status,
			o.created_at         AS created_at,
			o.estimated_delivery AS estimated_delivery,
			o.actual_delivery    AS actual_delivery,
			COALESCE(o.notes, '') AS notes,
			cu.name              AS customer_name,
			cu.address           AS address,
			cu.postal_code       AS postal_code,
			c.id                 AS courier_id,
			c.name               AS courier_name,
			c.phone              AS courier_phone,
			c.vehicle_type       AS vehicle_type,
			cc.area_name         AS area_name
		FROM orders o
		JOIN customers cu ON cu.id = o.customer_id
		LEFT JOIN couriers c ON c.id = o.courier_id
		LEFT JOIN courier_coverages cc ON cc.courier_id = c.id AND cc.postal_code = cu.postal_code
		WHERE o.id = ?
	`, query.OrderID().String()).Scan(&row)
	if result.Error != nil {
		return GetDeliveryTrackingQueryResponse{}, errs.NewStorageError("get delivery tracking", result.Error)
	}
	if result.RowsAffected == 0 {
		return GetDeliveryTrackingQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID())
	}

	tracking := GetDeliveryTrackingQueryResponse{
		OrderID:           query.OrderID(),
		Status:            order.Status(row.Status),
		CreatedAt:         row.CreatedAt,
		EstimatedDelivery: row.EstimatedDelivery,
		ActualDelivery:    row.ActualDelivery,
		Notes:             row.Notes,
		CustomerName:      row.CustomerName,
		Address:           row.Address,
		PostalCode:        row.PostalCode,
	}

	if row.CourierID != nil {
		courierID, err := kernel.UUIDFromBytes(row.CourierID[:])
		if err != nil {
			return GetDeliveryTrackingQueryResponse{}, err
		}
		tracking.Courier = &TrackedCourier{
			ID:       courierID,
			Name:     deref(row.CourierName),
			Phone:    deref(row.CourierPhone),
			Vehicle:  courier.VehicleType(deref(row.VehicleType)),
			AreaName: deref(row.AreaName),
		}
	}

	return tracking, nil
}

func deref[T any](v *T) T {
	var zero T
	if v == nil {
		return zero
	}
	return *v
}
