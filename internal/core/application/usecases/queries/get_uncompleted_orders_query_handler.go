package queries

import (
	"context"
	"time"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetUncompletedOrdersQueryHandler retrieves open orders from the database.
//
// Example:
//
//	handler := NewGetUncompletedOrdersQueryHandler(db)
//	orders, err := handler.Handle(ctx, NewGetUncompletedOrdersQuery())
//	if err != nil {
//	    log.Printf("Failed to get open orders: %v", err)
//	    return err
//	}
type GetUncompletedOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetUncompletedOrdersQueryHandler(db *gorm.DB) GetUncompletedOrdersQueryHandler {
	return GetUncompletedOrdersQueryHandler{db: db}
}

// Handle returns Pending, Preparing and Out for Delivery orders sorted by
// creation time, then id.
func (h GetUncompletedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetUncompletedOrdersQuery,
) ([]GetUncompletedOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetUncompletedOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.status,
			o.created_at,
			cu.name,
			cu.postal_code,
			o.total,
			COALESCE(c.name, ''),
			o.estimated_delivery
		FROM orders o
		JOIN customers cu ON cu.id = o.customer_id
		LEFT JOIN couriers c ON c.id = o.courier_id
		WHERE o.status IN ?
		ORDER BY o.created_at, o.id
	`, []int{int(order.Pending), int(order.Preparing), int(order.OutForDelivery)}).Rows()
	if err != nil {
		return nil, errs.NewStorageError("get uncompleted orders", err)
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetUncompletedOrdersQueryResponse
		var id uuid.UUID
		var status int
		var estimated *time.Time

		err = rows.Scan(
			&id,
			&status,
			&resp.CreatedAt,
			&resp.CustomerName,
			&resp.PostalCode,
			&resp.Total,
			&resp.CourierName,
			&estimated,
		)
		if err != nil {
			return nil, errs.NewStorageError("get uncompleted orders", err)
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID
		resp.Status = order.Status(status)
		resp.EstimatedDelivery = estimated
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, errs.NewStorageError("get uncompleted orders", err)
	}

	return orders, nil
}
