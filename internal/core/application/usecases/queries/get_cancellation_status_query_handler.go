package queries

import (
	"context"
	"time"

	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetCancellationStatusQueryHandler struct {
	db *gorm.DB
}

func NewGetCancellationStatusQueryHandler(db *gorm.DB) GetCancellationStatusQueryHandler {
	return GetCancellationStatusQueryHandler{db: db}
}

// Handle reports CanCancel when the order's status allows a cancellation and
// the deadline, createdAt plus five minutes, has not passed. A cancelled order
// cannot be cancelled again.
func (h GetCancellationStatusQueryHandler) Handle(
	ctx context.Context,
	query GetCancellationStatusQuery,
) (GetCancellationStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCancellationStatusQueryResponse{}, err
	}

	var row struct {
		CreatedAt time.Time
		Status    int
	}
	result := h.db.WithContext(ctx).Raw(`
		SELECT created_at, status
		FROM orders
		WHERE id = ?
	`, query.OrderID().String()).Scan(&row)
	if result.Error != nil {
		return GetCancellationStatusQueryResponse{}, errs.NewStorageError("get cancellation status", result.Error)
	}
	if result.RowsAffected == 0 {
		return GetCancellationStatusQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID())
	}

	status := order.Status(row.Status)
	canCancel := status != order.Cancelled &&
		status.CheckTransition(order.Cancelled) == nil &&
		order.ValidateCancellationWindow(row.CreatedAt, order.ActorCustomer, query.AsOf()) == nil

	return GetCancellationStatusQueryResponse{
		OrderID:   query.OrderID(),
		CanCancel: canCancel,
		Deadline:  order.CancellationDeadline(row.CreatedAt),
		Status:    status,
	}, nil
}
