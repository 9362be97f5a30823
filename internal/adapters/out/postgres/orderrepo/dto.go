// Package orderrepo persists order aggregates, their lines and the
// cancellation audit trail with GORM.
package orderrepo

import (
	"time"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// OrderDTO is the orders table row. Subtotal and total are stored next to the
// discount for reporting; the aggregate recomputes them from the lines.
type OrderDTO struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	CreatedAt         time.Time       `gorm:"not null;index"`
	Subtotal          decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Discount          decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0"`
	Total             decimal.Decimal `gorm:"type:numeric(10,2);not null;check:chk_orders_total,total >= 0 AND total < 1000"`
	FreeItems         pq.StringArray  `gorm:"type:text[]"`
	Status            int             `gorm:"type:smallint;not null;index"`
	CourierID         *uuid.UUID      `gorm:"type:uuid;index"`
	EstimatedDelivery *time.Time
	ActualDelivery    *time.Time
	Notes             string         `gorm:"type:text"`
	Items             []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is a price-snapshotted order line. Rows are never updated.
type OrderItemDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Position  int             `gorm:"type:int;not null"`
	Kind      string          `gorm:"type:varchar(16);not null"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null"`
	Quantity  int             `gorm:"type:int;not null;check:chk_order_items_quantity,quantity BETWEEN 1 AND 20"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(10,2);not null"`
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

// CancellationDTO is the append-only cancellation audit row.
type CancellationDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Actor       string    `gorm:"type:varchar(16);not null"`
	CancelledAt time.Time `gorm:"not null"`
	Reason      string    `gorm:"type:text"`
}

func (CancellationDTO) TableName() string {
	return "order_cancellations"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()

	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for i, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			ID:        item.ID().Bytes(),
			OrderID:   orderID,
			Position:  i,
			Kind:      string(item.Kind()),
			ProductID: item.ProductID().Bytes(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice(),
		})
	}

	var courierID *uuid.UUID
	if id := aggregate.Courier(); id != nil {
		raw := id.Bytes()
		courierID = &raw
	}

	return OrderDTO{
		ID:                orderID,
		CustomerID:        aggregate.CustomerID().Bytes(),
		CreatedAt:         aggregate.CreatedAt(),
		Subtotal:          aggregate.Subtotal(),
		Discount:          aggregate.Discount(),
		Total:             aggregate.Total(),
		FreeItems:         pq.StringArray(aggregate.FreeItems()),
		Status:            int(aggregate.Status()),
		CourierID:         courierID,
		EstimatedDelivery: aggregate.EstimatedDelivery(),
		ActualDelivery:    aggregate.ActualDelivery(),
		Notes:             aggregate.Notes(),
		Items:             items,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		cID, courierErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if courierErr != nil {
			return nil, courierErr
		}
		courierID = &cID
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(order.State{
		ID:                id,
		CustomerID:        customerID,
		CreatedAt:         dto.CreatedAt,
		Items:             items,
		Discount:          dto.Discount,
		FreeItems:         dto.FreeItems,
		Status:            order.Status(dto.Status),
		CourierID:         courierID,
		EstimatedDelivery: dto.EstimatedDelivery,
		ActualDelivery:    dto.ActualDelivery,
		Notes:             dto.Notes,
	})
}

func itemToDomain(dto OrderItemDTO) (order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return order.Item{}, err
	}
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return order.Item{}, err
	}
	return order.NewItem(id, order.ItemKind(dto.Kind), productID, dto.Quantity, dto.UnitPrice)
}

func cancellationFromDomain(cancellation order.Cancellation) CancellationDTO {
	return CancellationDTO{
		ID:          cancellation.ID().Bytes(),
		OrderID:     cancellation.OrderID().Bytes(),
		Actor:       string(cancellation.Actor()),
		CancelledAt: cancellation.At(),
		Reason:      cancellation.Reason(),
	}
}
