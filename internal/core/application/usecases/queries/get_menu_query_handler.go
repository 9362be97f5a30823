package queries

import (
	"context"

	"pizzeria/internal/core/domain/model/catalog"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetMenuQueryHandler builds the menu projection on every call. Prices and
// dietary flags are derived from the current ingredient rows, so the menu
// never lags behind a catalog change.
type GetMenuQueryHandler struct {
	db *gorm.DB
}

func NewGetMenuQueryHandler(db *gorm.DB) GetMenuQueryHandler {
	return GetMenuQueryHandler{db: db}
}

// Handle leaves out pizzas without ingredients; they cannot be priced.
func (h GetMenuQueryHandler) Handle(ctx context.Context, query GetMenuQuery) (GetMenuQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetMenuQueryResponse{}, err
	}

	pizzas, err := h.pizzas(ctx)
	if err != nil {
		return GetMenuQueryResponse{}, err
	}
	sides, err := h.sideItems(ctx)
	if err != nil {
		return GetMenuQueryResponse{}, err
	}

	menu := GetMenuQueryResponse{
		Pizzas:   pizzas,
		Drinks:   make([]MenuItem, 0),
		Desserts: make([]MenuItem, 0),
	}
	for _, item := range sides {
		if item.Kind == string(order.KindDessert) {
			menu.Desserts = append(menu.Desserts, item)
		} else {
			menu.Drinks = append(menu.Drinks, item)
		}
	}

	return menu, nil
}

func (h GetMenuQueryHandler) pizzas(ctx context.Context) ([]MenuItem, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			p.id,
			p.name,
			p.size,
			p.category,
			SUM(i.cost),
			BOOL_AND(i.is_vegetarian),
			BOOL_AND(i.is_vegan)
		FROM pizzas p
		JOIN pizza_ingredients pi ON pi.pizza_id = p.id
		JOIN ingredients i ON i.id = pi.ingredient_id
		GROUP BY p.id, p.name, p.size, p.category
		ORDER BY p.name, p.id
	`).Rows()
	if err != nil {
		return nil, errs.NewStorageError("get menu pizzas", err)
	}
	defer rows.Close()

	items := make([]MenuItem, 0)
	for rows.Next() {
		item := MenuItem{Kind: string(order.KindPizza)}
		var id uuid.UUID
		var base decimal.Decimal

		if err = rows.Scan(&id, &item.Name, &item.Size, &item.Category, &base, &item.IsVegetarian, &item.IsVegan); err != nil {
			return nil, errs.NewStorageError("get menu pizzas", err)
		}

		pizzaID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		item.ID = pizzaID
		item.Price = catalog.FinalPrice(base)
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, errs.NewStorageError("get menu pizzas", err)
	}
	return items, nil
}

func (h GetMenuQueryHandler) sideItems(ctx context.Context) ([]MenuItem, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, kind, name, COALESCE(size, ''), price
		FROM side_items
		ORDER BY kind, name, id
	`).Rows()
	if err != nil {
		return nil, errs.NewStorageError("get menu side items", err)
	}
	defer rows.Close()

	items := make([]MenuItem, 0)
	for rows.Next() {
		var item MenuItem
		var id uuid.UUID
		var kind string

		if err = rows.Scan(&id, &kind, &item.Name, &item.Size, &item.Price); err != nil {
			return nil, errs.NewStorageError("get menu side items", err)
		}

		itemID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		item.ID = itemID
		item.Kind = string(order.KindDrink)
		if catalog.SideKind(kind) == catalog.Dessert {
			item.Kind = string(order.KindDessert)
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, errs.NewStorageError("get menu side items", err)
	}
	return items, nil
}
