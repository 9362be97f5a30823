package queries

import (
	"context"

	"pizzeria/internal/core/domain/model/catalog"
	"pizzeria/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GetPizzaPriceQueryHandler struct {
	db *gorm.DB
}

func NewGetPizzaPriceQueryHandler(db *gorm.DB) GetPizzaPriceQueryHandler {
	return GetPizzaPriceQueryHandler{db: db}
}

// Handle fails with errs.ErrObjectNotFound for an unknown pizza and for a
// pizza without ingredients.
func (h GetPizzaPriceQueryHandler) Handle(
	ctx context.Context,
	query GetPizzaPriceQuery,
) (GetPizzaPriceQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPizzaPriceQueryResponse{}, err
	}

	var row struct {
		Name        string
		Base        decimal.Decimal
		Ingredients int
	}
	result := h.db.WithContext(ctx).Raw(`
		SELECT
			p.name AS name,
			COALESCE(SUM(i.cost), 0) AS base,
			COUNT(i.id) AS ingredients
		FROM pizzas p
		LEFT JOIN pizza_ingredients pi ON pi.pizza_id = p.id
		LEFT JOIN ingredients i ON i.id = pi.ingredient_id
		WHERE p.id = ?
		GROUP BY p.id, p.name
	`, query.PizzaID().String()).Scan(&row)
	if result.Error != nil {
		return GetPizzaPriceQueryResponse{}, errs.NewStorageError("get pizza price", result.Error)
	}
	if result.RowsAffected == 0 {
		return GetPizzaPriceQueryResponse{}, errs.NewObjectNotFoundError("pizza", query.PizzaID())
	}
	if row.Ingredients == 0 {
		return GetPizzaPriceQueryResponse{}, errs.NewObjectNotFoundErrorWithCause(
			"pizza", query.PizzaID(), catalog.ErrPizzaHasNoIngredients)
	}

	return GetPizzaPriceQueryResponse{
		PizzaID: query.PizzaID(),
		Name:    row.Name,
		Base:    row.Base,
		Final:   catalog.FinalPrice(row.Base),
	}, nil
}
