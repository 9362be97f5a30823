package http

import (
	"net/http"

	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/application/usecases/queries"
	"pizzeria/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type CreateIngredientRequest struct {
	Name         string          `json:"name"`
	Cost         decimal.Decimal `json:"cost"`
	IsVegetarian bool            `json:"is_vegetarian"`
	IsVegan      bool            `json:"is_vegan"`
}

type CreatePizzaRequest struct {
	Name          string   `json:"name"`
	Size          string   `json:"size"`
	Category      string   `json:"category"`
	IngredientIDs []string `json:"ingredient_ids"`
}

// ChangeIngredientsRequest changes one link: "add" needs ingredient_id,
// "remove" needs replaced_id and "replace" needs both.
type ChangeIngredientsRequest struct {
	Change       string  `json:"change"`
	IngredientID *string `json:"ingredient_id"`
	ReplacedID   *string `json:"replaced_id"`
}

type CreateSideItemRequest struct {
	Kind  string          `json:"kind"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Size  string          `json:"size"`
}

type MenuItemResponse struct {
	ID           string          `json:"id"`
	Kind         string          `json:"kind"`
	Name         string          `json:"name"`
	Size         string          `json:"size,omitempty"`
	Category     string          `json:"category,omitempty"`
	Price        decimal.Decimal `json:"price"`
	IsVegetarian bool            `json:"is_vegetarian"`
	IsVegan      bool            `json:"is_vegan"`
}

type MenuResponse struct {
	Pizzas   []MenuItemResponse `json:"pizzas"`
	Drinks   []MenuItemResponse `json:"drinks"`
	Desserts []MenuItemResponse `json:"desserts"`
}

type PizzaPriceResponse struct {
	PizzaID string          `json:"pizza_id"`
	Name    string          `json:"name"`
	Base    decimal.Decimal `json:"base_price"`
	Final   decimal.Decimal `json:"final_price"`
}

type DietaryFlagsResponse struct {
	Success      bool `json:"success"`
	IsVegetarian bool `json:"is_vegetarian"`
	IsVegan      bool `json:"is_vegan"`
}

func optionalID(s *string) (*kernel.UUID, error) {
	if s == nil || *s == "" {
		return nil, nil //nolint:nilnil // absent id
	}
	id, err := kernel.UUIDFromString(*s)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func menuItems(items []queries.MenuItem) []MenuItemResponse {
	result := make([]MenuItemResponse, len(items))
	for i, item := range items {
		result[i] = MenuItemResponse{
			ID:           item.ID.String(),
			Kind:         item.Kind,
			Name:         item.Name,
			Size:         item.Size,
			Category:     item.Category,
			Price:        item.Price,
			IsVegetarian: item.IsVegetarian,
			IsVegan:      item.IsVegan,
		}
	}
	return result
}

// GetMenu handles GET /api/v1/menu.
func (s *Server) GetMenu(c echo.Context) error {
	menu, err := s.h.GetMenu.Handle(c.Request().Context(), queries.NewGetMenuQuery())
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, MenuResponse{
		Pizzas:   menuItems(menu.Pizzas),
		Drinks:   menuItems(menu.Drinks),
		Desserts: menuItems(menu.Desserts),
	})
}

// GetPizzaPrice handles GET /api/v1/pizzas/:id/price.
func (s *Server) GetPizzaPrice(c echo.Context) error {
	pizzaID, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}
	query, err := queries.NewGetPizzaPriceQuery(pizzaID)
	if err != nil {
		return s.fail(c, err)
	}

	price, err := s.h.GetPizzaPrice.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, PizzaPriceResponse{
		PizzaID: price.PizzaID.String(),
		Name:    price.Name,
		Base:    price.Base,
		Final:   price.Final,
	})
}

// CreateIngredient handles POST /api/v1/ingredients.
func (s *Server) CreateIngredient(c echo.Context) error {
	var req CreateIngredientRequest
	if err := c.Bind(&req); err != nil {
		return s.badRequest(c, err)
	}

	cmd, err := commands.NewCreateIngredientCommand(req.Name, req.Cost, req.IsVegetarian, req.IsVegan)
	if err != nil {
		return s.fail(c, err)
	}
	if err = s.h.CreateIngredient.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusCreated)
}

// CreatePizza handles POST /api/v1/pizzas.
func (s *Server) CreatePizza(c echo.Context) error {
	var req CreatePizzaRequest
	if err := c.Bind(&req); err != nil {
		return s.badRequest(c, err)
	}

	ids := make([]kernel.UUID, 0, len(req.IngredientIDs))
	for _, raw := range req.IngredientIDs {
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			return s.fail(c, err)
		}
		ids = append(ids, id)
	}

	cmd, err := commands.NewCreatePizzaCommand(req.Name, req.Size, req.Category, ids)
	if err != nil {
		return s.fail(c, err)
	}
	if err = s.h.CreatePizza.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusCreated)
}

// ChangePizzaIngredients handles POST /api/v1/pizzas/:id/ingredients.
func (s *Server) ChangePizzaIngredients(c echo.Context) error {
	pizzaID, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}
	var req ChangeIngredientsRequest
	if err = c.Bind(&req); err != nil {
		return s.badRequest(c, err)
	}

	ingredientID, err := optionalID(req.IngredientID)
	if err != nil {
		return s.fail(c, err)
	}
	replacedID, err := optionalID(req.ReplacedID)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewChangePizzaIngredientsCommand(pizzaID, req.Change, replacedID, ingredientID)
	if err != nil {
		return s.fail(c, err)
	}
	result, err := s.h.ChangePizzaIngredients.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, DietaryFlagsResponse{
		Success:      true,
		IsVegetarian: result.IsVegetarian,
		IsVegan:      result.IsVegan,
	})
}

// CreateSideItem handles POST /api/v1/side-items for drinks and desserts.
func (s *Server) CreateSideItem(c echo.Context) error {
	var req CreateSideItemRequest
	if err := c.Bind(&req); err != nil {
		return s.badRequest(c, err)
	}

	cmd, err := commands.NewCreateSideItemCommand(req.Kind, req.Name, req.Price, req.Size)
	if err != nil {
		return s.fail(c, err)
	}
	if err = s.h.CreateSideItem.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusCreated)
}
