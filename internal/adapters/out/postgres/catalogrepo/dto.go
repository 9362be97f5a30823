// Package catalogrepo persists ingredients, pizzas with their ingredient links
// and side items with GORM.
package catalogrepo

import (
	"pizzeria/internal/core/domain/model/catalog"
	"pizzeria/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type IngredientDTO struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name         string          `gorm:"type:varchar(100);not null;uniqueIndex:idx_ingredients_name"`
	Cost         decimal.Decimal `gorm:"type:numeric(10,2);not null;check:chk_ingredients_cost,cost > 0 AND cost < 100"`
	IsVegetarian bool            `gorm:"not null"`
	IsVegan      bool            `gorm:"not null"`
}

func (IngredientDTO) TableName() string {
	return "ingredients"
}

// PizzaDTO keeps the dietary flags next to the pizza so that the menu
// projection can read them without aggregating links. They are rewritten
// whenever the links change.
type PizzaDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"type:varchar(100);not null"`
	Size         string    `gorm:"type:varchar(16);not null"`
	Category     string    `gorm:"type:varchar(16);not null"`
	IsVegetarian bool      `gorm:"not null"`
	IsVegan      bool      `gorm:"not null"`
}

func (PizzaDTO) TableName() string {
	return "pizzas"
}

// PizzaIngredientDTO links a pizza to an ingredient. Position keeps the
// order in which ingredients were added.
type PizzaIngredientDTO struct {
	PizzaID      uuid.UUID     `gorm:"type:uuid;primaryKey"`
	IngredientID uuid.UUID     `gorm:"type:uuid;primaryKey;index"`
	Position     int           `gorm:"type:int;not null"`
	Pizza        PizzaDTO      `gorm:"foreignKey:PizzaID;constraint:OnDelete:CASCADE"`
	Ingredient   IngredientDTO `gorm:"foreignKey:IngredientID;constraint:OnDelete:RESTRICT"`
}

func (PizzaIngredientDTO) TableName() string {
	return "pizza_ingredients"
}

// SideItemDTO stores drinks and desserts in one table told apart by Kind.
type SideItemDTO struct {
	ID    uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Kind  string          `gorm:"type:varchar(16);not null;index"`
	Name  string          `gorm:"type:varchar(100);not null"`
	Price decimal.Decimal `gorm:"type:numeric(10,2);not null;check:chk_side_items_price,price > 0 AND price < 50"`
	Size  string          `gorm:"type:varchar(32)"`
}

func (SideItemDTO) TableName() string {
	return "side_items"
}

func ingredientFromDomain(ingredient *catalog.Ingredient) IngredientDTO {
	return IngredientDTO{
		ID:           ingredient.ID().Bytes(),
		Name:         ingredient.Name(),
		Cost:         ingredient.Cost(),
		IsVegetarian: ingredient.IsVegetarian(),
		IsVegan:      ingredient.IsVegan(),
	}
}

func ingredientToDomain(dto IngredientDTO) (*catalog.Ingredient, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return catalog.RestoreIngredient(id, dto.Name, dto.Cost, dto.IsVegetarian, dto.IsVegan)
}

func pizzaFromDomain(pizza *catalog.Pizza) (PizzaDTO, []PizzaIngredientDTO) {
	pizzaID := pizza.ID().Bytes()
	links := make([]PizzaIngredientDTO, 0, len(pizza.Ingredients()))
	for i, ingredient := range pizza.Ingredients() {
		links = append(links, PizzaIngredientDTO{
			PizzaID:      pizzaID,
			IngredientID: ingredient.ID().Bytes(),
			Position:     i,
		})
	}

	return PizzaDTO{
		ID:           pizzaID,
		Name:         pizza.Name(),
		Size:         string(pizza.Size()),
		Category:     string(pizza.Category()),
		IsVegetarian: pizza.IsVegetarian(),
		IsVegan:      pizza.IsVegan(),
	}, links
}

func pizzaToDomain(dto PizzaDTO, ingredientDTOs []IngredientDTO) (*catalog.Pizza, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	ingredients := make([]*catalog.Ingredient, 0, len(ingredientDTOs))
	for _, ingredientDTO := range ingredientDTOs {
		ingredient, ingredientErr := ingredientToDomain(ingredientDTO)
		if ingredientErr != nil {
			return nil, ingredientErr
		}
		ingredients = append(ingredients, ingredient)
	}

	return catalog.RestorePizza(id, dto.Name, catalog.Size(dto.Size), catalog.Category(dto.Category), ingredients)
}

func sideItemFromDomain(item *catalog.SideItem) SideItemDTO {
	return SideItemDTO{
		ID:    item.ID().Bytes(),
		Kind:  string(item.Kind()),
		Name:  item.Name(),
		Price: item.Price(),
		Size:  item.Size(),
	}
}

func sideItemToDomain(dto SideItemDTO) (*catalog.SideItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return catalog.NewSideItem(id, catalog.SideKind(dto.Kind), dto.Name, dto.Price, dto.Size)
}
