package catalogrepo

import (
	"context"
	"errors"

	"pizzeria/internal/adapters/out/postgres/pgerrs"
	"pizzeria/internal/core/domain/model/catalog"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCatalogRepository implements CatalogRepository using GORM.
type GormCatalogRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormCatalogRepository(db *gorm.DB, tracker aggregateTracker) *GormCatalogRepository {
	return &GormCatalogRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormCatalogRepository) AddIngredient(ctx context.Context, ingredient *catalog.Ingredient) error {
	if err := ingredient.Validate(); err != nil {
		return err
	}

	dto := ingredientFromDomain(ingredient)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerrs.Translate("add ingredient", err)
	}

	r.tracker.TrackAggregate(ingredient.ID(), ingredient)
	return nil
}

func (r *GormCatalogRepository) GetIngredient(ctx context.Context, id kernel.UUID) (*catalog.Ingredient, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto IngredientDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("ingredient", id.String())
		}
		return nil, pgerrs.Translate("get ingredient", err)
	}

	return ingredientToDomain(dto)
}

// AddPizza stores the pizza and its ingredient links.
func (r *GormCatalogRepository) AddPizza(ctx context.Context, pizza *catalog.Pizza) error {
	if err := pizza.Validate(); err != nil {
		return err
	}

	dto, links := pizzaFromDomain(pizza)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerrs.Translate("add pizza", err)
	}
	if err := r.insertLinks(ctx, links); err != nil {
		return err
	}

	r.tracker.TrackAggregate(pizza.ID(), pizza)
	return nil
}

// UpdatePizzaIngredients rewrites the links and the dietary flags of pizza.
func (r *GormCatalogRepository) UpdatePizzaIngredients(ctx context.Context, pizza *catalog.Pizza) error {
	if err := pizza.Validate(); err != nil {
		return err
	}

	dto, links := pizzaFromDomain(pizza)
	result := r.db.WithContext(ctx).Model(&PizzaDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"is_vegetarian": dto.IsVegetarian,
		"is_vegan":      dto.IsVegan,
	})
	if result.Error != nil {
		return pgerrs.Translate("update pizza", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("pizza", pizza.ID().String())
	}

	if err := r.db.WithContext(ctx).Where("pizza_id = ?", dto.ID).Delete(&PizzaIngredientDTO{}).Error; err != nil {
		return pgerrs.Translate("unlink pizza ingredients", err)
	}
	if err := r.insertLinks(ctx, links); err != nil {
		return err
	}

	r.tracker.TrackAggregate(pizza.ID(), pizza)
	return nil
}

func (r *GormCatalogRepository) GetPizza(ctx context.Context, id kernel.UUID) (*catalog.Pizza, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PizzaDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("pizza", id.String())
		}
		return nil, pgerrs.Translate("get pizza", err)
	}

	ingredients, err := r.loadIngredients(ctx, dto.ID)
	if err != nil {
		return nil, err
	}

	return pizzaToDomain(dto, ingredients[dto.ID])
}

func (r *GormCatalogRepository) GetAllPizzas(ctx context.Context) ([]*catalog.Pizza, error) {
	var dtos []PizzaDTO
	if err := r.db.WithContext(ctx).Order("name").Find(&dtos).Error; err != nil {
		return nil, pgerrs.Translate("get pizzas", err)
	}

	ids := make([]uuid.UUID, 0, len(dtos))
	for _, dto := range dtos {
		ids = append(ids, dto.ID)
	}
	ingredients, err := r.loadIngredients(ctx, ids...)
	if err != nil {
		return nil, err
	}

	pizzas := make([]*catalog.Pizza, 0, len(dtos))
	for _, dto := range dtos {
		pizza, pizzaErr := pizzaToDomain(dto, ingredients[dto.ID])
		if pizzaErr != nil {
			return nil, pizzaErr
		}
		pizzas = append(pizzas, pizza)
	}

	return pizzas, nil
}

func (r *GormCatalogRepository) AddSideItem(ctx context.Context, item *catalog.SideItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := sideItemFromDomain(item)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerrs.Translate("add side item", err)
	}

	r.tracker.TrackAggregate(item.ID(), item)
	return nil
}

func (r *GormCatalogRepository) GetSideItem(ctx context.Context, kind catalog.SideKind, id kernel.UUID) (*catalog.SideItem, error) {
	if err := errors.Join(kind.Validate(), id.Validate()); err != nil {
		return nil, err
	}

	var dto SideItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ? AND kind = ?", id.Bytes(), string(kind)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError(string(kind), id.String())
		}
		return nil, pgerrs.Translate("get side item", err)
	}

	return sideItemToDomain(dto)
}

func (r *GormCatalogRepository) GetCheapestSideItem(ctx context.Context, kind catalog.SideKind) (*catalog.SideItem, error) {
	if err := kind.Validate(); err != nil {
		return nil, err
	}

	var dto SideItemDTO
	if err := r.db.WithContext(ctx).Order("price, name").First(&dto, "kind = ?", string(kind)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError(string(kind), "cheapest")
		}
		return nil, pgerrs.Translate("get cheapest side item", err)
	}

	return sideItemToDomain(dto)
}

func (r *GormCatalogRepository) insertLinks(ctx context.Context, links []PizzaIngredientDTO) error {
	if len(links) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&links).Error; err != nil {
		return pgerrs.Translate("link pizza ingredients", err)
	}
	return nil
}

// loadIngredients returns the linked ingredients of each pizza in link order.
func (r *GormCatalogRepository) loadIngredients(ctx context.Context, pizzaIDs ...uuid.UUID) (map[uuid.UUID][]IngredientDTO, error) {
	result := make(map[uuid.UUID][]IngredientDTO, len(pizzaIDs))
	if len(pizzaIDs) == 0 {
		return result, nil
	}

	var rows []struct {
		PizzaID uuid.UUID
		IngredientDTO
	}
	if err := r.db.WithContext(ctx).
		Table("pizza_ingredients").
		Select("pizza_ingredients.pizza_id, ingredients.*").
		Joins("JOIN ingredients ON ingredients.id = pizza_ingredients.ingredient_id").
		Where("pizza_ingredients.pizza_id IN ?", pizzaIDs).
		Order("pizza_ingredients.pizza_id, pizza_ingredients.position").
		Scan(&rows).Error; err != nil {
		return nil, pgerrs.Translate("load pizza ingredients", err)
	}

	for _, row := range rows {
		result[row.PizzaID] = append(result[row.PizzaID], row.IngredientDTO)
	}
	return result, nil
}
