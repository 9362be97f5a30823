package postgres

import (
	"pizzeria/internal/adapters/out/postgres/catalogrepo"
	"pizzeria/internal/adapters/out/postgres/courierrepo"
	"pizzeria/internal/adapters/out/postgres/customerrepo"
	"pizzeria/internal/adapters/out/postgres/discountrepo"
	"pizzeria/internal/adapters/out/postgres/orderrepo"

	"gorm.io/gorm"
)

// Models lists every persisted table in creation order.
func Models() []any {
	return []any{
		&customerrepo.CustomerDTO{},
		&catalogrepo.IngredientDTO{},
		&catalogrepo.PizzaDTO{},
		&catalogrepo.PizzaIngredientDTO{},
		&catalogrepo.SideItemDTO{},
		&discountrepo.DiscountCodeDTO{},
		&courierrepo.CourierDTO{},
		&courierrepo.CoverageDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&orderrepo.CancellationDTO{},
	}
}

// Migrate creates or updates the schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
