// Package customerrepo persists customer aggregates with GORM.
package customerrepo

import (
	"time"

	"pizzeria/internal/core/domain/model/customer"
	"pizzeria/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CustomerDTO is the customers table row.
type CustomerDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Email       string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_customers_email"`
	Phone       string    `gorm:"type:varchar(32);not null"`
	Address     string    `gorm:"type:varchar(255);not null"`
	PostalCode  string    `gorm:"type:varchar(16);not null;index"`
	BirthDate   time.Time `gorm:"type:date;not null"`
	Gender      string    `gorm:"type:varchar(16);not null"`
	TotalPizzas int       `gorm:"type:int;not null;default:0;check:chk_customers_total_pizzas,total_pizzas >= 0"`
}

func (CustomerDTO) TableName() string {
	return "customers"
}

func fromDomain(c *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:          c.ID().Bytes(),
		Name:        c.Name(),
		Email:       c.Email(),
		Phone:       c.Phone(),
		Address:     c.Address(),
		PostalCode:  c.PostalCode().String(),
		BirthDate:   c.BirthDate(),
		Gender:      string(c.Gender()),
		TotalPizzas: c.TotalPizzas(),
	}
}

func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return customer.RestoreCustomer(id, customer.Profile{
		Name:       dto.Name,
		Email:      dto.Email,
		Phone:      dto.Phone,
		Address:    dto.Address,
		PostalCode: dto.PostalCode,
		BirthDate:  dto.BirthDate,
		Gender:     customer.Gender(dto.Gender),
	}, dto.TotalPizzas)
}
