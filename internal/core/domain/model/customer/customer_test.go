package customer_test

import (
	"testing"
	"time"

	"pizzeria/internal/core/domain/model/customer"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProfile() customer.Profile {
	return customer.Profile{
		Name:       "Anna de Vries",
		Email:      "Anna@Example.com ",
		Phone:      "+31 6 1234 5678",
		Address:    "Markt 1",
		PostalCode: "6211 CK",
		BirthDate:  time.Date(1995, 4, 12, 15, 30, 0, 0, time.UTC),
		Gender:     customer.Female,
	}
}

func TestNewCustomer(t *testing.T) {
	t.Run("should normalise and accept a valid profile", func(t *testing.T) {
		c, err := customer.NewCustomer(kernel.NewUUID(), validProfile())

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.Equal(t, "anna@example.com", c.Email())
		assert.Equal(t, "6211 CK", c.PostalCode().String())
		assert.Equal(t, time.Date(1995, 4, 12, 0, 0, 0, 0, time.UTC), c.BirthDate())
		assert.Equal(t, 0, c.TotalPizzas())
		assert.Equal(t, customer.TierNew, c.Tier())
	})

	tests := []struct {
		name    string
		mutate  func(p *customer.Profile)
		wantErr error
		field   string
	}{
		{"missing name", func(p *customer.Profile) { p.Name = "" }, errs.ErrValueIsRequired, "name"},
		{"bad email", func(p *customer.Profile) { p.Email = "anna.example.com" }, errs.ErrValueIsInvalid, "email"},
		{"short phone", func(p *customer.Profile) { p.Phone = "06-1234" }, errs.ErrValueIsInvalid, "phone"},
		{"missing address", func(p *customer.Profile) { p.Address = " " }, errs.ErrValueIsRequired, "address"},
		{"short postal code", func(p *customer.Profile) { p.PostalCode = "621" }, errs.ErrValueIsOutOfRange, "postal code"},
		{"missing birth date", func(p *customer.Profile) { p.BirthDate = time.Time{} }, errs.ErrValueIsRequired, "birth date"},
		{"unknown gender", func(p *customer.Profile) { p.Gender = "Robot" }, errs.ErrValueIsInvalid, "gender"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := validProfile()
			tt.mutate(&profile)

			c, err := customer.NewCustomer(kernel.NewUUID(), profile)

			require.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), tt.field)
			assert.Nil(t, c)
		})
	}
}

func TestCustomer_RecordPizzas(t *testing.T) {
	c, err := customer.RestoreCustomer(kernel.NewUUID(), validProfile(), 8)
	require.NoError(t, err)

	require.NoError(t, c.RecordPizzas(3))
	assert.Equal(t, 11, c.TotalPizzas())
	assert.Equal(t, customer.TierSilver, c.Tier())

	require.ErrorIs(t, c.RecordPizzas(0), errs.ErrValueIsOutOfRange)
	assert.Equal(t, 11, c.TotalPizzas())
}

func TestTierFor(t *testing.T) {
	tests := []struct {
		pizzas   int
		want     customer.Tier
		discount int64
	}{
		{0, customer.TierNew, 0},
		{4, customer.TierNew, 0},
		{5, customer.TierBronze, 5},
		{9, customer.TierBronze, 5},
		{10, customer.TierSilver, 10},
		{19, customer.TierSilver, 10},
		{20, customer.TierGold, 15},
		{250, customer.TierGold, 15},
	}

	for _, tt := range tests {
		tier := customer.TierFor(tt.pizzas)
		assert.Equal(t, tt.want, tier, "pizzas=%d", tt.pizzas)
		assert.Equal(t, tt.discount, tier.AdvertisedDiscount().IntPart(), "pizzas=%d", tt.pizzas)
	}
}
