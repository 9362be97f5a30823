package order_test

import (
	"fmt"
	"testing"

	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	assert.Equal(t, 0, int(order.Unknown))
	assert.Equal(t, 1, int(order.Pending))
	assert.Equal(t, 2, int(order.Preparing))
	assert.Equal(t, 3, int(order.OutForDelivery))
	assert.Equal(t, 4, int(order.Delivered))
	assert.Equal(t, 5, int(order.Cancelled))
}

func TestStatus_Validate(t *testing.T) {
	for _, s := range []order.Status{order.Pending, order.Preparing, order.OutForDelivery, order.Delivered, order.Cancelled} {
		require.NoError(t, s.Validate(), s.String())
	}
	require.ErrorIs(t, order.Unknown.Validate(), errs.ErrValueIsInvalid)
	require.ErrorIs(t, order.Status(99).Validate(), errs.ErrValueIsInvalid)
	assert.Equal(t, "Unknown", order.Status(99).String())
}

func TestParseStatus(t *testing.T) {
	tests := map[string]order.Status{
		"Pending":          order.Pending,
		"preparing":        order.Preparing,
		"Out for Delivery": order.OutForDelivery,
		"OutForDelivery":   order.OutForDelivery,
		" delivered ":      order.Delivered,
		"CANCELLED":        order.Cancelled,
	}
	for input, want := range tests {
		got, err := order.ParseStatus(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}

	_, err := order.ParseStatus("Unknown")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	_, err = order.ParseStatus("Lost")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestStatus_CheckTransition(t *testing.T) {
	allowed := map[order.Status][]order.Status{
		order.Pending:        {order.Pending, order.Preparing, order.Cancelled},
		order.Preparing:      {order.Preparing, order.OutForDelivery, order.Delivered, order.Cancelled},
		order.OutForDelivery: {order.OutForDelivery, order.Delivered, order.Preparing},
		order.Delivered:      {order.Delivered},
		order.Cancelled:      {order.Cancelled},
	}
	all := []order.Status{order.Pending, order.Preparing, order.OutForDelivery, order.Delivered, order.Cancelled}

	for from, targets := range allowed {
		for _, to := range all {
			t.Run(fmt.Sprintf("%s to %s", from, to), func(t *testing.T) {
				err := from.CheckTransition(to)
				if contains(targets, to) {
					require.NoError(t, err)
					return
				}
				require.ErrorIs(t, err, errs.ErrInvalidTransition)
			})
		}
	}

	t.Run("Delivered to Cancelled always fails", func(t *testing.T) {
		require.ErrorIs(t, order.Delivered.CheckTransition(order.Cancelled), errs.ErrInvalidTransition)
	})
}

func TestStatus_Predicates(t *testing.T) {
	assert.True(t, order.Delivered.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())
	assert.False(t, order.OutForDelivery.IsTerminal())
	assert.True(t, order.Preparing.IsActive())
	assert.True(t, order.OutForDelivery.IsActive())
	assert.False(t, order.Pending.IsActive())
}

func contains(statuses []order.Status, s order.Status) bool {
	for _, candidate := range statuses {
		if candidate == s {
			return true
		}
	}
	return false
}
