package kernel_test

import (
	"testing"
	"time"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPostalCode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{name: "four characters", input: "6211", want: "6211"},
		{name: "dutch format with letters", input: "6211 AB", want: "6211 AB"},
		{name: "surrounding spaces trimmed", input: "  6222 ", want: "6222"},
		{name: "too short", input: "621", wantErr: errs.ErrValueIsOutOfRange},
		{name: "only spaces", input: "      ", wantErr: errs.ErrValueIsOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, err := kernel.NewPostalCode(tt.input)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.NoError(t, code.Validate())
			assert.Equal(t, tt.want, code.String())
		})
	}

	t.Run("zero value is not constructed", func(t *testing.T) {
		var code kernel.PostalCode
		assert.ErrorIs(t, code.Validate(), errs.ErrValueIsRequired)
	})
}

func TestCalendar(t *testing.T) {
	t.Run("StartOfDay keeps the location", func(t *testing.T) {
		loc := time.FixedZone("CET", 3600)
		at := time.Date(2024, 3, 9, 17, 45, 12, 99, loc)

		got := kernel.StartOfDay(at)

		assert.Equal(t, time.Date(2024, 3, 9, 0, 0, 0, 0, loc), got)
	})

	t.Run("CalendarDate keeps the local day", func(t *testing.T) {
		at := time.Date(2024, 6, 5, 0, 30, 0, 0, time.FixedZone("CEST", 2*3600))

		got := kernel.CalendarDate(at)

		assert.Equal(t, time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("SameMonthDay ignores the year", func(t *testing.T) {
		birth := time.Date(1990, 7, 14, 0, 0, 0, 0, time.UTC)

		assert.True(t, kernel.SameMonthDay(time.Date(2024, 7, 14, 23, 59, 0, 0, time.UTC), birth))
		assert.False(t, kernel.SameMonthDay(time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC), birth))
	})

	t.Run("leap day birthdays only match leap days", func(t *testing.T) {
		birth := time.Date(2004, 2, 29, 0, 0, 0, 0, time.UTC)

		assert.False(t, kernel.SameMonthDay(time.Date(2023, 2, 28, 12, 0, 0, 0, time.UTC), birth))
		assert.False(t, kernel.SameMonthDay(time.Date(2023, 3, 1, 12, 0, 0, 0, time.UTC), birth))
		assert.True(t, kernel.SameMonthDay(time.Date(2024, 2, 29, 12, 0, 0, 0, time.UTC), birth))
	})
}
