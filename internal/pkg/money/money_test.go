//go:build unit

package money_test

import (
	"testing"

	"pawbook/internal/pkg/money"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name  string
		pence int64
		want  string
	}{
		{"whole pounds", 1500, "15.00"},
		{"pounds and pence", 1234, "12.34"},
		{"single pence", 7, "0.07"},
		{"zero", 0, "0.00"},
		{"negative", -250, "-2.50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, money.Format(tt.pence))
		})
	}
}

func TestParse(t *testing.T) {
	t.Run("round trips through Format", func(t *testing.T) {
		got, err := money.Parse(money.Format(4250))
		require.NoError(t, err)
		assert.Equal(t, int64(4250), got)
	})

	t.Run("accepts bare integers", func(t *testing.T) {
		got, err := money.Parse("25")
		require.NoError(t, err)
		assert.Equal(t, int64(2500), got)
	})

	t.Run("rejects non-numeric input", func(t *testing.T) {
		_, err := money.Parse("ten pounds")
		assert.Error(t, err)
	})
}
