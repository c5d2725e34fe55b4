//go:build unit

package patch_test

import (
	"testing"

	"pawbook/internal/pkg/patch"

	"github.com/stretchr/testify/assert"
)

func TestCoalesce(t *testing.T) {
	t.Run("nil pointer keeps the fallback", func(t *testing.T) {
		assert.Equal(t, "kept", patch.Coalesce(nil, "kept"))
	})

	t.Run("present pointer wins", func(t *testing.T) {
		v := "new"
		assert.Equal(t, "new", patch.Coalesce(&v, "old"))
	})

	t.Run("explicit zero value overrides the fallback", func(t *testing.T) {
		zero := int64(0)
		assert.Equal(t, int64(0), patch.Coalesce(&zero, int64(500)))
	})
}

func TestCoalescePtr(t *testing.T) {
	current := "stored"

	t.Run("omitted field keeps the stored pointer", func(t *testing.T) {
		got := patch.CoalescePtr(nil, &current)
		assert.Same(t, &current, got)
	})

	t.Run("present pointer replaces the stored one", func(t *testing.T) {
		next := "updated"
		got := patch.CoalescePtr(&next, &current)
		assert.Same(t, &next, got)
	})

	t.Run("both nil stays nil", func(t *testing.T) {
		assert.Nil(t, patch.CoalescePtr[string](nil, nil))
	})
}
