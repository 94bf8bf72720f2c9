//go:build unit

package shipping_test

import (
	"testing"

	"vicqa-tradehub/internal/domain/shipping"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newResolver() *shipping.Resolver {
	return shipping.NewResolver([]shipping.Zone{
		shipping.NewZone("Greater Accra", 11.96, []string{"Accra", "Tema"}),
		shipping.NewZone("Central", 0, []string{"Cape Coast", "Elmina"}),
	})
}

func TestResolver_ResolveZone(t *testing.T) {
	r := newResolver()

	t.Run("region lookup ignores case", func(t *testing.T) {
		z, err := r.ResolveZone("greater accra")
		require.NoError(t, err)
		assert.Equal(t, "Greater Accra", z.Region())
		assert.Equal(t, 11.96, z.Fee())
	})

	t.Run("a zero fee is a valid fee", func(t *testing.T) {
		z, err := r.ResolveZone("Central")
		require.NoError(t, err)
		assert.Equal(t, 0.0, z.Fee())
	})

	t.Run("empty region", func(t *testing.T) {
		_, err := r.ResolveZone("  ")
		assert.ErrorIs(t, err, shipping.ErrRegionRequired)
	})

	t.Run("unknown region", func(t *testing.T) {
		_, err := r.ResolveZone("Atlantis")
		assert.ErrorIs(t, err, shipping.ErrZoneNotFound)
	})
}

func TestResolver_ResolveDestination(t *testing.T) {
	r := newResolver()

	t.Run("town must belong to the selected region", func(t *testing.T) {
		z, err := r.ResolveDestination("Greater Accra", "tema")
		require.NoError(t, err)
		assert.Equal(t, "Greater Accra", z.Region())
	})

	t.Run("town carried over from another region is rejected", func(t *testing.T) {
		_, err := r.ResolveDestination("Central", "Accra")
		assert.ErrorIs(t, err, shipping.ErrTownNotInRegion)
	})

	t.Run("empty town is rejected", func(t *testing.T) {
		_, err := r.ResolveDestination("Central", "")
		assert.ErrorIs(t, err, shipping.ErrTownNotInRegion)
	})
}

func TestZone_HasTown(t *testing.T) {
	z := shipping.NewZone("Greater Accra", 11.96, []string{"Accra", "Tema"})

	assert.True(t, z.HasTown("ACCRA"))
	assert.True(t, z.HasTown("  tema "))
	assert.False(t, z.HasTown("Kumasi"))
}
