package roughness_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/goconduit/internal/roughness"
)

func TestLookup(t *testing.T) {
	m, err := roughness.Lookup(" Concrete ")
	require.NoError(t, err)
	assert.Equal(t, "concrete", m.ID)
	assert.Equal(t, 0.011, m.Normal)

	_, err = roughness.Lookup("granite")
	require.Error(t, err)
}

func TestTableIsConsistent(t *testing.T) {
	seen := map[string]bool{}
	for _, m := range roughness.Materials {
		assert.False(t, seen[m.ID], "duplicate %s", m.ID)
		seen[m.ID] = true
		assert.LessOrEqual(t, m.Min, m.Normal, m.ID)
		assert.LessOrEqual(t, m.Normal, m.Max, m.ID)
		assert.Greater(t, m.Min, 0.0, m.ID)
	}
}

func TestIDsSorted(t *testing.T) {
	ids := roughness.IDs()
	require.Len(t, ids, len(roughness.Materials))
	assert.True(t, sort.StringsAreSorted(ids))
}
