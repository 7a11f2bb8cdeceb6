package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConduitFlagsFromFlags(t *testing.T) {
	f := conduitFlags{
		diameter:      1.2,
		slope:         0.002,
		material:      "concrete",
		discharge:     0.8,
		tolerance:     1e-10,
		maxIterations: 100,
	}

	c, err := f.load()
	require.NoError(t, err)

	s, err := f.solver(c)
	require.NoError(t, err)
	require.Equal(t, 0.011, s.Inputs().Roughness)

	st, err := s.UniformFlowProperties()
	require.NoError(t, err)
	require.Greater(t, st.Depth, 0.0)
	require.Less(t, st.Depth, 1.2)
}

func TestConduitFlagsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"name":"x","diameter":3.5,"slope":0.006,"roughness":0.016,"depth":2}`), 0o644))

	f := conduitFlags{file: path, diameter: 99, tolerance: 1e-10, maxIterations: 100}
	c, err := f.load()
	require.NoError(t, err)
	require.Equal(t, 3.5, c.Diameter)

	s, err := f.solver(c)
	require.NoError(t, err)
	st, ok := s.State()
	require.True(t, ok)
	require.Equal(t, 2.0, st.Depth)
}

func TestConduitFlagsMissingRoughness(t *testing.T) {
	f := conduitFlags{diameter: 1, slope: 0.001}
	_, err := f.load()
	require.Error(t, err)
}
