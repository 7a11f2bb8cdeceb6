package conduit_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/goconduit/internal/conduit"
	"github.com/alexiusacademia/goconduit/internal/hydraulics"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "conduit.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadFromFile(t *testing.T) {
	path := writeFile(t, `{
		"name": "Trunk sewer",
		"diameter": 3.5,
		"slope": 0.006,
		"roughness": 0.016,
		"discharge": 10
	}`)

	c, err := conduit.LoadFromFile(path)
	require.NoError(t, err)
	require.Equal(t, "Trunk sewer", c.Name)

	s, err := c.Solver()
	require.NoError(t, err)
	st, err := s.UniformFlowProperties()
	require.NoError(t, err)
	require.InDelta(t, 1.1537, st.Depth, 1e-4)
}

func TestMaterialFallback(t *testing.T) {
	c := &conduit.Conduit{Diameter: 1, Slope: 0.001, Material: "concrete", Depth: 0.5}
	require.NoError(t, c.Validate())

	n, err := c.ManningN()
	require.NoError(t, err)
	require.Equal(t, 0.011, n)

	c.Roughness = 0.02
	n, err = c.ManningN()
	require.NoError(t, err)
	require.Equal(t, 0.02, n)
}

func TestUnknownMaterial(t *testing.T) {
	c := &conduit.Conduit{Diameter: 1, Slope: 0.001, Material: "granite"}
	_, err := c.Solver()
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	cases := map[string]conduit.Conduit{
		"no diameter":    {Slope: 0.001, Roughness: 0.013},
		"negative slope": {Diameter: 1, Slope: -1, Roughness: 0.013},
		"no roughness":   {Diameter: 1, Slope: 0.001},
		"negative flow":  {Diameter: 1, Slope: 0.001, Roughness: 0.013, Discharge: -1},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			var ve *conduit.ValidationError
			require.True(t, errors.As(c.Validate(), &ve))
		})
	}
}

func TestSolverWrapsValidation(t *testing.T) {
	c := &conduit.Conduit{Name: "small", Diameter: 3.5, Slope: 0.006, Roughness: 0.016, Depth: 4}
	_, err := c.Solver()
	var ve *hydraulics.ValidationError
	require.True(t, errors.As(err, &ve))
	require.Contains(t, err.Error(), `conduit "small"`)
}

func TestLoadErrors(t *testing.T) {
	_, err := conduit.LoadFromFile(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)

	_, err = conduit.LoadFromFile(writeFile(t, `{"diameter": `))
	require.Error(t, err)

	_, err = conduit.LoadFromFile(writeFile(t, `{"diameter": 1}`))
	var ve *conduit.ValidationError
	require.True(t, errors.As(err, &ve))
}
