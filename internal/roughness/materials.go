package roughness

import (
	"fmt"
	"sort"
	"strings"
)

// Material is a conduit lining with its Manning roughness range
type Material struct {
	ID          string
	Description string

	// Manning coefficient n
	Min    float64
	Normal float64 // design value
	Max    float64
}

// Materials lists typical Manning n for closed conduits flowing partly full
// (Chow, Open-Channel Hydraulics, Table 5-6)
var Materials = []Material{
	{ID: "brass", Description: "Brass, smooth", Min: 0.009, Normal: 0.010, Max: 0.013},
	{ID: "steel", Description: "Steel, lockbar and welded", Min: 0.010, Normal: 0.012, Max: 0.014},
	{ID: "steel-riveted", Description: "Steel, riveted and spiral", Min: 0.013, Normal: 0.016, Max: 0.017},
	{ID: "cast-iron", Description: "Cast iron, coated", Min: 0.010, Normal: 0.013, Max: 0.014},
	{ID: "ductile-iron", Description: "Ductile iron, cement lined", Min: 0.011, Normal: 0.013, Max: 0.015},
	{ID: "pvc", Description: "PVC / HDPE, smooth wall", Min: 0.009, Normal: 0.010, Max: 0.011},
	{ID: "cmp", Description: "Corrugated metal, subdrain", Min: 0.017, Normal: 0.019, Max: 0.021},
	{ID: "concrete", Description: "Concrete culvert, straight and free of debris", Min: 0.010, Normal: 0.011, Max: 0.013},
	{ID: "concrete-finished", Description: "Concrete, finished", Min: 0.011, Normal: 0.012, Max: 0.014},
	{ID: "concrete-unfinished", Description: "Concrete, unfinished, wood form", Min: 0.012, Normal: 0.014, Max: 0.016},
	{ID: "vitrified-clay", Description: "Vitrified clay sewer pipe", Min: 0.011, Normal: 0.013, Max: 0.017},
	{ID: "brick", Description: "Brickwork, lined with cement mortar", Min: 0.012, Normal: 0.015, Max: 0.017},
	{ID: "sanitary", Description: "Sanitary sewer coated with slimes", Min: 0.012, Normal: 0.013, Max: 0.016},
}

// Lookup finds a material by ID (case-insensitive)
func Lookup(id string) (Material, error) {
	key := strings.ToLower(strings.TrimSpace(id))
	for _, m := range Materials {
		if m.ID == key {
			return m, nil
		}
	}
	return Material{}, fmt.Errorf("unknown material %q (see 'goconduit materials')", id)
}

// IDs returns the known material IDs in sorted order
func IDs() []string {
	ids := make([]string, 0, len(Materials))
	for _, m := range Materials {
		ids = append(ids, m.ID)
	}
	sort.Strings(ids)
	return ids
}
