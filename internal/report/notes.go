package report

import (
	"fmt"

	"github.com/fernvale/bloomwatch/internal/garden"
)

// featureNotes maps a habitat feature to the note shown when the garden
// lacks it. Checked in this order.
var featureNotes = []struct {
	feature string
	note    string
}{
	{"water source", "Add a shallow water source; even a dish with stones helps bees and butterflies drink safely."},
	{"bare ground", "Leave a patch of bare, undisturbed ground for ground-nesting native bees."},
	{"brush pile", "A small brush or log pile shelters overwintering pollinators."},
	{"night-blooming plants", "Night-blooming plants extend forage to moths and other nocturnal visitors."},
}

// minPlantVariety is the plant count below which the variety note fires.
const minPlantVariety = 5

// Notes produces human-readable habitat recommendations from the
// garden's plants, features, size and pesticide practice. The output is
// deterministic: fixed lookup order, one note per triggered rule.
func Notes(g garden.Garden) []string {
	var notes []string

	if !g.PesticideFree {
		notes = append(notes, "Going pesticide-free is the single biggest improvement for pollinator health.")
	}
	if len(g.Plants) < minPlantVariety {
		notes = append(notes, fmt.Sprintf(
			"Plant variety is low (%d species); aim for at least %d with staggered bloom times.",
			len(g.Plants), minPlantVariety))
	}
	for _, fn := range featureNotes {
		if !g.HasFeature(fn.feature) {
			notes = append(notes, fn.note)
		}
	}
	if g.SizeSqFt > 0 && g.SizeSqFt < 100 {
		notes = append(notes, "Small spaces still count: container plantings qualify toward habitat size.")
	}
	if g.Tier() == garden.TierMeadow {
		notes = append(notes, "Consider mentoring a neighboring garden; Meadow-tier gardens anchor habitat corridors.")
	}

	return notes
}
