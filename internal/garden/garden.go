// Package garden holds the registered-garden catalog: the TOML registry,
// the habitat scoring and tier tables, and the static display tables the
// dashboard shell draws from.
package garden

import "sort"

// Garden is a single registered pollinator garden.
type Garden struct {
	ID            string   `toml:"id"`
	Name          string   `toml:"name"`
	City          string   `toml:"city"`
	SizeSqFt      int      `toml:"size_sqft"`
	Plants        []string `toml:"plants"`
	Features      []string `toml:"features"`
	PesticideFree bool     `toml:"pesticide_free"`
}

// Tier is a habitat certification level derived from the score.
type Tier string

const (
	TierSeedling Tier = "Seedling"
	TierSprout   Tier = "Sprout"
	TierBloom    Tier = "Bloom"
	TierMeadow   Tier = "Meadow"
)

// Scoring weights and caps. Plants and features contribute per item up
// to a cap so sprawling lists don't drown out the other factors.
const (
	pointsPerPlant   = 3
	plantCap         = 30
	pointsPerFeature = 5
	featureCap       = 25
	pesticideBonus   = 10
)

// sizeBonuses maps minimum square footage to its score bonus, largest
// first.
var sizeBonuses = []struct {
	minSqFt int
	points  int
}{
	{1000, 15},
	{500, 10},
	{100, 5},
}

// tierThresholds maps minimum score to tier, highest first.
var tierThresholds = []struct {
	minScore int
	tier     Tier
}{
	{60, TierMeadow},
	{40, TierBloom},
	{20, TierSprout},
	{0, TierSeedling},
}

// Score computes the habitat score from the garden's plants, features,
// size and pesticide practice.
func (g Garden) Score() int {
	score := len(g.Plants) * pointsPerPlant
	if score > plantCap {
		score = plantCap
	}
	f := len(g.Features) * pointsPerFeature
	if f > featureCap {
		f = featureCap
	}
	score += f

	for _, sb := range sizeBonuses {
		if g.SizeSqFt >= sb.minSqFt {
			score += sb.points
			break
		}
	}
	if g.PesticideFree {
		score += pesticideBonus
	}
	return score
}

// TierFor maps a habitat score to its certification tier.
func TierFor(score int) Tier {
	for _, tt := range tierThresholds {
		if score >= tt.minScore {
			return tt.tier
		}
	}
	return TierSeedling
}

// Tier returns the garden's certification tier.
func (g Garden) Tier() Tier {
	return TierFor(g.Score())
}

// HasFeature reports whether the garden lists the named feature.
func (g Garden) HasFeature(name string) bool {
	for _, f := range g.Features {
		if f == name {
			return true
		}
	}
	return false
}

// SortByName orders gardens alphabetically, in place.
func SortByName(gs []Garden) {
	sort.Slice(gs, func(i, j int) bool { return gs[i].Name < gs[j].Name })
}
