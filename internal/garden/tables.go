package garden

// Static display tables for the dashboard shell. These are presentation
// data only; nothing in the navigator core depends on them.

// City describes a participating city for the dashboard header.
type City struct {
	Name   string
	Region string
	Zone   string // USDA hardiness zone
}

// Cities is the participating-city table, keyed by city name.
var Cities = map[string]City{
	"Ashford":    {Name: "Ashford", Region: "Northeast", Zone: "6a"},
	"Brookmere":  {Name: "Brookmere", Region: "Midwest", Zone: "5b"},
	"Cedar Vale": {Name: "Cedar Vale", Region: "Southwest", Zone: "8a"},
	"Duskfield":  {Name: "Duskfield", Region: "Pacific", Zone: "9b"},
}

// Grant describes a habitat grant program shown on the dashboard.
type Grant struct {
	Name        string
	MaxAwardUSD int
	MinTier     Tier
}

// Grants is the grant-program table in display order.
var Grants = []Grant{
	{Name: "Pollinator Pathway Starter", MaxAwardUSD: 250, MinTier: TierSprout},
	{Name: "Native Meadow Restoration", MaxAwardUSD: 1500, MinTier: TierBloom},
	{Name: "Municipal Habitat Corridor", MaxAwardUSD: 5000, MinTier: TierMeadow},
}

// EligibleGrants returns the grant programs a garden of the given tier
// qualifies for.
func EligibleGrants(tier Tier) []Grant {
	rank := map[Tier]int{TierSeedling: 0, TierSprout: 1, TierBloom: 2, TierMeadow: 3}
	var out []Grant
	for _, g := range Grants {
		if rank[tier] >= rank[g.MinTier] {
			out = append(out, g)
		}
	}
	return out
}
