package game

type Region string

const (
	RegionHeartland   Region = "heartland"
	RegionRustBelt    Region = "rust_belt"
	RegionGreatPlains Region = "great_plains"
	RegionHighDesert  Region = "high_desert"
	RegionWestCoast   Region = "west_coast"
)

type Season string

const (
	SeasonSummer Season = "summer"
	SeasonAutumn Season = "autumn"
	SeasonWinter Season = "winter"
	SeasonSpring Season = "spring"
)

// regionLeg is one itinerary segment: the region and how many days the
// planned route spends in it.
type regionLeg struct {
	Region Region
	Days   int
}

// RegionForDay resolves the itinerary region for a 1-based run day. Days past
// the planned route stay in the final region.
func (p Policy) RegionForDay(day int) Region {
	if day < 1 {
		day = 1
	}

	remaining := day
	for _, leg := range p.Itinerary {
		if leg.Days <= 0 {
			continue
		}
		if remaining <= leg.Days {
			return leg.Region
		}
		remaining -= leg.Days
	}

	return p.Itinerary[len(p.Itinerary)-1].Region
}

// regionIndex returns the trail-node index for store pricing: 0 for the first
// itinerary region, counting up along the route.
func (p Policy) regionIndex(region Region) int {
	for i, leg := range p.Itinerary {
		if leg.Region == region {
			return i
		}
	}
	return 0
}

// TrailNode is the store pricing node for a run day.
func (p Policy) TrailNode(day int) int {
	return p.regionIndex(p.RegionForDay(day))
}

// SeasonForDay cycles seasons from the configured start, one per SeasonDays.
func (p Policy) SeasonForDay(day int) Season {
	if day < 1 {
		day = 1
	}
	order := []Season{SeasonSummer, SeasonAutumn, SeasonWinter, SeasonSpring}
	start := 0
	for i, season := range order {
		if season == p.StartSeason {
			start = i
			break
		}
	}
	days := p.SeasonDays
	if days <= 0 {
		days = 30
	}
	return order[(start+(day-1)/days)%len(order)]
}
