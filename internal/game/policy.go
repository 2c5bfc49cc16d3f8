package game

// Policy is the immutable numeric tuning supplied at engine construction.
// The engine never mutates it; external loaders may build one from config
// files and pass it in place of DefaultPolicy.
type Policy struct {
	TrailMiles   int
	BaseLegMiles int
	Itinerary    []regionLeg
	StartSeason  Season
	SeasonDays   int

	Store     StorePolicy
	Pace      map[Pace]PacePolicy
	Diet      map[Diet]DietPolicy
	Vehicle   VehiclePolicy
	Weather   WeatherPolicy
	Encounter EncounterPolicy
	Crossing  CrossingPolicy
	Order     OrderPolicy
	Boss      BossPolicy
	Score     ScorePolicy
	Personas  map[Persona]PersonaPolicy
}

type StorePolicy struct {
	BasePriceCents map[ItemKind]int64
	Caps           map[ItemKind]int
	// NodeMarkupPct inflates prices by this percentage per trail node
	// (node = itinerary region index).
	NodeMarkupPct int
	BulletsPerBox int
}

type PacePolicy struct {
	MilesFactor    float64
	BreakdownBonus float64
	MoraleDelta    int
	SanityDelta    int
	ExtraWear      int
}

type DietPolicy struct {
	SuppliesPerDay int
	MoraleDelta    int
}

type VehiclePolicy struct {
	BaseChance          float64
	WearFactor          float64
	ExtremeWeatherBonus float64
	CriticalHealth      int
	CriticalBonus       float64

	BreakdownDamage int
	BreakdownWear   int
	DailyWear       int

	SpareRepair         int
	SpareWearCredit     int
	EmergencyFeeCents   int64
	EmergencyRepair     int
	EmergencyWearCredit int
	JuryRigRepair       int
	JuryRigDelayDays    int

	// ToleranceFloor is the breakdown count a run can absorb before the
	// destroyed check can fire; held spares inflate it.
	ToleranceFloor int
}

type WeatherPolicy struct {
	Tables map[Region]map[Season][]WeightedWeather
	// ExtremeStreakLimit is the streak length after which a heat wave or
	// cold snap is broken by a forced clear day.
	ExtremeStreakLimit int
}

type EncounterPolicy struct {
	BaseChance   float64
	MaxPerDay    int
	CooldownDays int
	// WindowDays of per-day counts are summed; past SoftCap the daily
	// chance is halved.
	WindowDays   int
	SoftCap      int
	RecentWindow int
}

type CrossingPolicy struct {
	// Checkpoints sit on region boundaries; a crossing fires the first
	// travel attempt after the itinerary region changes.
	PassWeight   int
	DetourWeight int
	BribeWeight  int

	DetourMinDays int
	DetourMaxDays int

	BribeCents int64
	PermitTag  string

	RefuseCredibility int
	RefusePanic       int
}

type OrderPolicy struct {
	Chance      float64
	DurationMin int
	DurationMax int
	CooldownMin int
	CooldownMax int
}

type BossPolicy struct {
	VoteThreshold int
	RollMax       int
}

type ScorePolicy struct {
	SuppliesWeight    int
	HitPointsWeight   int
	MoraleWeight      int
	CredibilityWeight int
	AlliesWeight      int
	DayWeight         int
	EncounterWeight   int
	ReceiptWeight     int

	BreakdownPenalty    int
	BreakdownPenaltyCap int

	BossVictoryBonus int
}

type PersonaPolicy struct {
	BribeDiscountPct int
	StartTags        []string
}

// DefaultPolicy is the playable baseline tuning.
func DefaultPolicy() Policy {
	return Policy{
		TrailMiles:   2400,
		BaseLegMiles: 40,
		Itinerary: []regionLeg{
			{Region: RegionHeartland, Days: 8},
			{Region: RegionRustBelt, Days: 8},
			{Region: RegionGreatPlains, Days: 9},
			{Region: RegionHighDesert, Days: 8},
			{Region: RegionWestCoast, Days: 7},
		},
		StartSeason: SeasonSummer,
		SeasonDays:  30,

		Store: StorePolicy{
			BasePriceCents: map[ItemKind]int64{
				ItemOxen:       2000,
				ItemFood:       20,
				ItemAmmo:       250,
				ItemClothes:    800,
				ItemTire:       2200,
				ItemBattery:    2600,
				ItemAlternator: 3000,
				ItemFuelPump:   3400,
				ItemMedkit:     1500,
			},
			Caps: map[ItemKind]int{
				ItemOxen:       20,
				ItemFood:       MaxSupplies,
				ItemAmmo:       50,
				ItemClothes:    10,
				ItemTire:       3,
				ItemBattery:    3,
				ItemAlternator: 3,
				ItemFuelPump:   3,
				ItemMedkit:     5,
			},
			NodeMarkupPct: 12,
			BulletsPerBox: 16,
		},

		Pace: map[Pace]PacePolicy{
			PaceSteady:    {MilesFactor: 1.0},
			PaceStrenuous: {MilesFactor: 1.25, BreakdownBonus: 0.015, MoraleDelta: -1},
			PaceGrueling:  {MilesFactor: 1.5, BreakdownBonus: 0.03, MoraleDelta: -2, SanityDelta: -1, ExtraWear: 1},
		},
		Diet: map[Diet]DietPolicy{
			DietGenerous: {SuppliesPerDay: 5, MoraleDelta: 1},
			DietMeager:   {SuppliesPerDay: 3},
			DietBare:     {SuppliesPerDay: 2, MoraleDelta: -1},
		},

		Vehicle: VehiclePolicy{
			BaseChance:          0.02,
			WearFactor:          0.0015,
			ExtremeWeatherBonus: 0.03,
			CriticalHealth:      30,
			CriticalBonus:       0.04,

			BreakdownDamage: 10,
			BreakdownWear:   5,
			DailyWear:       1,

			SpareRepair:         25,
			SpareWearCredit:     10,
			EmergencyFeeCents:   7500,
			EmergencyRepair:     40,
			EmergencyWearCredit: 15,
			JuryRigRepair:       10,
			JuryRigDelayDays:    1,

			ToleranceFloor: 3,
		},

		Weather: WeatherPolicy{
			Tables:             defaultWeatherTables(),
			ExtremeStreakLimit: 3,
		},

		Encounter: EncounterPolicy{
			BaseChance:   0.35,
			MaxPerDay:    2,
			CooldownDays: 1,
			WindowDays:   7,
			SoftCap:      6,
			RecentWindow: 10,
		},

		Crossing: CrossingPolicy{
			PassWeight:   50,
			DetourWeight: 30,
			BribeWeight:  20,

			DetourMinDays: 1,
			DetourMaxDays: 3,

			BribeCents: 5000,
			PermitTag:  TagTransitPermit,

			RefuseCredibility: -5,
			RefusePanic:       1,
		},

		Order: OrderPolicy{
			Chance:      0.08,
			DurationMin: 2,
			DurationMax: 4,
			CooldownMin: 3,
			CooldownMax: 6,
		},

		Boss: BossPolicy{
			VoteThreshold: 100,
			RollMax:       20,
		},

		Score: ScorePolicy{
			SuppliesWeight:    1,
			HitPointsWeight:   3,
			MoraleWeight:      2,
			CredibilityWeight: 2,
			AlliesWeight:      25,
			DayWeight:         2,
			EncounterWeight:   5,
			ReceiptWeight:     10,

			BreakdownPenalty:    15,
			BreakdownPenaltyCap: 60,

			BossVictoryBonus: 500,
		},

		Personas: map[Persona]PersonaPolicy{
			PersonaDrifter: {},
			PersonaFixer:   {BribeDiscountPct: 25},
			PersonaInsider: {BribeDiscountPct: 10, StartTags: []string{TagTransitPermit}},
		},
	}
}
