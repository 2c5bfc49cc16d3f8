package game

// BuiltinEncounters is the default content catalog shipped with the engine.
// External loaders may replace it wholesale; the engine only ever reads it.
func BuiltinEncounters() []Encounter {
	return []Encounter{
		{
			ID:          "diner_counter",
			Name:        "Diner Counter Talk",
			Description: "A roadside diner, burnt coffee, and a counter full of opinions about your trip.",
			Weight:      10,
			Choices: []Choice{
				{ID: "listen", Label: "Nurse a coffee and listen", Deltas: StatDelta{Morale: 2, Sanity: 1}, LogKey: "choice.diner_listen"},
				{ID: "argue", Label: "Argue with the regulars", Deltas: StatDelta{Credibility: 3, Morale: -2, Panic: 1}, LogKey: "choice.diner_argue"},
			},
		},
		{
			ID:          "stranded_family",
			Name:        "Stranded Family",
			Description: "A hatchback on the shoulder, hood up, three kids in the back seat.",
			Weight:      8,
			Choices: []Choice{
				{ID: "help", Label: "Stop and help", Deltas: StatDelta{Supplies: -10, Morale: 3, Allies: 1}, GrantReceipt: "receipt.thank_you_note", LogKey: "choice.family_help"},
				{ID: "pass", Label: "Keep driving", Deltas: StatDelta{Sanity: -2, Morale: -1}, LogKey: "choice.family_pass"},
			},
		},
		{
			ID:          "local_radio",
			Name:        "Local Radio Spot",
			Description: "The county AM station wants ten minutes on air with whoever is driving that thing.",
			Weight:      7,
			Choices: []Choice{
				{ID: "accept", Label: "Take the interview", Deltas: StatDelta{Credibility: 5, Panic: 1}, LogKey: "choice.radio_accept"},
				{ID: "decline", Label: "Politely decline", Deltas: StatDelta{Sanity: 1}, LogKey: "choice.radio_decline"},
			},
		},
		{
			ID:          "roadside_scam",
			Name:        "Roadside Scam",
			Description: "A man in a reflective vest waves you down next to a cone that guards nothing.",
			Weight:      6,
			Choices: []Choice{
				{ID: "pay", Label: "Pay the 'toll'", Deltas: StatDelta{Morale: -2, Credibility: -1}, LogKey: "choice.scam_pay"},
				{ID: "refuse", Label: "Call the bluff", Deltas: StatDelta{Panic: 1, Credibility: 2}, LogKey: "choice.scam_refuse"},
			},
		},
		{
			ID:          "tailgate_party",
			Name:        "Tailgate Party",
			Description: "A stadium lot, smoke off fifty grills, and an open invitation.",
			Weight:      7,
			Regions:     []Region{RegionHeartland, RegionRustBelt, RegionGreatPlains},
			Choices: []Choice{
				{ID: "join", Label: "Join in", Deltas: StatDelta{Supplies: 15, Morale: 4, Sanity: 2}, LogKey: "choice.tailgate_join"},
				{ID: "move_on", Label: "Wave and move on", Deltas: StatDelta{}, LogKey: "choice.tailgate_move_on"},
			},
		},
		{
			ID:          "county_fair",
			Name:        "County Fair",
			Description: "Prize hogs, a ferris wheel with one dead bulb, and a shooting gallery.",
			Weight:      6,
			Regions:     []Region{RegionHeartland, RegionGreatPlains},
			Choices: []Choice{
				{ID: "compete", Label: "Enter the shooting gallery", Deltas: StatDelta{Morale: 3}, GrantBullets: 16, LogKey: "choice.fair_compete"},
				{ID: "browse", Label: "Browse the stalls", Deltas: StatDelta{Supplies: 5, Morale: 1}, LogKey: "choice.fair_browse"},
			},
		},
		{
			ID:          "union_hall",
			Name:        "Union Hall Meeting",
			Description: "Folding chairs, bad lighting, and a room that wants to hear where you stand.",
			Weight:      6,
			Regions:     []Region{RegionRustBelt},
			Choices: []Choice{
				{ID: "speak", Label: "Take the floor", Deltas: StatDelta{Credibility: 4, Allies: 1, Panic: 1}, GrantReceipt: "receipt.union_pin", LogKey: "choice.union_speak"},
				{ID: "sit", Label: "Sit in the back", Deltas: StatDelta{Sanity: 1}, LogKey: "choice.union_sit"},
			},
		},
		{
			ID:          "dust_prophet",
			Name:        "Prophet of the Interchange",
			Description: "A sign-painted van and a man who has been waiting, he says, specifically for you.",
			Weight:      4,
			Regions:     []Region{RegionHighDesert, RegionGreatPlains},
			Choices: []Choice{
				{ID: "hear_out", Label: "Hear him out", Deltas: StatDelta{Sanity: -3, Morale: 2}, LogKey: "choice.prophet_hear"},
				{ID: "drive_off", Label: "Drive off mid-sentence", Deltas: StatDelta{Panic: 1}, LogKey: "choice.prophet_drive_off"},
			},
		},
		{
			ID:          "storm_shelter",
			Name:        "Storm Shelter",
			Description: "Sirens on the wind. A stranger holds a cellar door open and counts heads.",
			Weight:      5,
			Choices: []Choice{
				{ID: "shelter", Label: "Take the cellar", Deltas: StatDelta{Morale: 1, Allies: 1}, LogKey: "choice.shelter_take"},
				{ID: "outrun", Label: "Try to outrun it", Deltas: StatDelta{HitPoints: -5, Panic: 2}, LogKey: "choice.shelter_outrun"},
			},
		},
		{
			ID:          "motel_poker",
			Name:        "Motel Poker Game",
			Description: "Room 114, chained door, and a game that has clearly been running for days.",
			Weight:      5,
			Modes:       []GameMode{ModeStandard},
			Choices: []Choice{
				{ID: "play", Label: "Sit down with a modest stake", Deltas: StatDelta{Morale: 2, Sanity: -1}, GrantReceipt: "receipt.poker_chip", LogKey: "choice.poker_play"},
				{ID: "sleep", Label: "Get some actual sleep", Deltas: StatDelta{HitPoints: 2, Sanity: 2}, LogKey: "choice.poker_sleep"},
			},
		},
		{
			ID:          "food_bank",
			Name:        "Church Food Bank",
			Description: "A folding table of canned goods and no questions asked.",
			Weight:      9,
			RequiresStarving: true,
			Choices: []Choice{
				{ID: "accept", Label: "Accept a box", Deltas: StatDelta{Supplies: 30, Morale: 1, Credibility: -1}, LogKey: "choice.food_bank_accept"},
				{ID: "volunteer", Label: "Work an hour first", Deltas: StatDelta{Supplies: 20, Morale: 3, Allies: 1}, LogKey: "choice.food_bank_volunteer"},
			},
		},
		{
			ID:          "lost_hitchhiker",
			Name:        "Lost Hitchhiker",
			Description: "Cardboard sign, two states out of date.",
			Weight:      6,
			Choices: []Choice{
				{ID: "ride", Label: "Give them a ride", Deltas: StatDelta{Supplies: -5, Morale: 2, Allies: 1}, LogKey: "choice.hitchhiker_ride"},
				{ID: "wave", Label: "Wave apologetically", Deltas: StatDelta{Sanity: -1}, LogKey: "choice.hitchhiker_wave"},
			},
		},
		{
			ID:          "coastal_vigil",
			Name:        "Coastal Vigil",
			Description: "Candles on a seawall and a crowd that has adopted your journey as a cause.",
			Weight:      5,
			Regions:     []Region{RegionWestCoast},
			Choices: []Choice{
				{ID: "address", Label: "Say a few words", Deltas: StatDelta{Credibility: 4, Morale: 3, Panic: 1}, GrantReceipt: "receipt.vigil_candle", LogKey: "choice.vigil_address"},
				{ID: "slip_away", Label: "Slip away quietly", Deltas: StatDelta{Sanity: 2, Credibility: -2}, LogKey: "choice.vigil_slip"},
			},
		},
		{
			ID:          "surplus_sale",
			Name:        "Army Surplus Sale",
			Description: "Everything olive drab, half of it load-bearing.",
			Weight:      5,
			Choices: []Choice{
				{ID: "blanket", Label: "Trade rations for a wool blanket", Deltas: StatDelta{Supplies: -10}, GrantTag: TagBlanket, LogKey: "choice.surplus_blanket"},
				{ID: "jug", Label: "Trade rations for a water jug", Deltas: StatDelta{Supplies: -10}, GrantTag: TagWaterJug, LogKey: "choice.surplus_jug"},
			},
		},
	}
}
