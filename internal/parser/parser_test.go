package parser

import "testing"

func TestNormalisationTable(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "  STATSU  ", want: "statsu"},
		{in: "stock-up   on FOOD!!", want: "stock up on food"},
		{in: "buy   5  tires", want: "buy 5 tires"},
	}
	for _, tc := range tests {
		got := normaliseInput(tc.in)
		if got != tc.want {
			t.Fatalf("normaliseInput(%q)=%q want=%q", tc.in, got, tc.want)
		}
	}
}

func TestAliasStatMapsToStatus(t *testing.T) {
	p := New()
	intent := p.Parse(ParseContext{}, "stat")
	if intent.Verb != "status" {
		t.Fatalf("expected status verb, got %q", intent.Verb)
	}
	if intent.Clarify != nil {
		t.Fatalf("did not expect clarify: %+v", intent.Clarify)
	}
}

func TestTypoStatsuMapsToStatus(t *testing.T) {
	p := New()
	intent := p.Parse(ParseContext{}, "statsu")
	if intent.Verb != "status" {
		t.Fatalf("expected status verb, got %q", intent.Verb)
	}
	if intent.Confidence < 0.6 {
		t.Fatalf("expected decent confidence for typo correction, got %.2f", intent.Confidence)
	}
}

func TestBuySplitsQuantityAndMapsItem(t *testing.T) {
	p := New()
	intent := p.Parse(ParseContext{}, "buy 5 bullets")
	if intent.Verb != "buy" {
		t.Fatalf("expected buy verb, got %q", intent.Verb)
	}
	if intent.Quantity == nil || intent.Quantity.N != 5 {
		t.Fatalf("expected quantity 5, got %+v", intent.Quantity)
	}
	if len(intent.Args) == 0 || intent.Args[0] != "ammo" {
		t.Fatalf("expected bullets mapped to ammo, got %+v", intent.Args)
	}
}

func TestPurchaseArticleCountsAsOne(t *testing.T) {
	p := New()
	intent := p.Parse(ParseContext{}, "purchase a tire")
	if intent.Verb != "buy" {
		t.Fatalf("expected buy verb, got %q", intent.Verb)
	}
	if intent.Quantity == nil || intent.Quantity.N != 1 {
		t.Fatalf("expected the article read as one, got %+v", intent.Quantity)
	}
	if len(intent.Args) == 0 || intent.Args[0] != "tire" {
		t.Fatalf("expected tire, got %+v", intent.Args)
	}
}

func TestChooseResolvesAgainstOpenChoices(t *testing.T) {
	p := New()
	ctx := ParseContext{Choices: []string{"help", "pass"}}
	intent := p.Parse(ctx, "pick hel")
	if intent.Verb != "choose" {
		t.Fatalf("expected choose verb, got %q", intent.Verb)
	}
	if len(intent.Args) == 0 || intent.Args[0] != "help" {
		t.Fatalf("expected the choice id resolved, got %+v", intent.Args)
	}
}

func TestBuyWithoutTargetOffersTheShelf(t *testing.T) {
	p := New()
	ctx := ParseContext{StoreItems: []string{"oxen", "food", "ammo"}}
	intent := p.Parse(ctx, "buy")
	if intent.Clarify == nil {
		t.Fatalf("expected clarify for target-less buy")
	}
	if len(intent.Clarify.Options) < 2 {
		t.Fatalf("expected at least 2 clarify options, got %d", len(intent.Clarify.Options))
	}
}

func TestFreeTextBudgetInference(t *testing.T) {
	p := New()
	intent := p.Parse(ParseContext{}, "how much money do i have")
	if intent.Verb != "status" {
		t.Fatalf("expected status inference, got %q", intent.Verb)
	}
}

func TestFreeTextBuyFallback(t *testing.T) {
	p := New()
	intent := p.Parse(ParseContext{}, "get some food")
	if intent.Verb != "buy" {
		t.Fatalf("expected buy inference, got %q", intent.Verb)
	}
	if len(intent.Args) == 0 || intent.Args[0] != "food" {
		t.Fatalf("expected food, got %+v", intent.Args)
	}
}

func TestPayAliasReachesBribe(t *testing.T) {
	p := New()
	intent := p.Parse(ParseContext{}, "pay him off")
	if intent.Verb != "bribe" {
		t.Fatalf("expected bribe verb, got %q", intent.Verb)
	}
}

func TestPaceTypoResolvesVocab(t *testing.T) {
	p := New()
	intent := p.Parse(ParseContext{}, "pace gruelling")
	if intent.Verb != "pace" {
		t.Fatalf("expected pace verb, got %q", intent.Verb)
	}
	if len(intent.Args) == 0 || intent.Args[0] != "grueling" {
		t.Fatalf("expected the spelling folded, got %+v", intent.Args)
	}
}

func TestPronounResolutionBuyIt(t *testing.T) {
	p := New()
	ctx := ParseContext{
		StoreItems: []string{"medkit"},
		LastItem:   "medkit",
	}
	intent := p.Parse(ctx, "buy it")
	if intent.Clarify != nil {
		t.Fatalf("unexpected clarify: %+v", intent.Clarify)
	}
	if intent.Verb != "buy" {
		t.Fatalf("expected buy verb, got %q", intent.Verb)
	}
	if len(intent.Args) == 0 || intent.Args[0] != "medkit" {
		t.Fatalf("expected pronoun to resolve to medkit, got %+v", intent.Args)
	}
}

func TestIntentToCommandString(t *testing.T) {
	got := IntentToCommandString(Intent{
		Verb:     "buy",
		Args:     []string{"food"},
		Quantity: &Quantity{Raw: "3", N: 3, Unit: "count"},
	})
	if got != "buy food 3" {
		t.Fatalf("expected 'buy food 3', got %q", got)
	}
}
