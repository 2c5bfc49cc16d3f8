package parser

import (
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

type Parser struct {
	registry *Registry
}

func New() *Parser {
	return &Parser{registry: DefaultRegistry()}
}

func (p *Parser) RegisterCommand(c CommandDef) {
	p.registry.RegisterCommand(c)
}

func (p *Parser) Parse(ctx ParseContext, raw string) Intent {
	intent := Intent{
		Raw:        raw,
		Normalised: normaliseInput(raw),
		Kind:       Unknown,
		Confidence: 0,
	}
	if intent.Normalised == "" {
		intent.Clarify = &ClarifyQuestion{Prompt: "Enter a command or intent.", Options: nil}
		return intent
	}

	tokens := tokenise(intent.Normalised)
	cmdMatch, alternates := p.registry.matchCommand(tokens)
	if cmdMatch.Canonical == "" || cmdMatch.Score < 0.5 {
		inferred := inferFreeTextIntent(ctx, intent.Raw, intent.Normalised)
		if inferred != nil {
			return *inferred
		}
		intent.Clarify = &ClarifyQuestion{
			Prompt: "I couldn't map that to a command. Try help, status, travel, camp, hunt, buy, choose, pace, diet, bribe, permit, vote.",
		}
		return intent
	}

	if len(alternates) > 0 && (cmdMatch.Score-alternates[0].Score) < 0.05 && alternates[0].Score > 0.65 {
		options := []Intent{
			{
				Raw:        raw,
				Normalised: cmdMatch.Canonical,
				Kind:       commandKind(cmdMatch.Canonical),
				Verb:       cmdMatch.Canonical,
				Confidence: cmdMatch.Score,
			},
			{
				Raw:        raw,
				Normalised: alternates[0].Canonical,
				Kind:       commandKind(alternates[0].Canonical),
				Verb:       alternates[0].Canonical,
				Confidence: alternates[0].Score,
			},
		}
		intent.Clarify = &ClarifyQuestion{
			Prompt:  "Did you mean:",
			Options: options,
		}
		return intent
	}

	intent.Verb = cmdMatch.Canonical
	intent.Kind = commandKind(intent.Verb)
	intent.Confidence = clampScore(cmdMatch.Score)

	argsTokens := tokens
	if cmdMatch.Consumed > 0 && len(tokens) >= cmdMatch.Consumed {
		argsTokens = tokens[cmdMatch.Consumed:]
	}
	argsTokens, q := splitQuantity(argsTokens)
	intent.Quantity = q

	def, _ := p.registry.command(intent.Verb)
	resolvedArgs, clarify, argScore := p.resolveArgs(ctx, def, argsTokens)
	if clarify != nil {
		intent.Clarify = clarify
		intent.Confidence = 0.45
		return intent
	}
	intent.Args = resolvedArgs
	intent.Confidence = clampScore((intent.Confidence * 0.75) + (argScore * 0.25))

	if intent.Kind == Command && len(intent.Args) < def.MinArgs {
		if def.MinArgs > 0 && (def.Canonical == "buy" || def.Canonical == "choose") {
			options := buildEntityOptions(ctx, def.Canonical, 5)
			if len(options) > 0 {
				intent.Clarify = &ClarifyQuestion{
					Prompt:  fmt.Sprintf("What should I %s?", def.Canonical),
					Options: options,
				}
				intent.Confidence = 0.46
				return intent
			}
		}
		intent.Clarify = &ClarifyQuestion{Prompt: fmt.Sprintf("%s needs at least %d argument(s).", def.Canonical, def.MinArgs)}
		intent.Confidence = 0.42
		return intent
	}

	if def.MaxArgs > 0 && len(intent.Args) > def.MaxArgs {
		intent.Args = append([]string(nil), intent.Args[:def.MaxArgs]...)
		intent.Confidence = clampScore(intent.Confidence - 0.05)
	}

	if intent.Confidence < 0.52 && intent.Clarify == nil {
		intent.Clarify = &ClarifyQuestion{Prompt: "I have low confidence in that parse. Please rephrase or pick a clearer command."}
	}
	return intent
}

func commandKind(verb string) IntentKind {
	switch verb {
	case "help":
		return Help
	case "status", "store", "journal", "runs":
		return Query
	default:
		return Command
	}
}

func splitQuantity(tokens []string) ([]string, *Quantity) {
	if len(tokens) == 0 {
		return nil, nil
	}
	out := make([]string, 0, len(tokens))
	var q *Quantity
	for _, token := range tokens {
		if q == nil {
			if candidate := parseQuantityToken(token); candidate != nil {
				q = candidate
				continue
			}
		}
		out = append(out, token)
	}
	return out, q
}

func (p *Parser) resolveArgs(ctx ParseContext, def CommandDef, args []string) ([]string, *ClarifyQuestion, float64) {
	if len(args) == 0 {
		return nil, nil, 0.9
	}

	resolved := make([]string, 0, len(args))
	score := 0.9
	for i := 0; i < len(args); i++ {
		token := args[i]
		if isPronoun(token) {
			if strings.TrimSpace(ctx.LastItem) == "" {
				return nil, &ClarifyQuestion{Prompt: "What does that pronoun refer to?"}, 0.4
			}
			resolved = append(resolved, normaliseInput(ctx.LastItem))
			score -= 0.08
			continue
		}

		if def.Canonical == "pace" && i == 0 {
			mapped, confidence, tie := resolveVocab(token, paceVocab(ctx))
			if tie {
				return nil, vocabClarify("pace", mapped, confidence), 0.5
			}
			if len(mapped) == 1 {
				resolved = append(resolved, mapped[0])
				score = minScore(score, confidence)
				continue
			}
		}
		if def.Canonical == "diet" && i == 0 {
			mapped, confidence, tie := resolveVocab(token, dietVocab(ctx))
			if tie {
				return nil, vocabClarify("diet", mapped, confidence), 0.5
			}
			if len(mapped) == 1 {
				resolved = append(resolved, mapped[0])
				score = minScore(score, confidence)
				continue
			}
		}

		if expectsEntity(def.Canonical, i) {
			joined := token
			// For multi-token item names, greedily join two words.
			if i+1 < len(args) {
				try := token + " " + args[i+1]
				if _, s, _ := resolveItem(try, ctx, def.Canonical); s > 0.9 {
					joined = try
					i++
				}
			}
			entity, confidence, tie := resolveItem(joined, ctx, def.Canonical)
			if tie && len(entity) >= 2 {
				options := make([]Intent, 0, 2)
				for idx := 0; idx < 2; idx++ {
					options = append(options, Intent{
						Kind:       commandKind(def.Canonical),
						Verb:       def.Canonical,
						Args:       []string{entity[idx]},
						Confidence: confidence - float64(idx)*0.01,
					})
				}
				return nil, &ClarifyQuestion{
					Prompt:  fmt.Sprintf("Did you mean %s?", def.Canonical),
					Options: options,
				}, 0.52
			}
			if len(entity) == 1 {
				resolved = append(resolved, entity[0])
				score = minScore(score, confidence)
				continue
			}
		}

		resolved = append(resolved, token)
		score -= 0.02
	}
	return resolved, nil, clampScore(score)
}

func vocabClarify(verb string, options []string, confidence float64) *ClarifyQuestion {
	intents := make([]Intent, 0, 2)
	for idx := 0; idx < len(options) && idx < 2; idx++ {
		intents = append(intents, Intent{
			Kind:       Command,
			Verb:       verb,
			Args:       []string{options[idx]},
			Confidence: confidence - float64(idx)*0.01,
		})
	}
	return &ClarifyQuestion{Prompt: fmt.Sprintf("Which %s?", verb), Options: intents}
}

func expectsEntity(verb string, argPos int) bool {
	if argPos > 0 && verb != "buy" {
		return false
	}
	switch verb {
	case "buy", "choose":
		return true
	default:
		return false
	}
}

func paceVocab(ctx ParseContext) []string {
	if len(ctx.Paces) > 0 {
		return ctx.Paces
	}
	return []string{"steady", "strenuous", "grueling"}
}

func dietVocab(ctx ParseContext) []string {
	if len(ctx.Diets) > 0 {
		return ctx.Diets
	}
	return []string{"generous", "meager", "bare"}
}

func resolveVocab(token string, vocab []string) ([]string, float64, bool) {
	return bestMatches(normaliseInput(token), vocab, nil, nil)
}

func resolveItem(token string, ctx ParseContext, verb string) ([]string, float64, bool) {
	n := normaliseInput(token)
	if n == "" {
		return nil, 0, false
	}
	if verb == "buy" {
		if mapped := mapItem(n); mapped != "" {
			return []string{mapped}, 0.96, false
		}
	}
	pool := ctx.StoreItems
	if verb == "choose" {
		pool = ctx.Choices
	}
	cleaned := make([]string, 0, len(pool))
	for _, item := range pool {
		v := normaliseInput(item)
		if v != "" {
			cleaned = append(cleaned, v)
		}
	}
	return bestMatches(n, cleaned, nil, nil)
}

func bestMatches(token string, all []string, nearbyBoost []string, inventoryBoost []string) ([]string, float64, bool) {
	if len(all) == 0 {
		return nil, 0, false
	}
	type scored struct {
		val   string
		score float64
	}
	nearSet := make(map[string]bool, len(nearbyBoost))
	for _, n := range nearbyBoost {
		nearSet[n] = true
	}
	invSet := make(map[string]bool, len(inventoryBoost))
	for _, n := range inventoryBoost {
		invSet[n] = true
	}

	results := make([]scored, 0, len(all))
	for _, cand := range all {
		score := 0.0
		switch {
		case token == cand:
			score = 1.0
		case strings.HasPrefix(cand, token) && len(token) >= 2:
			score = 0.9
		default:
			dist := levenshtein.ComputeDistance(token, cand)
			if dist > levenshteinLimit(len(cand)) {
				continue
			}
			score = 0.72 - (0.08 * float64(dist))
		}
		if nearSet[cand] {
			score += 0.08
		}
		if invSet[cand] {
			score += 0.08
		}
		results = append(results, scored{val: cand, score: clampScore(score)})
	}
	if len(results) == 0 {
		return nil, 0, false
	}
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].score == results[j].score {
			return results[i].val < results[j].val
		}
		return results[i].score > results[j].score
	})

	best := results[0]
	tie := len(results) > 1 && (best.score-results[1].score) < 0.05 && results[1].score > 0.6
	if tie {
		return []string{best.val, results[1].val}, best.score, true
	}
	return []string{best.val}, best.score, false
}

func buildEntityOptions(ctx ParseContext, verb string, maxOptions int) []Intent {
	pool := make([]string, 0)
	if verb == "choose" {
		pool = append(pool, ctx.Choices...)
	} else {
		pool = append(pool, ctx.StoreItems...)
	}
	seen := map[string]bool{}
	options := make([]Intent, 0, maxOptions)
	for _, entity := range pool {
		n := normaliseInput(entity)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		options = append(options, Intent{
			Kind:       commandKind(verb),
			Verb:       verb,
			Args:       []string{n},
			Confidence: 0.88,
		})
		if len(options) >= maxOptions {
			break
		}
	}
	return options
}

func inferFreeTextIntent(ctx ParseContext, raw string, normalised string) *Intent {
	n := normalised
	makeIntent := func(kind IntentKind, verb string, args []string, confidence float64) *Intent {
		return &Intent{
			Raw:        raw,
			Normalised: normalised,
			Kind:       kind,
			Verb:       verb,
			Args:       args,
			Confidence: clampScore(confidence),
		}
	}

	if containsAnyPhrase(n,
		"how much money", "how much cash", "whats my budget", "what s my budget", "check the budget", "how are we doing", "how is everyone",
	) {
		return makeIntent(Query, "status", nil, 0.9)
	}

	if containsAnyPhrase(n, "pay the toll", "pay him off", "pay them off", "grease his palm", "grease some palms", "just pay") {
		return makeIntent(Command, "bribe", nil, 0.84)
	}
	if containsAnyPhrase(n, "show my papers", "here s my permit", "heres my permit", "i have a permit") {
		return makeIntent(Command, "permit", nil, 0.86)
	}

	if containsAnyPhrase(n, "keep driving", "keep moving", "push on", "let s roll", "lets roll", "get back on the road") {
		return makeIntent(Command, "travel", nil, 0.86)
	}
	if containsAnyPhrase(n, "set up camp", "make camp", "call it a day", "take a rest", "take a break") {
		return makeIntent(Command, "camp", nil, 0.84)
	}
	if containsWord(n, "hunt") || containsWord(n, "hunting") {
		return makeIntent(Command, "hunt", nil, 0.8)
	}
	if containsWord(n, "rest") || containsWord(n, "sleep") {
		return makeIntent(Command, "camp", nil, 0.78)
	}

	// Free text "stock up on food" pattern fallback.
	if containsAnyPhrase(n, "stock up", "stock up on") || strings.HasPrefix(n, "get some ") {
		tokens := tokenise(n)
		if len(tokens) > 1 {
			entity := strings.Join(tokens[1:], " ")
			for _, drop := range []string{"up on ", "up ", "some "} {
				entity = strings.TrimPrefix(entity, drop)
			}
			if entity != "" {
				m, confidence, tie := resolveItem(entity, ctx, "buy")
				if tie && len(m) >= 2 {
					return &Intent{
						Raw:        raw,
						Normalised: normalised,
						Kind:       Command,
						Verb:       "buy",
						Confidence: 0.52,
						Clarify: &ClarifyQuestion{
							Prompt: "Did you mean:",
							Options: []Intent{
								{Kind: Command, Verb: "buy", Args: []string{m[0]}, Confidence: confidence},
								{Kind: Command, Verb: "buy", Args: []string{m[1]}, Confidence: confidence - 0.01},
							},
						},
					}
				}
				if len(m) == 1 {
					return makeIntent(Command, "buy", []string{m[0]}, confidence)
				}
				return makeIntent(Command, "buy", []string{entity}, 0.62)
			}
		}
	}

	return nil
}

func containsAnyPhrase(value string, phrases ...string) bool {
	for _, phrase := range phrases {
		if containsPhrase(value, phrase) {
			return true
		}
	}
	return false
}

func containsPhrase(value, phrase string) bool {
	p := normaliseInput(phrase)
	if p == "" {
		return false
	}
	return strings.Contains(" "+value+" ", " "+p+" ")
}

func containsWord(value, word string) bool {
	w := normaliseInput(word)
	if w == "" {
		return false
	}
	return strings.Contains(" "+value+" ", " "+w+" ")
}

func minScore(a, b float64) float64 {
	if b < a {
		return b
	}
	return a
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func IntentToCommandString(intent Intent) string {
	verb := normaliseInput(intent.Verb)
	if verb == "" {
		return ""
	}
	args := make([]string, 0, len(intent.Args)+1)
	for _, arg := range intent.Args {
		n := normaliseInput(arg)
		if n != "" {
			args = append(args, n)
		}
	}
	if intent.Quantity != nil && intent.Quantity.Raw != "" {
		args = append(args, normaliseInput(intent.Quantity.Raw))
	}
	if len(args) == 0 {
		return verb
	}
	return verb + " " + strings.Join(args, " ")
}
