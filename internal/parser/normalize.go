package parser

import (
	"regexp"
	"strconv"
	"strings"
)

var multiSpaceRE = regexp.MustCompile(`\s+`)

func normaliseInput(raw string) string {
	raw = strings.TrimSpace(strings.ToLower(raw))
	if raw == "" {
		return ""
	}
	var b strings.Builder
	lastSpace := false
	for _, r := range raw {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastSpace = false
			continue
		}
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '-' || r == '_' || r == '/' || r == '\'' {
			if !lastSpace {
				b.WriteByte(' ')
			}
			lastSpace = true
		}
	}
	return strings.TrimSpace(multiSpaceRE.ReplaceAllString(b.String(), " "))
}

func tokenise(normalised string) []string {
	if strings.TrimSpace(normalised) == "" {
		return nil
	}
	return strings.Fields(normalised)
}

func parseQuantityToken(token string) *Quantity {
	token = strings.TrimSpace(strings.ToLower(token))
	if token == "" {
		return nil
	}
	switch token {
	case "all":
		return &Quantity{Raw: token, N: -1, Unit: "all"}
	case "a", "an", "one":
		return &Quantity{Raw: token, N: 1, Unit: "count"}
	}
	if n, err := strconv.Atoi(token); err == nil && n >= 0 {
		return &Quantity{Raw: token, N: n, Unit: "count"}
	}
	if strings.HasSuffix(token, "x") {
		n := strings.TrimSuffix(token, "x")
		if v, err := strconv.Atoi(n); err == nil && v >= 0 {
			return &Quantity{Raw: token, N: v, Unit: "count"}
		}
	}
	return nil
}

func isPronoun(token string) bool {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "it", "that", "them", "this", "those":
		return true
	default:
		return false
	}
}

// mapItem folds the common spoken forms onto the store's canonical item ids.
func mapItem(token string) string {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "ox", "oxen", "mule", "mules":
		return "oxen"
	case "food", "rations", "groceries", "supplies":
		return "food"
	case "ammo", "ammunition", "bullets", "shells":
		return "ammo"
	case "clothes", "clothing", "coats", "jackets":
		return "clothes"
	case "tire", "tires", "tyre", "tyres":
		return "tire"
	case "battery", "batteries":
		return "battery"
	case "alternator":
		return "alternator"
	case "fuel pump", "fuelpump", "pump":
		return "fuel_pump"
	case "medkit", "medkits", "first aid", "first aid kit":
		return "medkit"
	default:
		return ""
	}
}
