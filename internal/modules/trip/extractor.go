// README: Rule-based field extraction from free-text utterances.
package trip

import (
	"regexp"
	"strings"
	"unicode"
)

// stopWords are conversational filler that must never be read as a place
// name on their own.
var stopWords = map[string]bool{
	"go":       true,
	"want":     true,
	"plan":     true,
	"trip":     true,
	"travel":   true,
	"visit":    true,
	"thinking": true,
	"going":    true,
}

// connectorWords end a destination phrase when they appear after the first
// captured word ("Paris with my wife" -> "Paris").
var connectorWords = map[string]bool{
	"with":   true,
	"for":    true,
	"and":    true,
	"this":   true,
	"next":   true,
	"during": true,
	"from":   true,
	"where":  true,
	"about":  true,
	"around": true,
}

const maxDestinationWords = 3

// destinationMatchers are tried in order; the first one whose extractor
// yields a valid candidate wins and the rest are skipped.
var destinationMatchers = []struct {
	re      *regexp.Regexp
	extract func(capture string) string
}{
	// Preposition-led phrase: "going to Rome", "5 days in Paris".
	{
		re:      regexp.MustCompile(`(?i)\b(?:going to|heading to|headed to|traveling to|travelling to|trip to|go to|visiting|visit|to|in)\s+([a-zA-Z]+(?: [a-zA-Z]+)*)`),
		extract: destinationForward,
	},
	// Trailing-noun phrase: "a Paris trip", "Bali vacation".
	{
		re:      regexp.MustCompile(`(?i)\b([a-zA-Z]+(?: [a-zA-Z]+)*) (?:trip|vacation|holiday|tour)\b`),
		extract: destinationBackward,
	},
	// Whole-line fallback: a bare place name like "Tokyo". Only consulted
	// for fresh sessions (see Extract) so that one-word answers such as
	// "luxury" are never misread as a destination change.
	{
		re:      regexp.MustCompile(`(?i)^\s*([a-zA-Z]+(?: +[a-zA-Z]+)*)\s*$`),
		extract: destinationForward,
	},
}

var (
	weekendRe   = regexp.MustCompile(`(?i)\bweekend\b`)
	weekRe      = regexp.MustCompile(`(?i)\bweek\b`)
	dayCountRe  = regexp.MustCompile(`(?i)\b(\d+)[ -]?days?\b`)
	soloRe      = regexp.MustCompile(`(?i)\b(?:solo|alone|myself|just me)\b`)
	coupleRe    = regexp.MustCompile(`(?i)\b(?:couple|two of us|my (?:wife|husband|partner|girlfriend|boyfriend) and (?:me|i))\b`)
	familyRe    = regexp.MustCompile(`(?i)\bfamily\b`)
	peopleRe    = regexp.MustCompile(`(?i)\b(\d+)\s*(?:people|persons?|travell?ers|pax|adults)\b`)
	groupOfRe   = regexp.MustCompile(`(?i)\b(?:group of|party of|with)\s+(\d+)\b`)
	amountRe    = regexp.MustCompile(`(?i)\b(?:budget|spending)\s*(?:of|around|about)?\s*\$(\d+)`)
	budgetWordRe = regexp.MustCompile(`(?i)\b(mid-range|budget|luxury|backpack|cheap|expensive|affordable)\b`)
)

var budgetTiers = map[string]string{
	"budget":     BudgetLow,
	"cheap":      BudgetLow,
	"backpack":   BudgetLow,
	"affordable": BudgetLow,
	"mid-range":  BudgetMid,
	"luxury":     BudgetLuxury,
	"expensive":  BudgetLuxury,
}

// Extract parses one utterance into the trip fields it mentions. It is pure
// and total: a field the utterance says nothing about stays zero, and no
// input is an error. currentDestination gates the whole-line destination
// fallback so short answers mid-conversation cannot hijack the destination.
func Extract(utterance, currentDestination string) Fields {
	return Fields{
		Destination: extractDestination(utterance, currentDestination),
		Days:        extractDays(utterance),
		People:      extractPeople(utterance),
		Budget:      extractBudget(utterance),
	}
}

func extractDestination(utterance, currentDestination string) string {
	for i, m := range destinationMatchers {
		// The bare-line fallback only applies before any destination is known.
		if i == len(destinationMatchers)-1 && currentDestination != "" {
			break
		}
		groups := m.re.FindStringSubmatch(utterance)
		if groups == nil {
			continue
		}
		if candidate := m.extract(groups[1]); validDestination(candidate) {
			return candidate
		}
	}
	return ""
}

// destinationForward reads a captured phrase left to right: leading filler
// is dropped, the phrase ends at the next filler or connector word.
func destinationForward(capture string) string {
	words := strings.Fields(strings.ToLower(capture))
	start := 0
	for start < len(words) && phraseBreak(words[start]) {
		start++
	}
	words = words[start:]
	for i := 1; i < len(words); i++ {
		if phraseBreak(words[i]) {
			words = words[:i]
			break
		}
	}
	return titlePhrase(words)
}

// destinationBackward collects the words immediately preceding the trip
// noun, right to left, so "planning a Paris trip" yields "Paris".
func destinationBackward(capture string) string {
	words := strings.Fields(strings.ToLower(capture))
	end := len(words)
	start := end
	for start > 0 && !phraseBreak(words[start-1]) {
		start--
	}
	return titlePhrase(words[start:end])
}

func phraseBreak(w string) bool {
	return stopWords[w] || connectorWords[w] || len(w) <= 2
}

func titlePhrase(words []string) string {
	if len(words) > maxDestinationWords {
		words = words[:maxDestinationWords]
	}
	titled := make([]string, len(words))
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		titled[i] = string(r)
	}
	return strings.Join(titled, " ")
}

func validDestination(candidate string) bool {
	if len(candidate) <= 2 {
		return false
	}
	return !stopWords[strings.ToLower(candidate)]
}

// extractDays prefers the qualifiers "weekend" and "week" anywhere in the
// utterance over a literal day count; this mirrors the original precedence
// rather than a guessed "more correct" one.
func extractDays(utterance string) int {
	if weekendRe.MatchString(utterance) {
		return 3
	}
	if weekRe.MatchString(utterance) {
		return 7
	}
	if g := dayCountRe.FindStringSubmatch(utterance); g != nil {
		if n := atoiPositive(g[1]); n > 0 {
			return n
		}
	}
	return 0
}

// extractPeople checks party-size keywords against the whole utterance
// before any captured digit, per the original precedence.
func extractPeople(utterance string) int {
	switch {
	case soloRe.MatchString(utterance):
		return 1
	case coupleRe.MatchString(utterance):
		return 2
	case familyRe.MatchString(utterance):
		return 4
	}
	if g := peopleRe.FindStringSubmatch(utterance); g != nil {
		if n := atoiPositive(g[1]); n > 0 {
			return n
		}
	}
	if g := groupOfRe.FindStringSubmatch(utterance); g != nil {
		if n := atoiPositive(g[1]); n > 0 {
			return n
		}
	}
	return 0
}

func extractBudget(utterance string) string {
	if g := amountRe.FindStringSubmatch(utterance); g != nil {
		return "$" + g[1]
	}
	if g := budgetWordRe.FindStringSubmatch(utterance); g != nil {
		return budgetTiers[strings.ToLower(g[1])]
	}
	return ""
}

// NormalizeDestination cleans a place name recognised outside the rule
// extractor (e.g. by a generative backend) and applies the same validity
// filter. Returns "" when the name does not survive it.
func NormalizeDestination(raw string) string {
	candidate := destinationForward(raw)
	if !validDestination(candidate) {
		return ""
	}
	return candidate
}

func atoiPositive(s string) int {
	n := 0
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0
		}
		n = n*10 + int(c-'0')
		if n > 1_000_000 {
			return 0
		}
	}
	return n
}
