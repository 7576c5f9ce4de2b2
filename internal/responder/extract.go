// internal/responder/extract.go
//
// Parameter extraction helpers. Each is a pure function over normalized
// (lowercase, trimmed) text and reports failure explicitly instead of
// guessing, so handlers can fall back to a usage reply.
package responder

import (
	"strconv"
	"strings"
	"unicode"
)

// extractNewsCategory scans for a known category keyword.
func extractNewsCategory(text string) string {
	for _, cat := range newsCategories {
		if strings.Contains(text, cat) {
			return cat
		}
	}
	return defaultCategory
}

// extractDefineWord strips the lookup prefixes and returns the remaining
// word, possibly empty.
func extractDefineWord(text string) string {
	word := strings.ReplaceAll(text, "define ", "")
	word = strings.ReplaceAll(word, "meaning of ", "")
	return strings.TrimSpace(word)
}

// conversion is a parsed "convert <amount> <from> to <to>" request.
type conversion struct {
	Amount float64
	From   string
	To     string
}

// extractConversion expects the amount at token 1, the source currency at
// token 2 and the target at token 4 ("convert 100 usd to inr"). Inputs with
// extra words mis-parse and are rejected; this mirrors the historical
// command shape.
func extractConversion(text string) (conversion, bool) {
	parts := strings.Fields(text)
	if len(parts) < 5 {
		return conversion{}, false
	}
	hasTo := false
	for _, p := range parts {
		if p == "to" {
			hasTo = true
			break
		}
	}
	if !hasTo {
		return conversion{}, false
	}

	amount, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return conversion{}, false
	}

	return conversion{
		Amount: amount,
		From:   strings.ToUpper(parts[2]),
		To:     strings.ToUpper(parts[4]),
	}, true
}

// extractMovieTitle removes the trigger words and returns what is left.
func extractMovieTitle(text string) string {
	title := strings.ReplaceAll(text, "tell me about", "")
	title = strings.ReplaceAll(title, "movie", "")
	return strings.TrimSpace(title)
}

// extractRecipeQuery removes the trigger words; an empty result falls back
// to the default ingredient.
func extractRecipeQuery(text string) string {
	query := text
	for _, word := range []string{"recipe", "cook", "dish", "with"} {
		query = strings.ReplaceAll(query, word, "")
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return defaultIngredient
	}
	return query
}

// extractTranslation splits "translate <phrase> to <language>". The split
// must produce exactly two parts.
func extractTranslation(text string) (phrase, target string, ok bool) {
	rest := strings.TrimPrefix(text, "translate ")
	parts := strings.Split(rest, " to ")
	if len(parts) != 2 {
		return "", "", false
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), true
}

// extractCity prefers the words after a literal "in"; otherwise it strips
// the question words and keeps the remainder. Empty means the caller should
// use the default city.
func extractCity(text string) string {
	parts := strings.Fields(text)
	for i, p := range parts {
		if p == "in" {
			if i+1 < len(parts) {
				return strings.Join(parts[i+1:], " ")
			}
			break
		}
	}

	maybe := strings.ReplaceAll(text, "weather", "")
	maybe = strings.ReplaceAll(maybe, "what's", "")
	maybe = strings.ReplaceAll(maybe, "whats", "")
	return strings.TrimSpace(maybe)
}

// topicPrefixes are stripped from the text before the encyclopedia fallback.
var topicPrefixes = []string{"tell me about", "what is", "who is", "explain", "define"}

func stripTopicPrefixes(text string) string {
	topic := text
	for _, prefix := range topicPrefixes {
		if strings.HasPrefix(topic, prefix) {
			topic = strings.TrimSpace(strings.ReplaceAll(topic, prefix, ""))
		}
	}
	return topic
}

// truncateExtract limits an extract to 800 characters. Longer texts are cut
// at the last sentence boundary within the first 780 characters, with an
// ellipsis appended.
func truncateExtract(extract string) string {
	runes := []rune(extract)
	if len(runes) <= 800 {
		return extract
	}
	head := string(runes[:780])
	if idx := strings.LastIndex(head, "."); idx >= 0 {
		head = head[:idx]
	}
	return head + "..."
}

// floatString renders a float the way the chat replies expect: minimal
// digits but always at least one decimal place (100 -> "100.0").
func floatString(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// titleCase upper-cases the first letter of each space-separated word.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		runes := []rune(w)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

// containsAny reports whether text contains at least one of the substrings.
func containsAny(text string, subs ...string) bool {
	for _, s := range subs {
		if strings.Contains(text, s) {
			return true
		}
	}
	return false
}
