// Package match turns free text into canonical token sets for relevance
// scoring. The expansion tables are fixed, hand-authored lookups; there
// is no trained model behind them.
package match

import (
	"strings"
	"unicode"

	"github.com/mauryatalluru/neartools/internal/domain"
)

const minTokenLen = 2

// Tokenize lowercases the text and extracts maximal alphanumeric runs of
// at least two characters. Punctuation and whitespace separate tokens.
func Tokenize(text string) map[string]struct{} {
	tokens := make(map[string]struct{})

	var b strings.Builder
	flush := func() {
		if b.Len() >= minTokenLen {
			tokens[b.String()] = struct{}{}
		}
		b.Reset()
	}

	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			continue
		}
		flush()
	}
	flush()

	return tokens
}

// Expand adds a simple plural/singular variant of each token plus any
// fixed synonyms. Expansion is one level deep: synonyms of synonyms are
// not chased beyond what the table itself lists.
func Expand(tokens map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{}, len(tokens)*2)
	for tok := range tokens {
		out[tok] = struct{}{}
		for _, v := range pluralVariants(tok) {
			out[v] = struct{}{}
		}
		for _, syn := range synonyms[tok] {
			out[syn] = struct{}{}
		}
	}
	return out
}

func pluralVariants(tok string) []string {
	var out []string
	if strings.HasSuffix(tok, "es") {
		if base := strings.TrimSuffix(tok, "es"); len(base) >= minTokenLen {
			out = append(out, base)
		}
	}
	if strings.HasSuffix(tok, "s") {
		if base := strings.TrimSuffix(tok, "s"); len(base) > 3 {
			out = append(out, base)
		}
	} else {
		out = append(out, tok+"s")
	}
	return out
}

// HintExpand unions in equipment keywords for any token that names a
// known task. The result only feeds ranking; it never hard-filters.
func HintExpand(tokens map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{}, len(tokens))
	for tok := range tokens {
		out[tok] = struct{}{}
		for _, hint := range taskHints[tok] {
			out[hint] = struct{}{}
		}
	}
	return out
}

// Overlap returns the tokens present in both sets.
func Overlap(a, b map[string]struct{}) map[string]struct{} {
	if len(b) < len(a) {
		a, b = b, a
	}
	out := make(map[string]struct{})
	for tok := range a {
		if _, ok := b[tok]; ok {
			out[tok] = struct{}{}
		}
	}
	return out
}

// Matches reports whether the listing is relevant to the query. A blank
// query requests no filtering and matches everything.
func Matches(t *domain.Tool, query string) bool {
	if strings.TrimSpace(query) == "" {
		return true
	}
	return len(Overlap(Expand(Tokenize(query)), Tokenize(t.SearchText()))) > 0
}
