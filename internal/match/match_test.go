package match

import (
	"testing"

	"github.com/mauryatalluru/neartools/internal/domain"
	"github.com/stretchr/testify/assert"
)

func set(tokens ...string) map[string]struct{} {
	out := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		out[tok] = struct{}{}
	}
	return out
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want map[string]struct{}
	}{
		{"lowercases and splits", "Hammer Drill", set("hammer", "drill")},
		{"punctuation separates", "drill, ladder & saw!", set("drill", "ladder", "saw")},
		{"single chars dropped", "a 2x4 I saw", set("2x4", "saw")},
		{"empty", "   ", set()},
		{"digits kept", "20v drill", set("20v", "drill")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Tokenize(tt.in))
		})
	}
}

func TestExpand_Plurals(t *testing.T) {
	out := Expand(set("ladders"))
	assert.Contains(t, out, "ladders")
	assert.Contains(t, out, "ladder")

	out = Expand(set("drill"))
	assert.Contains(t, out, "drill")
	assert.Contains(t, out, "drills")

	// "es" suffix strips too
	out = Expand(set("brushes"))
	assert.Contains(t, out, "brush")

	// short words do not lose their trailing s
	out = Expand(set("gas"))
	assert.Contains(t, out, "gas")
	assert.NotContains(t, out, "ga")
}

func TestExpand_Synonyms(t *testing.T) {
	out := Expand(set("bbq"))
	assert.Contains(t, out, "barbecue")
	assert.Contains(t, out, "barbeque")
	assert.Contains(t, out, "grill")

	// one level deep: grill's synonyms come from grill's own entry only
	out = Expand(set("grill"))
	assert.Contains(t, out, "bbq")
}

func TestHintExpand(t *testing.T) {
	out := HintExpand(set("paint"))
	for _, want := range []string{"ladder", "sprayer", "roller", "tarp", "brush"} {
		assert.Contains(t, out, want)
	}

	// unknown tokens pass through untouched
	out = HintExpand(set("zamboni"))
	assert.Equal(t, set("zamboni"), out)
}

func TestOverlap(t *testing.T) {
	got := Overlap(set("drill", "ladder", "saw"), set("ladder", "saw", "tarp"))
	assert.Equal(t, set("ladder", "saw"), got)

	assert.Empty(t, Overlap(set("drill"), set("tarp")))
}

func TestMatches(t *testing.T) {
	tool := &domain.Tool{
		Name:        "Hammer Drill",
		Description: "Heavy duty, good for masonry walls",
		Category:    "drill",
	}

	assert.True(t, Matches(tool, ""))
	assert.True(t, Matches(tool, "   "))
	assert.True(t, Matches(tool, "drill"))
	assert.True(t, Matches(tool, "DRILLS")) // plural + case folding
	assert.True(t, Matches(tool, "masonry work"))
	assert.False(t, Matches(tool, "sewing machine"))
}

func TestMatches_Synonym(t *testing.T) {
	tool := &domain.Tool{Name: "Charcoal Grill", Category: "outdoor"}

	assert.True(t, Matches(tool, "bbq"))
	assert.True(t, Matches(tool, "barbeque party"))
}
