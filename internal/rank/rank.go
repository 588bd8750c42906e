// Package rank orders listings for a search. It combines date
// availability, token overlap with the query, review quality, and recent
// demand into one score per tool, with a human-readable reason trail.
//
// Rank is a pure function of its inputs: it never mutates the tools and
// returns the same order for the same snapshot.
package rank

import (
	"fmt"
	"sort"
	"time"

	"github.com/mauryatalluru/neartools/internal/availability"
	"github.com/mauryatalluru/neartools/internal/domain"
	"github.com/mauryatalluru/neartools/internal/match"
)

// unavailableScore sinks tools that cannot serve the requested dates
// below anything a text or review signal could produce.
const unavailableScore = -100.0

const (
	availableBonus    = 3.0
	textMissPenalty   = 0.5
	maxTextScore      = 5.0
	maxDemandScore    = 3.0
	neutralRating     = 3.0
	ratingWeight      = 0.8
	maxReasonKeywords = 3
)

// Signals carries the per-tool inputs gathered before ranking.
type Signals struct {
	Confirmed      []domain.DateRange
	MeanRating     float64
	ReviewCount    int
	RecentBookings int
}

type Result struct {
	Tool    *domain.Tool `json:"tool"`
	Score   float64      `json:"score"`
	Reasons []string     `json:"reasons"`
}

// Rank scores every tool and returns them ordered best-first. Ties keep
// the input order, so callers supplying newest-first listings get
// newest-first among equals. start and end are either both set or both
// nil; signals may omit tools, which then rank with zero-valued signals.
func Rank(tools []*domain.Tool, query string, start, end *time.Time, signals map[string]Signals) []Result {
	var queryTokens map[string]struct{}
	if toks := match.Tokenize(query); len(toks) > 0 {
		queryTokens = match.HintExpand(match.Expand(toks))
	}

	results := make([]Result, 0, len(tools))
	for _, t := range tools {
		results = append(results, scoreTool(t, queryTokens, start, end, signals[t.ID]))
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	return results
}

func scoreTool(t *domain.Tool, queryTokens map[string]struct{}, start, end *time.Time, sig Signals) Result {
	res := Result{Tool: t}

	if start != nil && end != nil {
		if !availability.IsAvailable(t, sig.Confirmed, *start, *end) {
			res.Score = unavailableScore
			res.Reasons = append(res.Reasons, "not available for selected dates")
			return res
		}
		res.Score += availableBonus
		res.Reasons = append(res.Reasons, "available for your dates")
	}

	if queryTokens != nil {
		overlap := match.Overlap(queryTokens, match.Tokenize(t.SearchText()))
		if len(overlap) > 0 {
			res.Score += min(maxTextScore, 1.0+0.8*float64(len(overlap)))
			res.Reasons = append(res.Reasons, keywordReason(overlap))
		} else {
			res.Score -= textMissPenalty
			res.Reasons = append(res.Reasons, "no keyword match for your task")
		}
	}

	if sig.ReviewCount > 0 {
		res.Score += (sig.MeanRating - neutralRating) * ratingWeight
		res.Reasons = append(res.Reasons,
			fmt.Sprintf("%.1f★ from %d review(s)", sig.MeanRating, sig.ReviewCount))
	} else {
		res.Reasons = append(res.Reasons, "no reviews yet")
	}

	if sig.RecentBookings > 0 {
		res.Score += min(maxDemandScore, 0.5+0.4*float64(sig.RecentBookings))
		res.Reasons = append(res.Reasons,
			fmt.Sprintf("booked %d time(s) recently", sig.RecentBookings))
	}

	return res
}

func keywordReason(overlap map[string]struct{}) string {
	tokens := make([]string, 0, len(overlap))
	for tok := range overlap {
		tokens = append(tokens, tok)
	}
	sort.Strings(tokens)
	if len(tokens) > maxReasonKeywords {
		tokens = tokens[:maxReasonKeywords]
	}

	reason := "matches your task: " + tokens[0]
	for _, tok := range tokens[1:] {
		reason += ", " + tok
	}
	return reason
}
