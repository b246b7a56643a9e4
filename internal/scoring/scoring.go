// Package scoring turns a set of survey answers into ranked category scores.
//
// Scores are always derived from the answers and the static definition;
// nothing here keeps state between calls.
package scoring

import (
	"math"
	"sort"

	"github.com/abhisek/pulse/internal/survey"
)

// Answers maps a question ID to the chosen option ID.
type Answers map[string]string

// CategoryScore is the aggregate for one category.
type CategoryScore struct {
	Category   survey.CategoryID
	Raw        float64
	Percentage int
}

// Result is the outcome of scoring an answer set.
type Result struct {
	// Scores holds every declared category, in declaration order.
	Scores []CategoryScore

	// Ranked holds categories with a positive score, highest first.
	// Ties keep declaration order.
	Ranked []CategoryScore

	// Top is Ranked[0], or the first declared category when nothing scored.
	Top survey.CategoryID

	// Total is the sum of raw scores before clamping.
	Total float64

	// Counted is the number of answers that contributed.
	Counted int
}

// Compute scores answers against the definition.
//
// Answers naming an unknown question, or an option that does not belong to
// the named question, are skipped. Weights for undeclared categories are
// ignored. A nil definition scores as an empty Result.
func Compute(answers Answers, def *survey.Definition) Result {
	if def == nil {
		return Result{}
	}
	cats := def.CategoryIDs()
	raw := make(map[survey.CategoryID]float64, len(cats))

	var counted int
	for qid, oid := range answers {
		opt, ok := def.Option(qid, oid)
		if !ok {
			continue
		}
		counted++
		for _, c := range cats {
			raw[c] += opt.Weight(c)
		}
	}

	var total float64
	for _, c := range cats {
		total += raw[c]
	}
	denom := math.Max(total, 1)

	scores := make([]CategoryScore, len(cats))
	for i, c := range cats {
		scores[i] = CategoryScore{
			Category:   c,
			Raw:        raw[c],
			Percentage: percentage(raw[c], denom),
		}
	}

	ranked := make([]CategoryScore, 0, len(scores))
	for _, s := range scores {
		if s.Raw > 0 {
			ranked = append(ranked, s)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Raw > ranked[j].Raw
	})

	var top survey.CategoryID
	if len(ranked) > 0 {
		top = ranked[0].Category
	} else if len(cats) > 0 {
		top = cats[0]
	}

	return Result{
		Scores:  scores,
		Ranked:  ranked,
		Top:     top,
		Total:   total,
		Counted: counted,
	}
}

// percentage rounds half away from zero; raw is never negative so this
// matches round-half-up.
func percentage(raw, denom float64) int {
	return int(math.Round(raw / denom * 100))
}

// Score returns the score for one category.
func (r Result) Score(id survey.CategoryID) (CategoryScore, bool) {
	for _, s := range r.Scores {
		if s.Category == id {
			return s, true
		}
	}
	return CategoryScore{}, false
}

// Breakdown returns all category scores in declaration order.
func (r Result) Breakdown() []CategoryScore {
	out := make([]CategoryScore, len(r.Scores))
	copy(out, r.Scores)
	return out
}
