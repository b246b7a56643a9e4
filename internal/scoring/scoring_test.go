package scoring

import (
	"fmt"
	"testing"

	"github.com/abhisek/pulse/internal/survey"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDefinition(t *testing.T) *survey.Definition {
	t.Helper()
	d := survey.Definition{
		Version: "v1.0.0",
		Title:   "test",
		Categories: []survey.Category{
			{ID: "career", Title: "Career"},
			{ID: "craft", Title: "Craft"},
			{ID: "community", Title: "Community"},
			{ID: "tooling", Title: "Tooling"},
			{ID: "inspiration", Title: "Inspiration"},
		},
	}
	for i := 1; i <= 5; i++ {
		d.Questions = append(d.Questions, survey.Question{
			ID:    fmt.Sprintf("q%d", i),
			Title: fmt.Sprintf("Question %d", i),
			Options: []survey.Option{
				{ID: "builder", Label: "Builder", Weights: map[survey.CategoryID]float64{"craft": 3, "tooling": 1}},
				{ID: "talker", Label: "Talker", Weights: map[survey.CategoryID]float64{"community": 2}},
				{ID: "dreamer", Label: "Dreamer", Weights: map[survey.CategoryID]float64{"inspiration": 1}},
				{ID: "nothing", Label: "Nothing", Weights: map[survey.CategoryID]float64{}},
			},
		})
	}
	def, err := survey.New(d)
	require.NoError(t, err)
	return def
}

func TestCompute_Empty(t *testing.T) {
	def := testDefinition(t)
	r := Compute(Answers{}, def)

	require.Len(t, r.Scores, 5)
	for _, s := range r.Scores {
		assert.Zero(t, s.Raw, s.Category)
		assert.Zero(t, s.Percentage, s.Category)
	}
	assert.Empty(t, r.Ranked)
	assert.Equal(t, survey.CategoryID("career"), r.Top)
	assert.Zero(t, r.Counted)
}

func TestCompute_NilDefinition(t *testing.T) {
	r := Compute(Answers{"q1": "a"}, nil)
	assert.Equal(t, Result{}, r)
	assert.Empty(t, r.Breakdown())
	_, ok := r.Score("career")
	assert.False(t, ok)
}

func TestCompute_NilAnswers(t *testing.T) {
	r := Compute(nil, testDefinition(t))
	assert.Equal(t, survey.CategoryID("career"), r.Top)
}

func TestCompute_FullRun(t *testing.T) {
	def := testDefinition(t)
	answers := Answers{}
	for i := 1; i <= 5; i++ {
		answers[fmt.Sprintf("q%d", i)] = "builder"
	}

	r := Compute(answers, def)

	craft, _ := r.Score("craft")
	tooling, _ := r.Score("tooling")
	assert.Equal(t, 15.0, craft.Raw)
	assert.Equal(t, 5.0, tooling.Raw)
	assert.Equal(t, 20.0, r.Total)
	assert.Equal(t, 75, craft.Percentage)
	assert.Equal(t, 25, tooling.Percentage)
	assert.Equal(t, survey.CategoryID("craft"), r.Top)
	assert.Equal(t, 5, r.Counted)

	require.Len(t, r.Ranked, 2)
	assert.Equal(t, survey.CategoryID("craft"), r.Ranked[0].Category)
	assert.Equal(t, survey.CategoryID("tooling"), r.Ranked[1].Category)
}

func TestCompute_PartialAnswers(t *testing.T) {
	r := Compute(Answers{"q2": "talker"}, testDefinition(t))
	community, _ := r.Score("community")
	assert.Equal(t, 2.0, community.Raw)
	assert.Equal(t, 100, community.Percentage)
	assert.Equal(t, survey.CategoryID("community"), r.Top)
}

func TestCompute_SkipsStaleEntries(t *testing.T) {
	def := testDefinition(t)
	tests := []struct {
		name    string
		answers Answers
	}{
		{"unknown question", Answers{"q99": "builder"}},
		{"unknown option", Answers{"q1": "ghost"}},
		{"empty ids", Answers{"": ""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r Result
			assert.NotPanics(t, func() { r = Compute(tt.answers, def) })
			assert.Zero(t, r.Total)
			assert.Zero(t, r.Counted)
			assert.Equal(t, survey.CategoryID("career"), r.Top)
		})
	}
}

func TestCompute_OptionFromOtherQuestionContributesNothing(t *testing.T) {
	def := survey.Default()
	// "slow-loop" belongs to "friction", not "energy".
	r := Compute(Answers{"energy": "slow-loop"}, def)
	assert.Zero(t, r.Total)
}

func TestCompute_StaleEntryDoesNotAffectValidOnes(t *testing.T) {
	r := Compute(Answers{"q1": "builder", "q2": "ghost"}, testDefinition(t))
	craft, _ := r.Score("craft")
	assert.Equal(t, 3.0, craft.Raw)
	assert.Equal(t, 1, r.Counted)
}

func TestCompute_TieBreaksByDeclarationOrder(t *testing.T) {
	// community 2 (q1) vs inspiration 1+1 (q2, q3): tie at 2.
	r := Compute(Answers{"q1": "talker", "q2": "dreamer", "q3": "dreamer"}, testDefinition(t))
	require.Len(t, r.Ranked, 2)
	assert.Equal(t, survey.CategoryID("community"), r.Top)
	assert.Equal(t, survey.CategoryID("inspiration"), r.Ranked[1].Category)
}

func TestCompute_TieBreakIgnoresAnswerOrder(t *testing.T) {
	def := testDefinition(t)
	for i := 0; i < 20; i++ {
		r := Compute(Answers{"q3": "dreamer", "q1": "dreamer", "q2": "talker"}, def)
		assert.Equal(t, survey.CategoryID("community"), r.Top)
	}
}

func TestCompute_ZeroWeightAnswersFallBackToFirstCategory(t *testing.T) {
	r := Compute(Answers{"q1": "nothing", "q2": "nothing"}, testDefinition(t))
	assert.Equal(t, 2, r.Counted)
	assert.Empty(t, r.Ranked)
	assert.Equal(t, survey.CategoryID("career"), r.Top)
	for _, s := range r.Scores {
		assert.Zero(t, s.Percentage)
	}
}

func TestCompute_PercentagesInRange(t *testing.T) {
	def := testDefinition(t)
	choices := []string{"builder", "talker", "dreamer", "nothing"}

	// Every combination of the first three questions.
	for _, a := range choices {
		for _, b := range choices {
			for _, c := range choices {
				r := Compute(Answers{"q1": a, "q2": b, "q3": c}, def)
				sum := 0
				for _, s := range r.Scores {
					assert.GreaterOrEqual(t, s.Percentage, 0)
					assert.LessOrEqual(t, s.Percentage, 100)
					sum += s.Percentage
				}
				// Rounding each share can drift by at most half a point per category.
				assert.LessOrEqual(t, sum, 100+len(r.Scores)/2, "%s/%s/%s", a, b, c)
			}
		}
	}
}

func TestCompute_RoundingRule(t *testing.T) {
	// craft 3 + tooling 1 + inspiration 1 + inspiration 1 = 6 total
	// craft 50%, tooling 16.67 -> 17, inspiration 33.33 -> 33.
	r := Compute(Answers{"q1": "builder", "q2": "dreamer", "q3": "dreamer"}, testDefinition(t))
	want := map[survey.CategoryID]int{"craft": 50, "tooling": 17, "inspiration": 33}
	for id, pct := range want {
		s, ok := r.Score(id)
		require.True(t, ok)
		assert.Equal(t, pct, s.Percentage, id)
	}
}

func TestCompute_Idempotent(t *testing.T) {
	def := testDefinition(t)
	answers := Answers{"q1": "builder", "q2": "talker", "q4": "dreamer"}
	first := Compute(answers, def)
	second := Compute(answers, def)
	assert.Equal(t, first, second)
	assert.Equal(t, Answers{"q1": "builder", "q2": "talker", "q4": "dreamer"}, answers)
}

func TestBreakdown_DeclarationOrder(t *testing.T) {
	r := Compute(Answers{"q1": "talker"}, testDefinition(t))
	b := r.Breakdown()
	require.Len(t, b, 5)
	assert.Equal(t, survey.CategoryID("career"), b[0].Category)
	assert.Equal(t, survey.CategoryID("inspiration"), b[4].Category)

	b[0].Raw = 99
	assert.Zero(t, r.Scores[0].Raw)
}

func TestScore_Unknown(t *testing.T) {
	r := Compute(Answers{}, testDefinition(t))
	_, ok := r.Score("nope")
	assert.False(t, ok)
}
