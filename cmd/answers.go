package cmd

import (
	"fmt"
	"slices"
	"strings"

	"github.com/abhisek/pulse/internal/scoring"
	"github.com/abhisek/pulse/internal/survey"
)

// parseAnswers turns repeated "question=option" flag values into an
// answer set. A later value for the same question overwrites an earlier
// one, matching re-selection in the survey.
func parseAnswers(values []string) (scoring.Answers, error) {
	answers := make(scoring.Answers, len(values))
	for _, v := range values {
		qid, oid, ok := strings.Cut(v, "=")
		qid, oid = strings.TrimSpace(qid), strings.TrimSpace(oid)
		if !ok || qid == "" || oid == "" {
			return nil, fmt.Errorf("invalid answer %q: want question=option", v)
		}
		answers[qid] = oid
	}
	return answers, nil
}

// unknownAnswers lists answers that do not match the definition, in the
// form "question=option". Scoring skips them silently; the CLI reports them.
func unknownAnswers(answers scoring.Answers, def *survey.Definition) []string {
	var out []string
	for _, q := range def.Questions {
		oid, ok := answers[q.ID]
		if !ok {
			continue
		}
		if _, ok := q.Option(oid); !ok {
			out = append(out, q.ID+"="+oid)
		}
	}
	for qid, oid := range answers {
		if _, ok := def.Question(qid); !ok {
			out = append(out, qid+"="+oid)
		}
	}
	slices.Sort(out)
	return out
}
