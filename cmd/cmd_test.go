package cmd

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/pulse/internal/scoring"
	"github.com/abhisek/pulse/internal/survey"
)

func TestParseAnswers(t *testing.T) {
	tests := []struct {
		name    string
		values  []string
		want    scoring.Answers
		wantErr bool
	}{
		{"empty", nil, scoring.Answers{}, false},
		{"single", []string{"energy=explore"}, scoring.Answers{"energy": "explore"}, false},
		{"trimmed", []string{" energy = explore "}, scoring.Answers{"energy": "explore"}, false},
		{"later wins", []string{"energy=explore", "energy=hard-problem"}, scoring.Answers{"energy": "hard-problem"}, false},
		{"missing equals", []string{"energy"}, nil, true},
		{"missing option", []string{"energy="}, nil, true},
		{"missing question", []string{"=explore"}, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseAnswers(tt.values)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUnknownAnswers(t *testing.T) {
	def := survey.Default()
	answers := scoring.Answers{
		"energy":   "explore",
		"friction": "not-an-option",
		"zzz":      "x",
		"aaa":      "y",
		"win":      "slow-loop", // belongs to friction
	}
	got := unknownAnswers(answers, def)
	assert.Equal(t, []string{"aaa=y", "friction=not-an-option", "win=slow-loop", "zzz=x"}, got)
}

func fullRunAnswers() scoring.Answers {
	return scoring.Answers{
		"energy":   "hard-problem",
		"friction": "slow-loop",
		"win":      "elegant-design",
		"learning": "by-building",
		"spark":    "dotfiles",
	}
}

func TestBuildResultJSON(t *testing.T) {
	def := survey.Default()
	res := scoring.Compute(fullRunAnswers(), def)

	out := buildResultJSON(def, res)
	assert.Equal(t, def.Title, out.Survey)
	assert.Equal(t, string(res.Top), out.Top)
	assert.Equal(t, 5, out.Counted)
	require.Len(t, out.Scores, len(def.Categories))
	for i, c := range def.Categories {
		assert.Equal(t, string(c.ID), out.Scores[i].Category, "scores keep declaration order")
	}
	require.NotEmpty(t, out.Ranked)
	assert.Equal(t, out.Top, out.Ranked[0])

	var buf bytes.Buffer
	require.NoError(t, writeResultJSON(&buf, def, res))
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, out.Top, decoded["top"])
}

func TestWriteResultText(t *testing.T) {
	def := survey.Default()
	res := scoring.Compute(fullRunAnswers(), def)
	top, _ := def.Category(res.Top)

	var buf bytes.Buffer
	writeResultText(&buf, def, res)
	text := buf.String()

	assert.Contains(t, text, "Top signal: "+top.Title)
	assert.Contains(t, text, "Next moves:")
	assert.Contains(t, text, "5 of 5 questions counted")
}

func TestWriteResultText_NoSignal(t *testing.T) {
	def := survey.Default()
	var buf bytes.Buffer
	writeResultText(&buf, def, scoring.Compute(nil, def))
	assert.Contains(t, buf.String(), "No strong signal yet. Defaulting to "+def.Categories[0].Title)
}

func TestFormatWeights(t *testing.T) {
	got := formatWeights(map[survey.CategoryID]float64{"tooling": 1, "craft": 3, "career": 0.5})
	assert.Equal(t, "career:0.5 craft:3 tooling:1", got)
	assert.Equal(t, "", formatWeights(nil))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
}

func TestWriteDefinition(t *testing.T) {
	def := survey.Default()
	var buf bytes.Buffer
	writeDefinition(&buf, def)
	assert.Contains(t, buf.String(), "[energy]")
	assert.Contains(t, buf.String(), "5 questions, 5 categories")
}
