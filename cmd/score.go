package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/abhisek/pulse/internal/scoring"
	"github.com/abhisek/pulse/internal/survey"
	"github.com/spf13/cobra"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score an answer set without the interactive survey",
	Example: `  pulse score --answer energy=hard-problem --answer friction=slow-loop
  pulse score --answer energy=explore --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		def, err := loadDefinition(cfg)
		if err != nil {
			return err
		}

		values, _ := cmd.Flags().GetStringArray("answer")
		answers, err := parseAnswers(values)
		if err != nil {
			return err
		}
		for _, a := range unknownAnswers(answers, def) {
			fmt.Fprintf(os.Stderr, "warning: ignoring unknown answer %s\n", a)
		}

		res := scoring.Compute(answers, def)
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return writeResultJSON(cmd.OutOrStdout(), def, res)
		}
		writeResultText(cmd.OutOrStdout(), def, res)
		return nil
	},
}

func init() {
	scoreCmd.Flags().StringArrayP("answer", "a", nil, "Answer as question=option (repeatable)")
	scoreCmd.Flags().Bool("json", false, "Print the result as JSON")
}

// resultJSON is the machine-readable form of a scoring result.
type resultJSON struct {
	Survey   string      `json:"survey"`
	Top      string      `json:"top"`
	Headline string      `json:"headline,omitempty"`
	Moves    []string    `json:"moves,omitempty"`
	Total    float64     `json:"total"`
	Counted  int         `json:"counted"`
	Scores   []scoreJSON `json:"scores"`
	Ranked   []string    `json:"ranked"`
}

type scoreJSON struct {
	Category   string  `json:"category"`
	Title      string  `json:"title"`
	Raw        float64 `json:"raw"`
	Percentage int     `json:"percentage"`
}

func buildResultJSON(def *survey.Definition, res scoring.Result) resultJSON {
	top, _ := def.Category(res.Top)
	out := resultJSON{
		Survey:   def.Title,
		Top:      string(res.Top),
		Headline: top.Headline,
		Moves:    top.Moves,
		Total:    res.Total,
		Counted:  res.Counted,
		Scores:   make([]scoreJSON, 0, len(res.Scores)),
		Ranked:   make([]string, 0, len(res.Ranked)),
	}
	for _, cs := range res.Breakdown() {
		c, _ := def.Category(cs.Category)
		out.Scores = append(out.Scores, scoreJSON{
			Category:   string(cs.Category),
			Title:      c.Title,
			Raw:        cs.Raw,
			Percentage: cs.Percentage,
		})
	}
	for _, cs := range res.Ranked {
		out.Ranked = append(out.Ranked, string(cs.Category))
	}
	return out
}

func writeResultJSON(w io.Writer, def *survey.Definition, res scoring.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(buildResultJSON(def, res)); err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	return nil
}

func writeResultText(w io.Writer, def *survey.Definition, res scoring.Result) {
	top, _ := def.Category(res.Top)

	fmt.Fprintln(w, def.Title)
	fmt.Fprintln(w, strings.Repeat("─", 48))
	if len(res.Ranked) == 0 {
		fmt.Fprintf(w, "No strong signal yet. Defaulting to %s.\n", top.Title)
	} else {
		fmt.Fprintf(w, "Top signal: %s\n", top.Title)
	}
	if top.Headline != "" {
		fmt.Fprintf(w, "  %s\n", top.Headline)
	}
	if len(top.Moves) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Next moves:")
		for _, m := range top.Moves {
			fmt.Fprintf(w, "  → %s\n", m)
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%-22s  %6s  %4s\n", "Category", "Score", "%")
	for _, cs := range res.Breakdown() {
		c, _ := def.Category(cs.Category)
		marker := " "
		if cs.Category == res.Top {
			marker = "*"
		}
		fmt.Fprintf(w, "%s %-20s  %6.1f  %3d%%\n", marker, c.Title, cs.Raw, cs.Percentage)
	}
	fmt.Fprintf(w, "\n%d of %d questions counted\n", res.Counted, def.Len())
}
