package cmd

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/abhisek/pulse/internal/survey"
	"github.com/spf13/cobra"
)

var surveyCmd = &cobra.Command{
	Use:   "survey",
	Short: "Inspect and validate survey definitions",
}

var surveyShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the questions, options and weights of the active survey",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		def, err := loadDefinition(cfg)
		if err != nil {
			return err
		}
		writeDefinition(cmd.OutOrStdout(), def)
		return nil
	},
}

var surveyValidateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate a survey definition file (defaults to --survey or the built-in survey)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		if len(args) == 1 {
			cfg.SurveyPath = args[0]
		}
		def, err := loadDefinition(cfg)
		if err != nil {
			return err
		}
		name := cfg.SurveyPath
		if name == "" {
			name = "built-in survey"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (version %s, %d questions, %d categories)\n",
			name, def.Version, def.Len(), len(def.Categories))
		return nil
	},
}

func init() {
	surveyCmd.AddCommand(surveyShowCmd)
	surveyCmd.AddCommand(surveyValidateCmd)
}

func writeDefinition(w io.Writer, def *survey.Definition) {
	fmt.Fprintf(w, "%s (%s)\n", def.Title, def.Version)
	if def.Tagline != "" {
		fmt.Fprintln(w, def.Tagline)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%-14s  %-22s  %s\n", "Category", "Title", "Accent")
	fmt.Fprintln(w, strings.Repeat("─", 48))
	for _, c := range def.Categories {
		fmt.Fprintf(w, "%-14s  %-22s  %s\n", c.ID, c.Title, c.Accent)
	}

	for i, q := range def.Questions {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "%d. [%s] %s\n", i+1, q.ID, q.Title)
		for _, o := range q.Options {
			fmt.Fprintf(w, "   - %-16s  %-40s  %s\n", o.ID, truncate(o.Label, 40), formatWeights(o.Weights))
		}
	}

	fmt.Fprintf(w, "\n%d questions, %d categories\n", def.Len(), len(def.Categories))
}

// formatWeights renders weights as "craft:3 tooling:1", sorted by category.
func formatWeights(weights map[survey.CategoryID]float64) string {
	keys := make([]string, 0, len(weights))
	for k := range weights {
		keys = append(keys, string(k))
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s:%g", k, weights[survey.CategoryID(k)]))
	}
	return strings.Join(parts, " ")
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
