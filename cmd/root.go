package cmd

import (
	"fmt"
	"os"

	"github.com/abhisek/pulse/internal/app"
	"github.com/abhisek/pulse/internal/config"
	"github.com/abhisek/pulse/internal/store"
	"github.com/abhisek/pulse/internal/survey"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pulse",
	Short: "A quick pulse-check survey for your terminal",
	Long: "pulse walks you through a short multiple-choice survey, scores your answers\n" +
		"across a set of categories and shows where your signal is strongest.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("survey", "", "Path to a JSON or YAML survey definition (overrides PULSE_SURVEY)")
	rootCmd.PersistentFlags().String("journal", "", "SQLite DSN or file path for the session journal (overrides PULSE_JOURNAL)")
	rootCmd.Flags().Bool("no-splash", false, "Skip the splash animation")

	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(walkCmd)
	rootCmd.AddCommand(surveyCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveConfig loads the environment configuration and applies flag
// overrides: --survey over PULSE_SURVEY, --journal over PULSE_JOURNAL.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	if p, _ := cmd.Flags().GetString("survey"); p != "" {
		cfg.SurveyPath = p
	}
	if dsn, _ := cmd.Flags().GetString("journal"); dsn != "" {
		cfg.JournalDSN = dsn
	}
	return cfg, nil
}

// loadDefinition loads the survey named by cfg, or the built-in one.
func loadDefinition(cfg config.Config) (*survey.Definition, error) {
	def, err := survey.Load(cfg.SurveyPath)
	if err != nil {
		return nil, fmt.Errorf("load survey: %w", err)
	}
	return def, nil
}

// openJournal opens the session journal. A journal that cannot be opened
// is not fatal: a warning is printed and the caller runs without one.
func openJournal(cfg config.Config) *store.Store {
	st, err := store.Open(cfg.JournalDSN)
	if err != nil {
		fmt.Fprintln(os.Stderr, "warning: session journal unavailable:", err)
		return nil
	}
	return st
}

// runApp resolves configuration, opens the journal and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	def, err := loadDefinition(cfg)
	if err != nil {
		return err
	}

	opts := app.Options{
		Definition:  def,
		SubmitDelay: cfg.SubmitDelay,
	}
	opts.SkipSplash, _ = cmd.Flags().GetBool("no-splash")

	if st := openJournal(cfg); st != nil {
		defer st.Close()
		opts.EventRepo = st.EventRepo()
	}

	return app.Run(opts)
}
