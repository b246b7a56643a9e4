package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/abhisek/pulse/internal/scoring"
	"github.com/abhisek/pulse/internal/session"
	"github.com/abhisek/pulse/internal/store"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var walkCmd = &cobra.Command{
	Use:   "walk",
	Short: "Drive the survey step by step without the TUI",
	Long: `Walk selects each answer in question order, advances through the survey,
waits out the submission delay and prints the result. Every step is written
to the session journal. Ctrl+C interrupts the submission.`,
	Example: `  pulse walk -a energy=hard-problem -a friction=slow-loop -a win=elegant-design \
    -a learning=by-building -a spark=dotfiles -v`,
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
		verbose, _ := cmd.Flags().GetBool("verbose")

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		var repo store.EventRepo
		if st := openJournal(cfg); st != nil {
			defer st.Close()
			repo = st.EventRepo()
		}
		j := &walkJournal{repo: repo, sessionID: uuid.New().String()}

		out := cmd.OutOrStdout()
		j.record(ctx, session.Step{Action: store.ActionStart, Phase: session.PhaseAnswering})

		final, err := session.Walk(ctx, session.New(def), answers, cfg.SubmitDelay, func(s session.Step) {
			j.record(ctx, s)
			if verbose {
				fmt.Fprintf(out, "%-8s %-12s %-16s %s\n", s.Action, s.QuestionID, s.OptionID, s.Phase)
			}
		})
		if err != nil {
			return fmt.Errorf("walk: %w", err)
		}

		res := final.Result()
		j.result(ctx, def.Title, final.AnsweredCount(), res)

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			return writeResultJSON(out, def, res)
		}
		if verbose {
			fmt.Fprintln(out)
		}
		writeResultText(out, def, res)
		return nil
	},
}

func init() {
	walkCmd.Flags().StringArrayP("answer", "a", nil, "Answer as question=option, one per question (repeatable)")
	walkCmd.Flags().Bool("json", false, "Print the result as JSON")
	walkCmd.Flags().BoolP("verbose", "v", false, "Print every step as it is applied")
}

// walkJournal writes walk steps to the session journal. Write failures
// print a warning once and never stop the walk.
type walkJournal struct {
	repo      store.EventRepo
	sessionID string
	warned    bool
}

func (j *walkJournal) record(ctx context.Context, s session.Step) {
	if j.repo == nil {
		return
	}
	j.warn(j.repo.AppendSurveyEvent(context.WithoutCancel(ctx), store.SurveyEventData{
		SessionID:  j.sessionID,
		Action:     s.Action,
		QuestionID: s.QuestionID,
		OptionID:   s.OptionID,
		Step:       s.Index,
		Phase:      s.Phase.String(),
	}))
}

func (j *walkJournal) result(ctx context.Context, title string, answered int, res scoring.Result) {
	if j.repo == nil {
		return
	}
	scores := make(map[string]float64, len(res.Scores))
	for _, cs := range res.Scores {
		scores[string(cs.Category)] = cs.Raw
	}
	j.warn(j.repo.AppendResultEvent(context.WithoutCancel(ctx), store.ResultEventData{
		SessionID:   j.sessionID,
		SurveyTitle: title,
		TopCategory: string(res.Top),
		Total:       res.Total,
		Answered:    answered,
		Scores:      scores,
	}))
}

func (j *walkJournal) warn(err error) {
	if err == nil || j.warned {
		return
	}
	j.warned = true
	fmt.Fprintln(os.Stderr, "warning: journal write failed:", err)
}
