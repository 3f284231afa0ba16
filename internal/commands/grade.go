package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/drillbook-dev/drillbook/internal/attemptlog"
	"github.com/drillbook-dev/drillbook/internal/grade"
	"github.com/drillbook-dev/drillbook/internal/model"
)

func newGradeCommand() *cobra.Command {
	var (
		activityPath string
		step         int
		logPath      string
	)

	cmd := &cobra.Command{
		Use:   "grade <answer-file>",
		Short: "Grade an answer file against a generated activity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if step < 1 || step > 10 {
				return fmt.Errorf("step must be between 1 and 10, got %d", step)
			}

			data, err := os.ReadFile(activityPath)
			if err != nil {
				return fmt.Errorf("reading activity: %w", err)
			}
			var activity model.Activity
			if err := json.Unmarshal(data, &activity); err != nil {
				return fmt.Errorf("parsing activity: %w", err)
			}

			answer, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading answer: %w", err)
			}

			result, err := grade.Validate(step, &activity, answer)
			if err != nil {
				return fmt.Errorf("grading step %d: %w", step, err)
			}

			printResult(step, result)

			if logPath != "" {
				entry := attemptlog.Entry{
					Timestamp:  time.Now().UTC(),
					ActivityID: activity.Config.BusinessName,
					Step:       step,
					Score:      result.Score,
					MaxScore:   result.MaxScore,
					Letter:     result.Letter,
				}
				if err := attemptlog.Append(logPath, entry); err != nil {
					return fmt.Errorf("appending attempt log: %w", err)
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&activityPath, "activity", "a", "activity.json", "Path to the generated activity")
	cmd.Flags().IntVarP(&step, "step", "s", 0, "Cycle step to grade (1-10)")
	cmd.Flags().StringVar(&logPath, "log", "attempts.csv", "Attempt log path (empty disables logging)")
	_ = cmd.MarkFlagRequired("step")

	return cmd
}

func printResult(step int, r grade.Result) {
	headline := color.New(color.Bold)
	headline.Printf("Step %d: %d/%d (%s)\n", step, r.Score, r.MaxScore, r.Letter)

	switch {
	case r.IsCorrect:
		color.Green("All checks passed")
	case r.MaxScore == 0:
		color.Yellow("Nothing to grade for this step")
	default:
		color.Red("%d point(s) short of a perfect score", r.MaxScore-r.Score)
	}
}
