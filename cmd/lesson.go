package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/lingocoach/internal/store"
)

var lessonCmd = &cobra.Command{
	Use:   "lesson",
	Short: "Start a micro-lesson",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		ctx := cmd.Context()
		learner := learnerID(cmd)

		user, err := a.Profile.Get(ctx, learner)
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			return err
		}

		started, err := a.Content.StartLesson(ctx, learner, user.Level, user.Goal, user.Weaknesses)
		if err != nil {
			return err
		}

		fmt.Println(started.Content)
		fmt.Println()
		fmt.Println(started.Exercise)
		fmt.Println()

		answer := prompt("Your answer (blank to skip): ")
		if answer == "" {
			fmt.Println("Exercise saved for review. See you next time!")
			return nil
		}

		result, err := a.Content.GradeAnswer(ctx, learner, started.Exercise, answer, user.Weaknesses)
		if err != nil {
			return fmt.Errorf("grading failed, answer not recorded: %w", err)
		}
		fmt.Println(result.Feedback)

		outcome, err := a.Reviews.RecordResult(ctx, learner, started.ItemID, result.Correct)
		if err != nil {
			return err
		}
		fmt.Printf("Next review in %d day(s).\n", outcome.IntervalDays)
		return nil
	},
}
