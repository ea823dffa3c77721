package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/lingocoach/internal/store"
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Review due exercises",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		ctx := cmd.Context()
		learner := learnerID(cmd)

		items, err := a.Reviews.Due(ctx, learner, limit)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			fmt.Println("Nothing due. Start a lesson to add review items.")
			return nil
		}

		user, err := a.Profile.Get(ctx, learner)
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			return err
		}

		fmt.Printf("%d item(s) due.\n\n", len(items))
		for i, item := range items {
			fmt.Printf("[%d/%d] %s\n", i+1, len(items), item.Exercise)

			answer := prompt("> ")
			if answer == "" {
				fmt.Println("Skipped.")
				fmt.Println()
				continue
			}

			result, err := a.Content.GradeAnswer(ctx, learner, item.Exercise, answer, user.Weaknesses)
			if err != nil {
				return fmt.Errorf("grading failed, answer not recorded: %w", err)
			}
			fmt.Println(result.Feedback)

			outcome, err := a.Reviews.RecordResult(ctx, learner, item.ItemID, result.Correct)
			if err != nil {
				return err
			}
			fmt.Printf("Next review in %d day(s).\n\n", outcome.IntervalDays)
		}
		return nil
	},
}

func init() {
	reviewCmd.Flags().IntP("limit", "n", 5, "Maximum items per session")
}
