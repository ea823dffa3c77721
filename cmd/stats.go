package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/lingocoach/internal/clock"
	"github.com/abhisek/lingocoach/internal/progress"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		agg := progress.NewAggregator(s, clock.System{})
		summary, err := agg.Summary(cmd.Context(), learnerID(cmd))
		if err != nil {
			return err
		}

		fmt.Printf("Lessons completed:      %d\n", summary.LessonsDone)
		fmt.Printf("Reviews last 7 days:    %d correct, %d wrong\n",
			summary.ReviewsCorrect7d, summary.ReviewsWrong7d)
		fmt.Printf("Current streak:         %d day(s)\n", summary.StreakDays)
		return nil
	},
}
