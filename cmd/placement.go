package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/lingocoach/internal/content"
	"github.com/abhisek/lingocoach/internal/placement"
)

var placementCmd = &cobra.Command{
	Use:   "placement",
	Short: "Take a placement test to find your level",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		ctx := cmd.Context()
		learner := learnerID(cmd)
		hint, _ := cmd.Flags().GetString("hint")

		questions := a.Content.PlacementQuestions(ctx, learner, hint)
		fmt.Printf("Placement test — %d questions. Answer with the option letter or the full text.\n\n", len(questions))

		tally := placement.NewTally()
		for i, q := range questions {
			printQuestion(i+1, q)

			correct, answered := checkAnswer(q)
			if !answered {
				fmt.Println("Skipped.")
				fmt.Println()
				continue
			}
			tally.Record(q, correct)
			if correct {
				fmt.Println("Correct!")
			} else {
				fmt.Println("Not quite.")
			}
			fmt.Println()
		}

		if tally.Total == 0 {
			fmt.Println("No questions answered; level not assessed.")
			return nil
		}

		cefr := tally.CEFR()
		weak := tally.TopWeaknesses(3)
		if err := a.Profile.CompletePlacement(ctx, learner, cefr, tally.Score, tally.Total, weak); err != nil {
			return err
		}

		fmt.Printf("Score: %d/%d — assessed level %s\n", tally.Score, tally.Total, cefr)
		if len(weak) > 0 {
			fmt.Printf("Focus areas: %s\n", strings.Join(weak, ", "))
		}
		return nil
	},
}

func printQuestion(n int, q content.Question) {
	fmt.Printf("%d. %s\n", n, q.Q)
	if q.Transcript != "" {
		fmt.Printf("   (audio transcript: %s)\n", q.Transcript)
	}
	for i, opt := range q.Options {
		fmt.Printf("   %c) %s\n", 'A'+i, opt)
	}
}

// checkAnswer prompts for and scores one reply locally. Questions with no
// scorable answer are skipped.
func checkAnswer(q content.Question) (correct, answered bool) {
	input := prompt("> ")
	if input == "" {
		return false, false
	}

	if len(q.Options) > 0 && q.AnswerIndex != nil {
		idx, ok := placement.MatchOption(q.Options, input)
		if !ok {
			return false, true
		}
		return idx == *q.AnswerIndex, true
	}
	if q.AnswerText != "" {
		return placement.CheckOpenAnswer(q.AnswerText, input), true
	}
	return false, false
}

func init() {
	placementCmd.Flags().String("hint", "", "Rough self-assessed level to calibrate the test (e.g. Beginner, Intermediate)")
}
