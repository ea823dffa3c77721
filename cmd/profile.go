package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/lingocoach/internal/clock"
	"github.com/abhisek/lingocoach/internal/profile"
	"github.com/abhisek/lingocoach/internal/store"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show the learner profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		svc := profile.NewService(s, clock.System{})
		user, err := svc.Get(cmd.Context(), learnerID(cmd))
		if errors.Is(err, store.ErrNotFound) {
			fmt.Println("No profile yet. Run `lingocoach register` first.")
			return nil
		}
		if err != nil {
			return err
		}

		fmt.Printf("Learner:    %s\n", user.LearnerID)
		fmt.Printf("Name:       %s\n", user.Name)
		fmt.Printf("Age:        %s\n", user.Age)
		fmt.Printf("Email:      %s\n", user.Email)
		fmt.Printf("Level:      %s\n", orDash(user.Level))
		fmt.Printf("CEFR:       %s\n", orDash(user.CEFR))
		fmt.Printf("Goal:       %s\n", orDash(user.Goal))
		fmt.Printf("Weaknesses: %s\n", orDash(strings.Join(user.Weaknesses, ", ")))
		return nil
	},
}

var profileSetCmd = &cobra.Command{
	Use:   "set <field> <value>",
	Short: "Edit one profile field (name, age, email, level, goal)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		svc := profile.NewService(s, clock.System{})
		if err := svc.UpdateField(cmd.Context(), learnerID(cmd), args[0], args[1]); err != nil {
			return err
		}
		fmt.Printf("Updated %s.\n", args[0])
		return nil
	},
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func init() {
	profileCmd.AddCommand(profileSetCmd)
}
