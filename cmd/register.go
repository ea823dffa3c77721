package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/lingocoach/internal/clock"
	"github.com/abhisek/lingocoach/internal/profile"
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a learner profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		reg := profile.Registration{
			Name:  prompt("Name: "),
			Age:   prompt("Age: "),
			Email: prompt("Email: "),
			Level: prompt("Current level (A1-C2, blank if unsure): "),
			Goal:  prompt("Learning goal (e.g. Travel, Work): "),
		}
		if reg.Name == "" {
			return fmt.Errorf("a name is required")
		}

		svc := profile.NewService(s, clock.System{})
		user, err := svc.Register(cmd.Context(), learnerID(cmd), reg)
		if err != nil {
			return err
		}

		fmt.Printf("\nWelcome, %s! Profile saved for learner %q.\n", user.Name, user.LearnerID)
		if user.Level == "" {
			fmt.Println("Run `lingocoach placement` to find your level.")
		}
		return nil
	},
}
