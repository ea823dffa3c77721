package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/lingocoach/internal/clock"
	"github.com/abhisek/lingocoach/internal/srs"
)

var dueCmd = &cobra.Command{
	Use:   "due",
	Short: "List exercises waiting for review",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		svc := srs.NewService(s, clock.System{})
		items, err := svc.Due(cmd.Context(), learnerID(cmd), limit)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			fmt.Println("Nothing due.")
			return nil
		}

		for _, item := range items {
			exercise := item.Exercise
			if len(exercise) > 60 {
				exercise = exercise[:60] + "…"
			}
			fmt.Printf("%-20s  due %s  %s\n",
				item.ItemID,
				item.NextDueAt.Format("2006-01-02"),
				exercise,
			)
		}
		return nil
	},
}

func init() {
	dueCmd.Flags().IntP("limit", "n", 20, "Maximum items to list")
}
