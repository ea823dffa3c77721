package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/lingocoach/internal/store"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect generator requests",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		events, err := s.Events().Recent(cmd.Context(), learnerID(cmd), store.EventLLMRequest, limit)
		if err != nil {
			return err
		}
		if len(events) == 0 {
			fmt.Println("No generator requests recorded yet.")
			return nil
		}

		fmt.Printf("%-19s  %-10s  %-28s  %-6s  %-6s  %-7s  %s\n",
			"Timestamp", "Purpose", "Model", "In", "Out", "Ms", "OK")
		fmt.Println(strings.Repeat("─", 92))

		for _, e := range events {
			if purpose != "" && payloadString(e.Payload, "purpose") != purpose {
				continue
			}
			ok := "✓"
			if !payloadBool(e.Payload, "success") {
				ok = "✗"
			}
			model := payloadString(e.Payload, "model")
			if len(model) > 28 {
				model = model[:28]
			}
			fmt.Printf("%-19s  %-10s  %-28s  %-6d  %-6d  %-7d  %s\n",
				e.Timestamp.Local().Format("2006-01-02 15:04:05"),
				payloadString(e.Payload, "purpose"),
				model,
				payloadInt(e.Payload, "input_tokens"),
				payloadInt(e.Payload, "output_tokens"),
				payloadInt(e.Payload, "latency_ms"),
				ok,
			)
			if msg := payloadString(e.Payload, "error"); msg != "" {
				fmt.Printf("    error: %s\n", msg)
			}
		}
		return nil
	},
}

// JSON round-trips event payload numbers as float64.
func payloadInt(p map[string]any, key string) int {
	if f, ok := p[key].(float64); ok {
		return int(f)
	}
	return 0
}

func payloadString(p map[string]any, key string) string {
	if s, ok := p[key].(string); ok {
		return s
	}
	return ""
}

func payloadBool(p map[string]any, key string) bool {
	b, ok := p[key].(bool)
	return ok && b
}

func init() {
	llmCmd.Flags().IntP("limit", "n", 20, "Number of requests to show")
	llmCmd.Flags().StringP("purpose", "p", "", "Filter by purpose (placement, lesson, grade, qa)")
}
