package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/abhisek/lingocoach/internal/app"
	"github.com/abhisek/lingocoach/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "lingocoach",
	Short: "AI language tutor",
	Long:  "Lingocoach — personalized language lessons, placement tests, and spaced-repetition review from the terminal.",
}

func Execute() error {
	// Missing .env is fine; the environment may already be set.
	_ = godotenv.Load()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides LINGOCOACH_DB env var)")
	rootCmd.PersistentFlags().StringP("learner", "l", "", "Learner ID (defaults to LINGOCOACH_LEARNER, then \"default\")")

	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(placementCmd)
	rootCmd.AddCommand(lessonCmd)
	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(dueCmd)
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then LINGOCOACH_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// learnerID resolves the active learner from the --learner flag or
// environment.
func learnerID(cmd *cobra.Command) string {
	if id, _ := cmd.Flags().GetString("learner"); id != "" {
		return id
	}
	if id := os.Getenv("LINGOCOACH_LEARNER"); id != "" {
		return id
	}
	return "default"
}

// openApp builds the full application for commands that need the generator
// stack. The caller closes it.
func openApp(cmd *cobra.Command) (*app.App, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}

	cfg := app.ConfigFromEnv()
	cfg.DBPath = dbPath

	a, err := app.New(cmd.Context(), cfg)
	if err != nil {
		return nil, fmt.Errorf("start app: %w", err)
	}
	return a, nil
}

// openStore opens only the database, for commands that never touch the
// generator.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

var stdin = bufio.NewReader(os.Stdin)

// prompt prints a label and reads one trimmed line. Returns "" on EOF.
func prompt(label string) string {
	fmt.Print(label)
	line, err := stdin.ReadString('\n')
	if err != nil && line == "" {
		fmt.Println()
		return ""
	}
	return strings.TrimSpace(line)
}
