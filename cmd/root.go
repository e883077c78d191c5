package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/skillsprint/skillsprint/internal/llm"
	"github.com/skillsprint/skillsprint/internal/plans"
	"github.com/skillsprint/skillsprint/internal/store"
)

// localUserID is the single local learner profile. A multi-user deployment
// would thread real identity through here instead.
const localUserID = "local"

var rootCmd = &cobra.Command{
	Use:   "skillsprint",
	Short: "AI-powered skill learning tracker",
	Long:  "SkillSprint — generate AI learning plans for any skill and track your daily progress, streaks, and badges from the terminal.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDashboard(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides SKILLSPRINT_DB env var)")

	rootCmd.AddCommand(learnCmd)
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(cancelCmd)
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then SKILLSPRINT_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore opens the database for commands that do not need an LLM.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return st, nil
}

// planService builds the plan lifecycle service. The provider is optional:
// commands that never call the AI pass requireLLM=false and still work
// without an API key configured.
func planService(cmd *cobra.Command, requireLLM bool) (*plans.Service, *store.Store, error) {
	st, err := openStore(cmd)
	if err != nil {
		return nil, nil, err
	}

	provider, err := llm.NewProviderFromEnv(cmd.Context(), st.EventRepo())
	if err != nil {
		if requireLLM {
			st.Close()
			return nil, nil, fmt.Errorf("LLM provider not configured: %w", err)
		}
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "AI features will be unavailable.")
		provider = nil
	}

	return plans.NewService(provider, st.UserRepo(), st.PlanRepo(), st.TaskRepo()), st, nil
}
