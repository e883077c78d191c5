package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skillsprint/skillsprint/internal/expert"
	"github.com/skillsprint/skillsprint/internal/llm"
	"github.com/skillsprint/skillsprint/internal/ui"
)

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask an expert a question about a skill",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		skill, _ := cmd.Flags().GetString("skill")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		provider, err := llm.NewProviderFromEnv(cmd.Context(), st.EventRepo())
		if err != nil {
			return fmt.Errorf("LLM provider not configured: %w", err)
		}

		answer, err := expert.NewService(provider).Ask(cmd.Context(), skill, args[0])
		if err != nil {
			return err
		}

		fmt.Println(ui.Heading("💬", "Expert answer"))
		fmt.Println()
		fmt.Println(answer)
		return nil
	},
}

func init() {
	askCmd.Flags().StringP("skill", "s", "", "Skill to frame the answer around")
}
