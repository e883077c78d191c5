package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skillsprint/skillsprint/internal/plangen"
	"github.com/skillsprint/skillsprint/internal/plans"
	"github.com/skillsprint/skillsprint/internal/ui"
)

var learnCmd = &cobra.Command{
	Use:   "learn <skill>",
	Short: "Generate an AI learning plan for a new skill",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		confidence, _ := cmd.Flags().GetInt("confidence")

		svc, st, err := planService(cmd, true)
		if err != nil {
			return err
		}
		defer st.Close()

		fmt.Println(ui.Heading(ui.IconSprint, fmt.Sprintf("Generating your %s plan...", args[0])))
		if label := plangen.ConfidenceLabel(confidence); label != "" {
			fmt.Println(ui.Muted.Render("Confidence: " + label))
		}

		gen, err := svc.Generate(cmd.Context(), localUserID, args[0], confidence)
		if err != nil {
			var dup *plans.DuplicateError
			if errors.As(err, &dup) {
				fmt.Println(ui.Warn.Render(fmt.Sprintf("You're already learning this skill. You are %d%% through it.", dup.Progress)))
				fmt.Println(ui.Muted.Render("View it with: skillsprint plan " + dup.PlanID))
				return nil
			}
			var gerr *plans.GenerationError
			if errors.As(err, &gerr) && gerr.RawText != "" {
				fmt.Println(ui.Bad.Render("Could not parse milestones from the AI response."))
				fmt.Println(ui.Muted.Render("Raw response kept for diagnostics (skillsprint llm list)."))
			}
			return err
		}

		fmt.Println()
		fmt.Println(ui.Good.Render("Plan created successfully!"))
		fmt.Println(ui.LabelValue("Plan", gen.Plan.ID))
		fmt.Println()
		for i, m := range gen.Milestones {
			fmt.Println(ui.H2.Render(m.Title))
			if m.Description != "" {
				fmt.Println(ui.Muted.Render(m.Description))
			}
			fmt.Println(ui.Muted.Render(fmt.Sprintf("%d daily tasks", len(m.Tasks))))
			if i < len(gen.Milestones)-1 {
				fmt.Println()
			}
		}
		fmt.Println()
		fmt.Println(ui.Muted.Render("See the full plan: skillsprint plan " + gen.Plan.ID))
		return nil
	},
}

func init() {
	learnCmd.Flags().IntP("confidence", "c", 0, "Your confidence in this skill, 1 (none) to 5 (very confident)")
	learnCmd.MarkFlagRequired("confidence")
}
