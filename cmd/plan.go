package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skillsprint/skillsprint/internal/linkcheck"
	"github.com/skillsprint/skillsprint/internal/ui"
)

var planCmd = &cobra.Command{
	Use:   "plan <plan-id>",
	Short: "Show a plan's milestones and tasks",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		checkLinks, _ := cmd.Flags().GetBool("check-links")
		fresh, _ := cmd.Flags().GetBool("fresh")

		// Read path only; no LLM needed.
		svc, st, err := planService(cmd, false)
		if err != nil {
			return err
		}
		defer st.Close()

		detail, err := svc.Plan(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		fmt.Println(ui.Heading(ui.IconPlan, detail.Plan.Skill))
		fmt.Println(ui.ProgressBar(detail.Progress, 40))
		if detail.Badge != "" {
			fmt.Printf("%s %s badge (%d milestones complete)\n", detail.Badge.Icon(), detail.Badge.DisplayName(), detail.CompletedMilestones)
		}
		fmt.Println()

		var checker *linkcheck.Checker
		if checkLinks {
			checker = linkcheck.New()
		}

		currentMilestone := -1
		for _, t := range detail.Tasks {
			if t.MilestoneIndex != currentMilestone {
				if currentMilestone != -1 {
					fmt.Println()
				}
				currentMilestone = t.MilestoneIndex
				fmt.Println(ui.H2.Render(t.MilestoneTitle))
			}
			fmt.Printf("%s Day %d  %s\n", ui.TaskIcon(t.Completed), t.Day, ui.Muted.Render("task "+t.ID))
			fmt.Println("   " + t.Description)
			if t.ResourceLink != "" {
				line := fmt.Sprintf("   %s %s", ui.IconLink, t.ResourceLink)
				if checker != nil && !checker.Probe(cmd.Context(), t.ResourceLink, fresh) {
					line += "  " + ui.Warn.Render(ui.IconWarn+" resource may be unavailable")
				}
				fmt.Println(line)
			}
		}

		fmt.Println()
		fmt.Println(ui.Muted.Render("Check off a task: skillsprint check " + detail.Plan.ID + " <task-id>"))
		return nil
	},
}

func init() {
	planCmd.Flags().Bool("check-links", false, "Probe each resource link and flag unreachable ones")
	planCmd.Flags().Bool("fresh", false, "Bypass the link-check cache and re-probe")
}
