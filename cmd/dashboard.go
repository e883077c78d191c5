package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/skillsprint/skillsprint/internal/ui"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show your streak, level, and plan progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDashboard(cmd)
	},
}

func runDashboard(cmd *cobra.Command) error {
	svc, st, err := planService(cmd, false)
	if err != nil {
		return err
	}
	defer st.Close()

	sum, err := svc.Dashboard(cmd.Context(), localUserID)
	if err != nil {
		return err
	}

	fmt.Println(ui.Heading(ui.IconSprint, "SkillSprint"))
	fmt.Println()

	streak := fmt.Sprintf("%s %d day", ui.IconStreak, sum.Visit.Streak)
	if sum.Visit.Streak != 1 {
		streak += "s"
	}
	fmt.Println(ui.LabelValue("Streak", streak))
	fmt.Println(ui.LabelValue("Level", fmt.Sprintf("%d  (%d XP)", sum.User.Level, sum.User.XP)))
	if len(sum.User.Badges) > 0 {
		fmt.Println(ui.LabelValue("Badges", strings.Join(sum.User.Badges, ", ")))
	}
	fmt.Println()

	if len(sum.Plans) == 0 {
		fmt.Println(ui.Muted.Render("No plans yet. Start one with: skillsprint learn \"<skill>\" --confidence 3"))
		return nil
	}

	for _, card := range sum.Plans {
		var b strings.Builder
		b.WriteString(ui.H2.Render(card.Plan.Skill) + "\n")
		b.WriteString(ui.ProgressBar(card.Progress, 30) + "\n")
		if card.Badge != "" {
			b.WriteString(fmt.Sprintf("%s %s badge\n", card.Badge.Icon(), card.Badge.DisplayName()))
		}
		if ptr := card.Pointer; ptr != nil {
			switch {
			case ptr.AllDone:
				b.WriteString(ui.Good.Render("Skill complete!") + "\n")
			case ptr.Resuming:
				b.WriteString(fmt.Sprintf("Resume at %s, day %d\n", ptr.MilestoneTitle, ptr.MilestoneDay))
			default:
				b.WriteString(fmt.Sprintf("Start %s\n", ptr.MilestoneTitle))
			}
		}
		b.WriteString(ui.Muted.Render("skillsprint plan " + card.Plan.ID))
		fmt.Println(ui.Panel.Render(b.String()))
	}
	return nil
}
