package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skillsprint/skillsprint/internal/plans"
	"github.com/skillsprint/skillsprint/internal/ui"
)

var checkCmd = &cobra.Command{
	Use:   "check <plan-id> <task-id>",
	Short: "Mark a task complete (or undo it)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		undo, _ := cmd.Flags().GetBool("undo")

		svc, st, err := planService(cmd, false)
		if err != nil {
			return err
		}
		defer st.Close()

		res, err := svc.ToggleTask(cmd.Context(), localUserID, args[0], args[1], !undo)
		if err != nil {
			var lerr *plans.LedgerError
			if errors.As(err, &lerr) && res != nil {
				// The completion itself stands.
				fmt.Println(ui.Good.Render(fmt.Sprintf("Task done. Progress: %d%%", res.Progress)))
				fmt.Println(ui.Warn.Render(ui.IconWarn + " " + lerr.Error()))
				return nil
			}
			return err
		}

		if undo {
			fmt.Println(ui.Muted.Render(fmt.Sprintf("Task unchecked. Progress: %d%%", res.Progress)))
			return nil
		}

		fmt.Println(ui.Good.Render(fmt.Sprintf("%s Task done! +10 XP. Progress: %d%%", ui.IconDone, res.Progress)))
		if lg := res.Ledger; lg != nil {
			if lg.LeveledUp {
				fmt.Println(ui.Gold.Render(fmt.Sprintf("%s Level up! You are now level %d.", ui.IconLevelUp, lg.Level)))
			}
			if lg.Badge != "" {
				fmt.Printf("%s You earned the %s badge for completing %s!\n",
					lg.Badge.Icon(), ui.Gold.Render(lg.Badge.DisplayName()), res.Task.MilestoneTitle)
			}
			if lg.MilestoneComplete {
				fmt.Println(ui.Muted.Render(fmt.Sprintf("%s I just completed %s on SkillSprint!", ui.IconShare, res.Task.MilestoneTitle)))
			}
			if lg.SkillComplete {
				fmt.Println(ui.Gold.Render("Skill complete! The whole plan is done."))
			}
		}
		return nil
	},
}

func init() {
	checkCmd.Flags().Bool("undo", false, "Uncheck the task instead of completing it")
}
