package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/skillsprint/skillsprint/internal/ui"
)

var cancelCmd = &cobra.Command{
	Use:   "cancel <plan-id>",
	Short: "Cancel a plan, deleting it and all its tasks",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")

		svc, st, err := planService(cmd, false)
		if err != nil {
			return err
		}
		defer st.Close()

		detail, err := svc.Plan(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		if !yes {
			fmt.Printf("Cancel the %q plan? All %d tasks and %d%% progress will be lost. [y/N] ",
				detail.Plan.Skill, len(detail.Tasks), detail.Progress)
			line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
			if answer := strings.ToLower(strings.TrimSpace(line)); answer != "y" && answer != "yes" {
				fmt.Println(ui.Muted.Render("Kept the plan."))
				return nil
			}
		}

		if err := svc.Cancel(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Println(ui.Good.Render("Plan cancelled."))
		return nil
	},
}

func init() {
	cancelCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}
