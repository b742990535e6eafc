package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/gantt/internal/app"
)

func (c *CLI) newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render <tasklist.csv>",
		Short: "Schedule a task list and render the chart",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}
			svgPath, _ := cmd.Flags().GetString("svg")
			start, _ := cmd.Flags().GetString("start")
			workWeekends, _ := cmd.Flags().GetBool("work-weekends")
			watch, _ := cmd.Flags().GetBool("watch")
			noColor, _ := cmd.Flags().GetBool("no-color")

			return c.app.Run(cmd.Context(), app.RunOptions{
				TaskList:     args[0],
				SVG:          svgPath,
				Start:        start,
				WorkWeekends: workWeekends,
				Watch:        watch,
				NoColor:      noColor,
			})
		},
	}
	cmd.Flags().StringP("svg", "o", "", "Write the chart as SVG to the given path")
	cmd.Flags().StringP("start", "s", "", "Project start date (YYYY-MM-DD, overrides the chart file)")
	cmd.Flags().Bool("work-weekends", false, "Schedule straight through weekends")
	cmd.Flags().BoolP("watch", "w", false, "Re-render whenever an input file changes")
	cmd.Flags().Bool("no-color", false, "Disable styled terminal output")
	return cmd
}
