package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"slate/internal/session"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show a project-wide timeline and continuity summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withSession(func(sess *session.Session) error {
				summary, err := sess.Summary(cmd.Context())
				if err != nil {
					return err
				}
				if asJSON {
					return writeJSON(cmd, summary)
				}

				out := cmd.OutOrStdout()
				colorize := shouldColorize(out)
				title := summary.Project
				if title == "" {
					title = "Untitled Production"
				}
				fmt.Fprintln(out, renderSectionHeader(title, colorize))
				fmt.Fprintf(out, "Scenes: %d total, %d unassigned\n", summary.TotalScenes, summary.UnassignedScenes)

				rows := make([][]string, 0, len(summary.Timelines))
				for _, tl := range summary.Timelines {
					rows = append(rows, []string{
						string(tl.Type),
						strconv.Itoa(tl.Days),
						strconv.Itoa(tl.Scenes),
						strconv.Itoa(tl.Elements),
					})
				}
				table := renderTable(
					[]string{"Timeline", "Days", "Scenes", "Elements"},
					rows,
					[]columnAlignment{alignLeft, alignRight, alignRight, alignRight},
				)
				fmt.Fprintln(out, table)

				if summary.UnassignedScenes > 0 {
					fmt.Fprintln(out, renderWarning("Some scenes have no story day; run `slate analyze`", colorize))
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of a table")
	return cmd
}
