package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"slate/internal/session"
)

func newAnalyzeCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Detect story-day boundaries and rebuild the main timeline",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withSession(func(sess *session.Session) error {
				scenes, store, err := sess.Analyze(cmd.Context())
				if err != nil {
					return err
				}
				if asJSON {
					return writeJSON(cmd, timelineViewOf(store, nil))
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Assigned %d scenes across %d story days\n", len(scenes), store.DayCount())
				if store.DayCount() > 0 {
					table := renderTable(
						[]string{"Day", "Scenes", "Detected From", "Flags"},
						dayRows(store),
						[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft},
					)
					fmt.Fprintln(out, table)
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of a table")
	return cmd
}
