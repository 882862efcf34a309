package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"slate/internal/session"
)

func newScenesCommand(ctx *commandContext) *cobra.Command {
	scenesCmd := &cobra.Command{
		Use:   "scenes",
		Short: "Import and inspect the scene list",
	}

	scenesCmd.AddCommand(newScenesImportCommand(ctx))
	scenesCmd.AddCommand(newScenesListCommand(ctx))

	return scenesCmd
}

func newScenesImportCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the scene list from a JSON file (use - for stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withSession(func(sess *session.Session) error {
				var reader io.Reader
				if args[0] == "-" {
					reader = cmd.InOrStdin()
				} else {
					file, err := os.Open(args[0])
					if err != nil {
						return fmt.Errorf("open scene file: %w", err)
					}
					defer file.Close()
					reader = file
				}

				scenes, err := sess.ImportScenes(cmd.Context(), reader)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Imported %d scenes; run `slate analyze` to assign story days\n", len(scenes))
				return nil
			})
		},
	}
}

func newScenesListCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List scenes in script order",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withSession(func(sess *session.Session) error {
				scenes, err := sess.Scenes(cmd.Context())
				if err != nil {
					return err
				}
				if asJSON {
					return writeJSON(cmd, sceneViews(scenes))
				}
				if len(scenes) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No scenes imported")
					return nil
				}
				table := renderTable(
					[]string{"Scene", "Heading", "Time", "Day", "Timeline", "Confidence"},
					sceneRows(scenes),
					[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignLeft, alignLeft},
				)
				fmt.Fprintln(cmd.OutOrStdout(), table)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of a table")
	return cmd
}
