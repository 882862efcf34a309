package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"slate/internal/session"
)

func newDayCommand(ctx *commandContext) *cobra.Command {
	dayCmd := &cobra.Command{
		Use:   "day",
		Short: "Manage story days on a timeline",
	}

	dayCmd.AddCommand(newDayListCommand(ctx))
	dayCmd.AddCommand(newDayCreateCommand(ctx))
	dayCmd.AddCommand(newDayRemoveCommand(ctx))
	dayCmd.AddCommand(newDayReorderCommand(ctx))

	return dayCmd
}

func newDayListCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List story days",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withSession(func(sess *session.Session) error {
				t, err := ctx.timelineType()
				if err != nil {
					return err
				}
				store, err := sess.Timeline(cmd.Context(), t)
				if err != nil {
					return err
				}
				if asJSON {
					elements, err := sess.Elements(cmd.Context())
					if err != nil {
						return err
					}
					return writeJSON(cmd, timelineViewOf(store, elements))
				}
				if store.DayCount() == 0 {
					fmt.Fprintf(cmd.OutOrStdout(), "No days on the %s timeline\n", t)
					return nil
				}
				table := renderTable(
					[]string{"Day", "Scenes", "Detected From", "Flags"},
					dayRows(store),
					[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft},
				)
				fmt.Fprintln(cmd.OutOrStdout(), table)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of a table")
	return cmd
}

func newDayCreateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "create",
		Short: "Append an empty story day",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withSession(func(sess *session.Session) error {
				t, err := ctx.timelineType()
				if err != nil {
					return err
				}
				store, err := sess.CreateDay(cmd.Context(), t)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Created day %d on the %s timeline\n", store.DayCount(), t)
				return nil
			})
		},
	}
}

func newDayRemoveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <day>",
		Short: "Remove a story day, merging its scenes into a neighbor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := parseDayKey(args[0])
			if err != nil {
				return err
			}
			return ctx.withSession(func(sess *session.Session) error {
				t, err := ctx.timelineType()
				if err != nil {
					return err
				}
				store, err := sess.RemoveDay(cmd.Context(), t, key)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed day %d; %s timeline now has %d days\n", key, t, store.DayCount())
				return nil
			})
		},
	}
}

func newDayReorderCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "reorder <from-position> <to-position>",
		Short: "Move a day to a new position and renumber",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := parsePosition(args[0])
			if err != nil {
				return err
			}
			to, err := parsePosition(args[1])
			if err != nil {
				return err
			}
			return ctx.withSession(func(sess *session.Session) error {
				t, err := ctx.timelineType()
				if err != nil {
					return err
				}
				store, err := sess.ReorderDays(cmd.Context(), t, from, to)
				if err != nil {
					return err
				}
				table := renderTable(
					[]string{"Day", "Scenes", "Detected From", "Flags"},
					dayRows(store),
					[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft},
				)
				fmt.Fprintln(cmd.OutOrStdout(), table)
				return nil
			})
		},
	}
}

func parseDayKey(value string) (int, error) {
	key, err := strconv.Atoi(value)
	if err != nil || key < 1 {
		return 0, fmt.Errorf("invalid day key %q", value)
	}
	return key, nil
}

// parsePosition converts a 1-based position argument to a 0-based index.
func parsePosition(value string) (int, error) {
	pos, err := strconv.Atoi(value)
	if err != nil || pos < 1 {
		return 0, fmt.Errorf("invalid position %q", value)
	}
	return pos - 1, nil
}
