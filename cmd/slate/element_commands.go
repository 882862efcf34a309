package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"slate/internal/continuity"
	"slate/internal/session"
)

func newElementCommand(ctx *commandContext) *cobra.Command {
	elementCmd := &cobra.Command{
		Use:   "element",
		Short: "Track continuity elements across story days",
	}

	elementCmd.AddCommand(newElementListCommand(ctx))
	elementCmd.AddCommand(newElementAddCommand(ctx))
	elementCmd.AddCommand(newElementEditCommand(ctx))
	elementCmd.AddCommand(newElementRemoveCommand(ctx))

	return elementCmd
}

// elementFlags carries the shared add/edit flag set.
type elementFlags struct {
	name       string
	typeName   string
	character  string
	startScene string
	endScene   string
	statuses   []string
	notes      []string
}

func (f *elementFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "Element name (e.g. \"Black eye\")")
	cmd.Flags().StringVar(&f.typeName, "type", "", "Element type (injury, makeup, costume, props, hair, aging, weather_effects, vehicle_damage, custom)")
	cmd.Flags().StringVar(&f.character, "character", "", "Character the element belongs to")
	cmd.Flags().StringVar(&f.startScene, "from-scene", "", "First scene the element appears in")
	cmd.Flags().StringVar(&f.endScene, "to-scene", "", "Last scene the element appears in")
	cmd.Flags().StringArrayVar(&f.statuses, "status", nil, "Per-day status as DAY=TEXT (repeatable)")
	cmd.Flags().StringArrayVar(&f.notes, "note", nil, "Per-day note as DAY=TEXT (repeatable)")
}

func (f *elementFlags) form(ctx *commandContext) (continuity.Form, error) {
	t, err := ctx.timelineType()
	if err != nil {
		return continuity.Form{}, err
	}
	daily, err := parseDayRecords(f.statuses, f.notes)
	if err != nil {
		return continuity.Form{}, err
	}
	return continuity.Form{
		Name:        f.name,
		Type:        continuity.Type(strings.ToLower(strings.TrimSpace(f.typeName))),
		Timeline:    t,
		CharacterID: f.character,
		StartScene:  f.startScene,
		EndScene:    f.endScene,
		Daily:       daily,
	}, nil
}

func newElementAddCommand(ctx *commandContext) *cobra.Command {
	var flags elementFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a continuity element",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withSession(func(sess *session.Session) error {
				form, err := flags.form(ctx)
				if err != nil {
					return err
				}
				created, err := sess.AddElement(cmd.Context(), form)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Created element %s (%s, days %d-%d)\n",
					shortID(created.ID), created.Name, created.StartDay, created.EndDay)
				return nil
			})
		},
	}

	flags.register(cmd)
	return cmd
}

func newElementEditCommand(ctx *commandContext) *cobra.Command {
	var flags elementFlags

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Replace a continuity element, keeping overlapping day notes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withSession(func(sess *session.Session) error {
				id, err := resolveElementID(cmd, sess, args[0])
				if err != nil {
					return err
				}
				form, err := flags.form(ctx)
				if err != nil {
					return err
				}
				edited, err := sess.EditElement(cmd.Context(), id, form)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Updated element %s (days %d-%d)\n",
					shortID(edited.ID), edited.StartDay, edited.EndDay)
				return nil
			})
		},
	}

	flags.register(cmd)
	return cmd
}

func newElementRemoveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a continuity element",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withSession(func(sess *session.Session) error {
				id, err := resolveElementID(cmd, sess, args[0])
				if err != nil {
					return err
				}
				if err := sess.DeleteElement(cmd.Context(), id); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted element %s\n", shortID(id))
				return nil
			})
		},
	}
}

func newElementListCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List continuity elements clamped to the current day range",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withSession(func(sess *session.Session) error {
				t, err := ctx.timelineType()
				if err != nil {
					return err
				}
				visible, err := sess.VisibleElements(cmd.Context(), t)
				if err != nil {
					return err
				}
				if asJSON {
					views := make([]elementView, 0, len(visible))
					for _, v := range visible {
						views = append(views, elementViewOf(v))
					}
					return writeJSON(cmd, views)
				}
				out := cmd.OutOrStdout()
				if len(visible) == 0 {
					fmt.Fprintf(out, "No elements on the %s timeline\n", t)
					return nil
				}
				table := renderTable(
					[]string{"ID", "Name", "Type", "Character", "Days", "Scenes", ""},
					elementRows(visible),
					[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignLeft, alignLeft, alignLeft},
				)
				fmt.Fprintln(out, table)
				for _, v := range visible {
					if v.Stale {
						warning := fmt.Sprintf("element %s references days that no longer exist (stored %d-%d)",
							shortID(v.Element.ID), v.Element.StartDay, v.Element.EndDay)
						fmt.Fprintln(out, renderWarning(warning, shouldColorize(out)))
					}
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of a table")
	return cmd
}

// resolveElementID accepts a full element id or an unambiguous prefix.
func resolveElementID(cmd *cobra.Command, sess *session.Session, arg string) (string, error) {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return "", fmt.Errorf("element id is required")
	}

	elements, err := sess.Elements(cmd.Context())
	if err != nil {
		return "", err
	}

	var matches []string
	for _, e := range elements {
		if e.ID == arg {
			return e.ID, nil
		}
		if strings.HasPrefix(e.ID, arg) {
			matches = append(matches, e.ID)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return arg, nil
	default:
		return "", fmt.Errorf("element id prefix %q is ambiguous (%d matches)", arg, len(matches))
	}
}

func parseDayRecords(statuses, notes []string) (map[int]continuity.DayRecord, error) {
	if len(statuses) == 0 && len(notes) == 0 {
		return nil, nil
	}

	daily := make(map[int]continuity.DayRecord)
	apply := func(entries []string, setStatus bool) error {
		for _, entry := range entries {
			key, value, ok := strings.Cut(entry, "=")
			if !ok {
				return fmt.Errorf("invalid day entry %q (expected DAY=TEXT)", entry)
			}
			day, err := strconv.Atoi(strings.TrimSpace(key))
			if err != nil || day < 1 {
				return fmt.Errorf("invalid day key in %q", entry)
			}
			rec := daily[day]
			if setStatus {
				rec.Status = strings.TrimSpace(value)
			} else {
				rec.Notes = strings.TrimSpace(value)
			}
			daily[day] = rec
		}
		return nil
	}

	if err := apply(statuses, true); err != nil {
		return nil, err
	}
	if err := apply(notes, false); err != nil {
		return nil, err
	}
	return daily, nil
}
