package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"slate/internal/session"
)

func newSceneCommand(ctx *commandContext) *cobra.Command {
	sceneCmd := &cobra.Command{
		Use:   "scene",
		Short: "Move scenes between days and timelines",
	}

	sceneCmd.AddCommand(newSceneMoveCommand(ctx))
	sceneCmd.AddCommand(newSceneReorderCommand(ctx))
	sceneCmd.AddCommand(newSceneTimelineCommand(ctx))

	return sceneCmd
}

func newSceneMoveCommand(ctx *commandContext) *cobra.Command {
	var insertAt int

	cmd := &cobra.Command{
		Use:   "move <scene> <from-day> <to-day>",
		Short: "Move a scene to another story day",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			sourceKey, err := parseDayKey(args[1])
			if err != nil {
				return err
			}
			targetKey, err := parseDayKey(args[2])
			if err != nil {
				return err
			}
			return ctx.withSession(func(sess *session.Session) error {
				t, err := ctx.timelineType()
				if err != nil {
					return err
				}
				store, err := sess.MoveScene(cmd.Context(), t, args[0], sourceKey, targetKey, insertAt)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Moved scene %s to day %d on the %s timeline\n", args[0], targetKey, store.Type)
				return nil
			})
		},
	}

	cmd.Flags().IntVar(&insertAt, "at", -1, "Insert position within the target day (default: append)")
	return cmd
}

func newSceneReorderCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "reorder <day> <from-position> <to-position>",
		Short: "Reorder a scene within one story day",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := parseDayKey(args[0])
			if err != nil {
				return err
			}
			from, err := parsePosition(args[1])
			if err != nil {
				return err
			}
			to, err := parsePosition(args[2])
			if err != nil {
				return err
			}
			return ctx.withSession(func(sess *session.Session) error {
				t, err := ctx.timelineType()
				if err != nil {
					return err
				}
				store, err := sess.ReorderSceneInDay(cmd.Context(), t, key, from, to)
				if err != nil {
					return err
				}
				day, _ := store.Day(key)
				fmt.Fprintf(cmd.OutOrStdout(), "Day %d order: %v\n", key, day.Scenes)
				return nil
			})
		},
	}
}

func newSceneTimelineCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "timeline <scene> <from> <to>",
		Short: "Reassign a scene to a different timeline",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := parseTimelineArg(args[1])
			if err != nil {
				return err
			}
			to, err := parseTimelineArg(args[2])
			if err != nil {
				return err
			}
			return ctx.withSession(func(sess *session.Session) error {
				doc, err := sess.ChangeSceneTimeline(cmd.Context(), args[0], from, to)
				if err != nil {
					return err
				}
				key, _ := doc.Store(to).SceneDay(args[0])
				fmt.Fprintf(cmd.OutOrStdout(), "Scene %s is now day %d on the %s timeline\n", args[0], key, to)
				return nil
			})
		},
	}
}
