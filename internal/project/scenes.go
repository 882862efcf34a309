package project

import (
	"context"
	"database/sql"
	"fmt"

	"slate/internal/timeline"
)

const sceneColumns = "number, heading, time_of_day, story_day, timeline, confidence"

// ReplaceScenes stores the full scene list, replacing whatever was persisted
// before. Script order is preserved via the position column.
func (s *Store) ReplaceScenes(ctx context.Context, scenes []timeline.Scene) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin scenes tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM scenes`); err != nil {
		return fmt.Errorf("clear scenes: %w", err)
	}

	for i, scene := range scenes {
		_, err := tx.ExecContext(
			ctx,
			`INSERT INTO scenes (number, heading, time_of_day, story_day, timeline, confidence, position)
             VALUES (?, ?, ?, ?, ?, ?, ?)`,
			scene.Number,
			scene.Heading,
			string(scene.TimeOfDay),
			scene.StoryDay,
			string(scene.Timeline),
			string(scene.Confidence),
			i,
		)
		if err != nil {
			return fmt.Errorf("insert scene %s: %w", scene.Number, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit scenes: %w", err)
	}
	return nil
}

// Scenes returns the persisted scene list in script order.
func (s *Store) Scenes(ctx context.Context) ([]timeline.Scene, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+sceneColumns+` FROM scenes ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query scenes: %w", err)
	}
	defer rows.Close()

	var scenes []timeline.Scene
	for rows.Next() {
		scene, err := scanScene(rows)
		if err != nil {
			return nil, err
		}
		scenes = append(scenes, scene)
	}
	return scenes, rows.Err()
}

// SceneCount returns the number of persisted scenes.
func (s *Store) SceneCount(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM scenes`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count scenes: %w", err)
	}
	return count, nil
}

func scanScene(scanner interface{ Scan(dest ...any) error }) (timeline.Scene, error) {
	var (
		number     string
		heading    sql.NullString
		timeOfDay  string
		storyDay   int
		tl         string
		confidence string
	)
	if err := scanner.Scan(&number, &heading, &timeOfDay, &storyDay, &tl, &confidence); err != nil {
		return timeline.Scene{}, fmt.Errorf("scan scene: %w", err)
	}
	return timeline.Scene{
		Number:     number,
		Heading:    heading.String,
		TimeOfDay:  timeline.TimeOfDay(timeOfDay),
		StoryDay:   storyDay,
		Timeline:   timeline.Type(tl),
		Confidence: timeline.Confidence(confidence),
	}, nil
}
