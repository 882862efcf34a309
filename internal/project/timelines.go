package project

import (
	"context"
	"encoding/json"
	"fmt"

	"slate/internal/timeline"
)

// ReplaceTimeline stores one timeline's day partition wholesale, replacing the
// previous rows for that timeline type. elementsByDay carries the continuity
// element ids visible on each day for the persisted document.
func (s *Store) ReplaceTimeline(ctx context.Context, store timeline.Store, elementsByDay map[int][]string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin timeline tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM timeline_days WHERE timeline = ?`, string(store.Type)); err != nil {
		return fmt.Errorf("clear timeline %s: %w", store.Type, err)
	}

	for _, day := range store.Days {
		scenesJSON, err := json.Marshal(emptySlice(day.Scenes))
		if err != nil {
			return fmt.Errorf("marshal day %d scenes: %w", day.Key, err)
		}
		detectedJSON, err := json.Marshal(emptySlice(day.DetectedFrom))
		if err != nil {
			return fmt.Errorf("marshal day %d detection: %w", day.Key, err)
		}
		elementsJSON, err := json.Marshal(emptySlice(elementsByDay[day.Key]))
		if err != nil {
			return fmt.Errorf("marshal day %d elements: %w", day.Key, err)
		}

		_, err = tx.ExecContext(
			ctx,
			`INSERT INTO timeline_days (timeline, day_key, scenes_json, detected_json, elements_json, manually_created, reordered)
             VALUES (?, ?, ?, ?, ?, ?, ?)`,
			string(store.Type),
			day.Key,
			string(scenesJSON),
			string(detectedJSON),
			string(elementsJSON),
			boolToInt(day.ManuallyCreated),
			boolToInt(day.Reordered),
		)
		if err != nil {
			return fmt.Errorf("insert day %d: %w", day.Key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit timeline: %w", err)
	}
	return nil
}

// Timeline loads the persisted day partition for one timeline type. A type
// with no rows yields an empty store.
func (s *Store) Timeline(ctx context.Context, t timeline.Type) (timeline.Store, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT day_key, scenes_json, detected_json, manually_created, reordered
         FROM timeline_days WHERE timeline = ? ORDER BY day_key`,
		string(t),
	)
	if err != nil {
		return timeline.Store{}, fmt.Errorf("query timeline %s: %w", t, err)
	}
	defer rows.Close()

	store := timeline.Store{Type: t}
	for rows.Next() {
		var (
			key             int
			scenesJSON      string
			detectedJSON    string
			manuallyCreated int
			reordered       int
		)
		if err := rows.Scan(&key, &scenesJSON, &detectedJSON, &manuallyCreated, &reordered); err != nil {
			return timeline.Store{}, fmt.Errorf("scan day: %w", err)
		}

		day := timeline.Day{
			Key:             key,
			ManuallyCreated: manuallyCreated != 0,
			Reordered:       reordered != 0,
		}
		if err := json.Unmarshal([]byte(scenesJSON), &day.Scenes); err != nil {
			return timeline.Store{}, fmt.Errorf("decode day %d scenes: %w", key, err)
		}
		if err := json.Unmarshal([]byte(detectedJSON), &day.DetectedFrom); err != nil {
			return timeline.Store{}, fmt.Errorf("decode day %d detection: %w", key, err)
		}
		store.Days = append(store.Days, day)
	}
	return store, rows.Err()
}

// Document loads the day partitions for all timeline types.
func (s *Store) Document(ctx context.Context) (timeline.Document, error) {
	doc := timeline.NewDocument()
	for _, t := range timeline.AllTypes() {
		store, err := s.Timeline(ctx, t)
		if err != nil {
			return timeline.Document{}, err
		}
		if store.DayCount() > 0 {
			doc.Timelines[t] = store
		}
	}
	return doc, nil
}

func emptySlice(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
