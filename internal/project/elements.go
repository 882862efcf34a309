package project

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"slate/internal/continuity"
	"slate/internal/timeline"
)

const elementColumns = "id, name, type, timeline, character_id, start_day, end_day, start_scene, end_scene, daily_json, created_at, updated_at"

// ReplaceElements stores the continuity element list wholesale.
func (s *Store) ReplaceElements(ctx context.Context, elements []continuity.Element) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin elements tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM elements`); err != nil {
		return fmt.Errorf("clear elements: %w", err)
	}

	for _, element := range elements {
		dailyJSON, err := json.Marshal(element.Daily)
		if err != nil {
			return fmt.Errorf("marshal element %s tracking: %w", element.ID, err)
		}
		_, err = tx.ExecContext(
			ctx,
			`INSERT INTO elements (`+elementColumns+`)
             VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			element.ID,
			element.Name,
			string(element.Type),
			string(element.Timeline),
			nullableString(element.CharacterID),
			element.StartDay,
			element.EndDay,
			element.StartScene,
			element.EndScene,
			string(dailyJSON),
			element.CreatedAt.UTC().Format(time.RFC3339Nano),
			element.UpdatedAt.UTC().Format(time.RFC3339Nano),
		)
		if err != nil {
			return fmt.Errorf("insert element %s: %w", element.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit elements: %w", err)
	}
	return nil
}

// Elements returns the persisted continuity element list.
func (s *Store) Elements(ctx context.Context) ([]continuity.Element, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+elementColumns+` FROM elements ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("query elements: %w", err)
	}
	defer rows.Close()

	var elements []continuity.Element
	for rows.Next() {
		element, err := scanElement(rows)
		if err != nil {
			return nil, err
		}
		elements = append(elements, element)
	}
	return elements, rows.Err()
}

func scanElement(scanner interface{ Scan(dest ...any) error }) (continuity.Element, error) {
	var (
		id          string
		name        string
		typeStr     string
		tl          string
		characterID sql.NullString
		startDay    int
		endDay      int
		startScene  string
		endScene    string
		dailyJSON   string
		createdRaw  string
		updatedRaw  string
	)
	if err := scanner.Scan(
		&id,
		&name,
		&typeStr,
		&tl,
		&characterID,
		&startDay,
		&endDay,
		&startScene,
		&endScene,
		&dailyJSON,
		&createdRaw,
		&updatedRaw,
	); err != nil {
		return continuity.Element{}, fmt.Errorf("scan element: %w", err)
	}

	element := continuity.Element{
		ID:          id,
		Name:        name,
		Type:        continuity.Type(typeStr),
		Timeline:    timeline.Type(tl),
		CharacterID: characterID.String,
		StartDay:    startDay,
		EndDay:      endDay,
		StartScene:  startScene,
		EndScene:    endScene,
	}
	if err := json.Unmarshal([]byte(dailyJSON), &element.Daily); err != nil {
		return continuity.Element{}, fmt.Errorf("decode element %s tracking: %w", id, err)
	}
	if created, err := time.Parse(time.RFC3339Nano, createdRaw); err == nil {
		element.CreatedAt = created
	}
	if updated, err := time.Parse(time.RFC3339Nano, updatedRaw); err == nil {
		element.UpdatedAt = updated
	}
	return element, nil
}
