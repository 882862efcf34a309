package session

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"slate/internal/timeline"
)

// importedScene is the exchange format for scene intake. The script itself is
// owned elsewhere; only number, heading, and time-of-day cross the boundary.
type importedScene struct {
	Number    string `json:"number"`
	Heading   string `json:"heading"`
	TimeOfDay string `json:"time_of_day"`
}

// ImportScenes reads a JSON scene list and replaces the project's scene table.
// Scene numbers must be unique and non-empty; time-of-day must be one of the
// slugline tokens or empty. Imported scenes start unassigned; run Analyze to
// build the main timeline.
func (s *Session) ImportScenes(ctx context.Context, r io.Reader) ([]timeline.Scene, error) {
	var imported []importedScene
	decoder := json.NewDecoder(r)
	if err := decoder.Decode(&imported); err != nil {
		return nil, fmt.Errorf("%w: decode scene list: %v", timeline.ErrValidation, err)
	}

	scenes := make([]timeline.Scene, 0, len(imported))
	seen := make(map[string]struct{}, len(imported))
	for i, in := range imported {
		number := strings.TrimSpace(in.Number)
		if number == "" {
			return nil, fmt.Errorf("%w: scene %d has no number", timeline.ErrValidation, i+1)
		}
		if _, ok := seen[number]; ok {
			return nil, fmt.Errorf("%w: duplicate scene number %s", timeline.ErrValidation, number)
		}
		seen[number] = struct{}{}

		tod, ok := timeline.ParseTimeOfDay(in.TimeOfDay)
		if !ok {
			return nil, fmt.Errorf("%w: scene %s has unknown time of day %q", timeline.ErrValidation, number, in.TimeOfDay)
		}

		scenes = append(scenes, timeline.Scene{
			Number:    number,
			Heading:   strings.TrimSpace(in.Heading),
			TimeOfDay: tod,
		})
	}

	if err := s.store.ReplaceScenes(ctx, scenes); err != nil {
		return nil, fmt.Errorf("store scenes: %w", err)
	}
	s.logger.Info("imported scenes", "count", len(scenes))
	return scenes, nil
}
