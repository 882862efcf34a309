package session

import (
	"context"

	"slate/internal/timeline"
)

// TimelineSummary aggregates one timeline's counts.
type TimelineSummary struct {
	Type     timeline.Type `json:"type"`
	Days     int           `json:"days"`
	Scenes   int           `json:"scenes"`
	Elements int           `json:"elements"`
}

// Summary is the project-wide status view backing the status command.
type Summary struct {
	Project          string            `json:"project"`
	TotalScenes      int               `json:"total_scenes"`
	UnassignedScenes int               `json:"unassigned_scenes"`
	Timelines        []TimelineSummary `json:"timelines"`
}

// Summary aggregates day, scene, and element counts across all timelines.
func (s *Session) Summary(ctx context.Context) (Summary, error) {
	scenes, err := s.store.Scenes(ctx)
	if err != nil {
		return Summary{}, err
	}
	doc, err := s.store.Document(ctx)
	if err != nil {
		return Summary{}, err
	}
	elements, err := s.store.Elements(ctx)
	if err != nil {
		return Summary{}, err
	}

	summary := Summary{
		Project:     s.cfg.Project.Name,
		TotalScenes: len(scenes),
	}
	for _, scene := range scenes {
		if !scene.Assigned() {
			summary.UnassignedScenes++
		}
	}

	elementCounts := make(map[timeline.Type]int)
	for _, e := range elements {
		elementCounts[e.Timeline]++
	}

	for _, t := range timeline.AllTypes() {
		store := doc.Store(t)
		summary.Timelines = append(summary.Timelines, TimelineSummary{
			Type:     t,
			Days:     store.DayCount(),
			Scenes:   store.TotalScenes(),
			Elements: elementCounts[t],
		})
	}
	return summary, nil
}
