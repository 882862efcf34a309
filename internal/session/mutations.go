package session

import (
	"context"
	"fmt"

	"slate/internal/continuity"
	"slate/internal/timeline"
)

// Analyze runs story-day detection over the imported scenes and replaces the
// main-timeline partition. Other timelines are untouched, as are scenes
// already reassigned to them. Re-running on an unchanged scene list yields the
// same partition.
func (s *Session) Analyze(ctx context.Context) ([]timeline.Scene, timeline.Store, error) {
	scenes, err := s.store.Scenes(ctx)
	if err != nil {
		return nil, timeline.Store{}, err
	}
	elements, err := s.store.Elements(ctx)
	if err != nil {
		return nil, timeline.Store{}, err
	}

	updated, store := timeline.Detect(scenes)

	s.saveScenes(ctx, updated)
	s.saveTimeline(ctx, store, elements)
	s.logger.Info("analyzed scenes",
		"scenes", len(updated),
		"days", store.DayCount())
	return updated, store, nil
}

// CreateDay appends an empty day to the timeline.
func (s *Session) CreateDay(ctx context.Context, t timeline.Type) (timeline.Store, error) {
	store, elements, err := s.loadTimeline(ctx, t)
	if err != nil {
		return timeline.Store{}, err
	}

	next := timeline.CreateDay(store)

	s.saveTimeline(ctx, next, elements)
	s.logger.Info("created day", "timeline", string(t), "day", next.DayCount())
	return next, nil
}

// RemoveDay deletes a day, merging its scenes into a neighbor.
func (s *Session) RemoveDay(ctx context.Context, t timeline.Type, key int) (timeline.Store, error) {
	scenes, store, elements, err := s.loadSnapshot(ctx, t)
	if err != nil {
		return timeline.Store{}, err
	}

	next, updated, err := timeline.RemoveDay(store, scenes, key)
	if err != nil {
		return timeline.Store{}, err
	}

	s.saveScenes(ctx, updated)
	s.saveTimeline(ctx, next, elements)
	s.logger.Info("removed day", "timeline", string(t), "day", key)
	return next, nil
}

// MoveScene moves a scene between days on one timeline.
func (s *Session) MoveScene(ctx context.Context, t timeline.Type, sceneNumber string, sourceKey, targetKey, insertIndex int) (timeline.Store, error) {
	scenes, store, elements, err := s.loadSnapshot(ctx, t)
	if err != nil {
		return timeline.Store{}, err
	}

	next, updated, err := timeline.MoveScene(store, scenes, sceneNumber, sourceKey, targetKey, insertIndex)
	if err != nil {
		return timeline.Store{}, err
	}

	s.saveScenes(ctx, updated)
	s.saveTimeline(ctx, next, elements)
	s.logger.Info("moved scene",
		"timeline", string(t),
		"scene", sceneNumber,
		"from", sourceKey,
		"to", targetKey)
	return next, nil
}

// ReorderDays moves the day at one position to another and renumbers.
func (s *Session) ReorderDays(ctx context.Context, t timeline.Type, sourceIndex, targetIndex int) (timeline.Store, error) {
	scenes, store, elements, err := s.loadSnapshot(ctx, t)
	if err != nil {
		return timeline.Store{}, err
	}

	next, updated, err := timeline.ReorderDays(store, scenes, sourceIndex, targetIndex)
	if err != nil {
		return timeline.Store{}, err
	}

	s.saveScenes(ctx, updated)
	s.saveTimeline(ctx, next, elements)
	s.logger.Info("reordered days", "timeline", string(t), "from", sourceIndex, "to", targetIndex)
	return next, nil
}

// ReorderSceneInDay moves a scene within a single day's list.
func (s *Session) ReorderSceneInDay(ctx context.Context, t timeline.Type, key, sourceIndex, targetIndex int) (timeline.Store, error) {
	store, elements, err := s.loadTimeline(ctx, t)
	if err != nil {
		return timeline.Store{}, err
	}

	next, err := timeline.ReorderSceneInDay(store, key, sourceIndex, targetIndex)
	if err != nil {
		return timeline.Store{}, err
	}

	s.saveTimeline(ctx, next, elements)
	s.logger.Info("reordered scene in day", "timeline", string(t), "day", key)
	return next, nil
}

// ChangeSceneTimeline reassigns a scene from one timeline to another.
func (s *Session) ChangeSceneTimeline(ctx context.Context, sceneNumber string, from, to timeline.Type) (timeline.Document, error) {
	scenes, err := s.store.Scenes(ctx)
	if err != nil {
		return timeline.Document{}, err
	}
	doc, err := s.store.Document(ctx)
	if err != nil {
		return timeline.Document{}, err
	}
	elements, err := s.store.Elements(ctx)
	if err != nil {
		return timeline.Document{}, err
	}

	next, updated, err := timeline.ChangeSceneTimeline(doc, scenes, sceneNumber, from, to)
	if err != nil {
		return timeline.Document{}, err
	}
	if from == to {
		return next, nil
	}

	s.saveScenes(ctx, updated)
	s.saveTimeline(ctx, next.Store(from), elements)
	s.saveTimeline(ctx, next.Store(to), elements)
	s.logger.Info("changed scene timeline",
		"scene", sceneNumber,
		"from", string(from),
		"to", string(to))
	return next, nil
}

// AddElement creates a continuity element from a form.
func (s *Session) AddElement(ctx context.Context, form continuity.Form) (continuity.Element, error) {
	scenes, err := s.store.Scenes(ctx)
	if err != nil {
		return continuity.Element{}, err
	}
	elements, err := s.store.Elements(ctx)
	if err != nil {
		return continuity.Element{}, err
	}

	next, created, err := continuity.Create(elements, form, scenes)
	if err != nil {
		return continuity.Element{}, err
	}

	s.saveElements(ctx, next)
	s.logger.Info("added element",
		"element", created.ID,
		"name", created.Name,
		"days", fmt.Sprintf("%d-%d", created.StartDay, created.EndDay))
	return created, nil
}

// EditElement replaces an existing element with a re-resolved form, keeping
// per-day notes for days present in both ranges.
func (s *Session) EditElement(ctx context.Context, id string, form continuity.Form) (continuity.Element, error) {
	scenes, err := s.store.Scenes(ctx)
	if err != nil {
		return continuity.Element{}, err
	}
	elements, err := s.store.Elements(ctx)
	if err != nil {
		return continuity.Element{}, err
	}

	next, edited, err := continuity.Edit(elements, id, form, scenes)
	if err != nil {
		return continuity.Element{}, err
	}

	s.saveElements(ctx, next)
	s.logger.Info("edited element", "element", id)
	return edited, nil
}

// DeleteElement removes an element. Unknown ids are a no-op.
func (s *Session) DeleteElement(ctx context.Context, id string) error {
	elements, err := s.store.Elements(ctx)
	if err != nil {
		return err
	}

	next := continuity.Delete(elements, id)
	if len(next) == len(elements) {
		return nil
	}

	s.saveElements(ctx, next)
	s.logger.Info("deleted element", "element", id)
	return nil
}

func (s *Session) loadTimeline(ctx context.Context, t timeline.Type) (timeline.Store, []continuity.Element, error) {
	store, err := s.store.Timeline(ctx, t)
	if err != nil {
		return timeline.Store{}, nil, err
	}
	elements, err := s.store.Elements(ctx)
	if err != nil {
		return timeline.Store{}, nil, err
	}
	return store, elements, nil
}

func (s *Session) loadSnapshot(ctx context.Context, t timeline.Type) ([]timeline.Scene, timeline.Store, []continuity.Element, error) {
	scenes, err := s.store.Scenes(ctx)
	if err != nil {
		return nil, timeline.Store{}, nil, err
	}
	store, elements, err := s.loadTimeline(ctx, t)
	if err != nil {
		return nil, timeline.Store{}, nil, err
	}
	return scenes, store, elements, nil
}
