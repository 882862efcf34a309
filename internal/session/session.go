package session

import (
	"context"
	"log/slog"

	"slate/internal/config"
	"slate/internal/continuity"
	"slate/internal/logging"
	"slate/internal/project"
	"slate/internal/timeline"
)

// Session executes timeline and continuity commands against a project store.
type Session struct {
	cfg    *config.Config
	store  *project.Store
	logger *slog.Logger
}

// New creates a session. A nil logger falls back to a no-op logger.
func New(cfg *config.Config, store *project.Store, logger *slog.Logger) *Session {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Session{cfg: cfg, store: store, logger: logger}
}

// Scenes returns the imported scene list in script order.
func (s *Session) Scenes(ctx context.Context) ([]timeline.Scene, error) {
	return s.store.Scenes(ctx)
}

// Timeline returns the current store for one timeline type.
func (s *Session) Timeline(ctx context.Context, t timeline.Type) (timeline.Store, error) {
	return s.store.Timeline(ctx, t)
}

// Document returns the stores for all timeline types.
func (s *Session) Document(ctx context.Context) (timeline.Document, error) {
	return s.store.Document(ctx)
}

// Elements returns all continuity elements.
func (s *Session) Elements(ctx context.Context) ([]continuity.Element, error) {
	return s.store.Elements(ctx)
}

// VisibleElements returns the elements on a timeline clamped to the day keys
// that currently exist.
func (s *Session) VisibleElements(ctx context.Context, t timeline.Type) ([]continuity.VisibleElement, error) {
	elements, err := s.store.Elements(ctx)
	if err != nil {
		return nil, err
	}
	store, err := s.store.Timeline(ctx, t)
	if err != nil {
		return nil, err
	}
	return continuity.Visible(elements, t, store.DayKeys()), nil
}

// saveScenes persists the scene list. Failures are logged, never returned.
func (s *Session) saveScenes(ctx context.Context, scenes []timeline.Scene) {
	if err := s.store.ReplaceScenes(ctx, scenes); err != nil {
		s.logger.Error("failed to persist scenes", "error", err)
	}
}

// saveTimeline persists one timeline store along with the per-day element ids
// derived from the current element list.
func (s *Session) saveTimeline(ctx context.Context, store timeline.Store, elements []continuity.Element) {
	elementsByDay := make(map[int][]string, len(store.Days))
	for _, day := range store.Days {
		if ids := continuity.ElementsForDay(elements, store.Type, day.Key); len(ids) > 0 {
			elementsByDay[day.Key] = ids
		}
	}
	if err := s.store.ReplaceTimeline(ctx, store, elementsByDay); err != nil {
		s.logger.Error("failed to persist timeline", "timeline", string(store.Type), "error", err)
	}
}

// saveElements persists the continuity element list.
func (s *Session) saveElements(ctx context.Context, elements []continuity.Element) {
	if err := s.store.ReplaceElements(ctx, elements); err != nil {
		s.logger.Error("failed to persist elements", "error", err)
	}
}
