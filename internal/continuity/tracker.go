package continuity

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"slate/internal/timeline"
)

// Create validates a form, resolves its day range from the chosen scenes'
// current story-day assignments, and returns the element list with the new
// element appended. The input list is never modified.
func Create(elements []Element, form Form, scenes []timeline.Scene) ([]Element, Element, error) {
	resolved, err := resolveForm(form, scenes)
	if err != nil {
		return nil, Element{}, err
	}

	now := time.Now().UTC()
	resolved.ID = uuid.NewString()
	resolved.CreatedAt = now
	resolved.UpdatedAt = now

	next := append(append([]Element(nil), elements...), resolved)
	return next, resolved, nil
}

// Edit replaces the element with the given id after re-running the same
// validation and day resolution as Create. Per-day notes survive for day keys
// present in both the old and new range; new days default empty and dropped
// days are discarded.
func Edit(elements []Element, id string, form Form, scenes []timeline.Scene) ([]Element, Element, error) {
	idx := -1
	for i, e := range elements {
		if e.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, Element{}, fmt.Errorf("%w: element %s", timeline.ErrNotFound, id)
	}

	resolved, err := resolveForm(form, scenes)
	if err != nil {
		return nil, Element{}, err
	}

	previous := elements[idx]
	resolved.ID = previous.ID
	resolved.CreatedAt = previous.CreatedAt
	resolved.UpdatedAt = time.Now().UTC()
	for key, rec := range previous.Daily {
		if _, ok := resolved.Daily[key]; ok {
			if _, overridden := form.Daily[key]; !overridden {
				resolved.Daily[key] = rec
			}
		}
	}

	next := append([]Element(nil), elements...)
	next[idx] = resolved
	return next, resolved, nil
}

// Delete removes the element with the given id. Unknown ids are a no-op, not
// an error.
func Delete(elements []Element, id string) []Element {
	next := make([]Element, 0, len(elements))
	for _, e := range elements {
		if e.ID != id {
			next = append(next, e)
		}
	}
	return next
}

// VisibleElement pairs an element with the day range it should occupy in the
// current layout. Stale marks elements whose stored range no longer lines up
// with the days that exist.
type VisibleElement struct {
	Element         Element
	DisplayStartDay int
	DisplayEndDay   int
	Stale           bool
}

// Visible clamps each element on the given timeline to the intersection of
// its stored range with the current day-key range. Elements with an empty
// intersection are omitted. Stored ranges are never rewritten here; clamping
// is the only defense against drift after day renumbering.
func Visible(elements []Element, t timeline.Type, currentDayKeys []int) []VisibleElement {
	if len(currentDayKeys) == 0 {
		return nil
	}
	lo, hi := currentDayKeys[0], currentDayKeys[0]
	for _, key := range currentDayKeys[1:] {
		if key < lo {
			lo = key
		}
		if key > hi {
			hi = key
		}
	}

	var visible []VisibleElement
	for _, e := range elements {
		if e.Timeline != t {
			continue
		}
		start, end := e.StartDay, e.EndDay
		if start < lo {
			start = lo
		}
		if end > hi {
			end = hi
		}
		if start > end {
			continue
		}
		visible = append(visible, VisibleElement{
			Element:         e,
			DisplayStartDay: start,
			DisplayEndDay:   end,
			Stale:           start != e.StartDay || end != e.EndDay,
		})
	}
	return visible
}

// ElementsForDay returns the ids of elements on the given timeline whose
// stored range covers the day key, in list order.
func ElementsForDay(elements []Element, t timeline.Type, dayKey int) []string {
	var ids []string
	for _, e := range elements {
		if e.Timeline == t && e.StartDay <= dayKey && dayKey <= e.EndDay {
			ids = append(ids, e.ID)
		}
	}
	return ids
}

func resolveForm(form Form, scenes []timeline.Scene) (Element, error) {
	name := strings.TrimSpace(form.Name)
	if name == "" {
		return Element{}, fmt.Errorf("%w: element name is required", timeline.ErrValidation)
	}
	startScene := strings.TrimSpace(form.StartScene)
	endScene := strings.TrimSpace(form.EndScene)
	if startScene == "" || endScene == "" {
		return Element{}, fmt.Errorf("%w: start and end scenes are required", timeline.ErrValidation)
	}

	typ := form.Type
	if typ == "" {
		typ = Custom
	}
	if _, ok := typeSet[typ]; !ok {
		return Element{}, fmt.Errorf("%w: unknown element type %q", timeline.ErrValidation, typ)
	}
	tl := form.Timeline
	if tl == "" {
		tl = timeline.Main
	}
	if _, ok := timeline.ParseType(string(tl)); !ok {
		return Element{}, fmt.Errorf("%w: unknown timeline %q", timeline.ErrValidation, tl)
	}

	startDay, err := sceneDay(scenes, startScene)
	if err != nil {
		return Element{}, err
	}
	endDay, err := sceneDay(scenes, endScene)
	if err != nil {
		return Element{}, err
	}
	if startDay > endDay {
		return Element{}, fmt.Errorf("%w: start day %d is after end day %d", timeline.ErrInvalidRange, startDay, endDay)
	}

	daily := make(map[int]DayRecord, endDay-startDay+1)
	for key := startDay; key <= endDay; key++ {
		daily[key] = DayRecord{}
	}
	for key, rec := range form.Daily {
		if _, ok := daily[key]; ok {
			daily[key] = rec
		}
	}

	return Element{
		Name:        name,
		Type:        typ,
		Timeline:    tl,
		CharacterID: strings.TrimSpace(form.CharacterID),
		StartDay:    startDay,
		EndDay:      endDay,
		StartScene:  startScene,
		EndScene:    endScene,
		Daily:       daily,
	}, nil
}

func sceneDay(scenes []timeline.Scene, number string) (int, error) {
	for _, s := range scenes {
		if s.Number == number {
			if !s.Assigned() {
				return 0, fmt.Errorf("%w: scene %s (run analyze first)", timeline.ErrMissingDayAssignment, number)
			}
			return s.StoryDay, nil
		}
	}
	return 0, fmt.Errorf("%w: scene %s", timeline.ErrNotFound, number)
}
