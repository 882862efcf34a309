package timeline

import (
	"fmt"
	"slices"
)

// CreateDay appends an empty, manually-created day with key N+1 and returns
// the new store.
func CreateDay(s Store) Store {
	next := s.Clone()
	next.Days = append(next.Days, Day{
		Key:             len(next.Days) + 1,
		ManuallyCreated: true,
	})
	return next
}

// RemoveDay deletes a day without dropping its scenes: they merge into the
// previous day when one exists, otherwise into the next, and when the removed
// day was the only one they simply become day 1 of a single-day timeline.
// Remaining days are renumbered 1..N-1 and every scene back-reference on the
// timeline is rewritten.
func RemoveDay(s Store, scenes []Scene, key int) (Store, []Scene, error) {
	idx := dayIndex(s, key)
	if idx < 0 {
		return Store{}, nil, fmt.Errorf("%w: day %d on %s timeline", ErrNotFound, key, s.Type)
	}

	next := s.Clone()
	removed := next.Days[idx]

	switch {
	case len(next.Days) == 1:
		// Sole day: contents stay put as day 1.
	case idx > 0:
		prev := &next.Days[idx-1]
		prev.Scenes = append(prev.Scenes, removed.Scenes...)
		next.Days = slices.Delete(next.Days, idx, idx+1)
	default:
		after := &next.Days[idx+1]
		after.Scenes = append(append([]string(nil), removed.Scenes...), after.Scenes...)
		next.Days = slices.Delete(next.Days, idx, idx+1)
	}

	renumber(next.Days)
	return next, rewriteAssignments(next, scenes), nil
}

// MoveScene removes a scene from one day and inserts it into another,
// re-sorting the target list with the natural comparator and rewriting the
// scene's back-reference. A negative insertIndex appends. The only target key
// that may be created on the fly is N+1; day numbering is otherwise untouched.
func MoveScene(s Store, scenes []Scene, sceneNumber string, sourceKey, targetKey, insertIndex int) (Store, []Scene, error) {
	srcIdx := dayIndex(s, sourceKey)
	if srcIdx < 0 {
		return Store{}, nil, fmt.Errorf("%w: day %d on %s timeline", ErrNotFound, sourceKey, s.Type)
	}
	if !s.Days[srcIdx].Contains(sceneNumber) {
		return Store{}, nil, fmt.Errorf("%w: scene %s in day %d", ErrNotFound, sceneNumber, sourceKey)
	}

	next := s.Clone()
	tgtIdx := dayIndex(next, targetKey)
	if tgtIdx < 0 {
		if targetKey != len(next.Days)+1 {
			return Store{}, nil, fmt.Errorf("%w: day %d on %s timeline", ErrNotFound, targetKey, s.Type)
		}
		next.Days = append(next.Days, Day{Key: targetKey, ManuallyCreated: true})
		tgtIdx = len(next.Days) - 1
	}

	src := &next.Days[srcIdx]
	src.Scenes = removeString(src.Scenes, sceneNumber)
	src.DetectedFrom = removeString(src.DetectedFrom, sceneNumber)

	tgt := &next.Days[tgtIdx]
	if insertIndex < 0 || insertIndex > len(tgt.Scenes) {
		insertIndex = len(tgt.Scenes)
	}
	tgt.Scenes = slices.Insert(tgt.Scenes, insertIndex, sceneNumber)
	SortSceneNumbers(tgt.Scenes)

	return next, rewriteAssignments(next, scenes), nil
}

// ReorderDays moves the day at sourceIndex to targetIndex (positions, not
// keys), regenerates keys 1..N in the new order, and rewrites scene
// back-references. Days whose key changed are flagged as reordered.
func ReorderDays(s Store, scenes []Scene, sourceIndex, targetIndex int) (Store, []Scene, error) {
	if sourceIndex < 0 || sourceIndex >= len(s.Days) {
		return Store{}, nil, fmt.Errorf("%w: day position %d on %s timeline", ErrNotFound, sourceIndex, s.Type)
	}
	if targetIndex < 0 || targetIndex >= len(s.Days) {
		return Store{}, nil, fmt.Errorf("%w: day position %d on %s timeline", ErrNotFound, targetIndex, s.Type)
	}

	next := s.Clone()
	day := next.Days[sourceIndex]
	next.Days = slices.Delete(next.Days, sourceIndex, sourceIndex+1)
	next.Days = slices.Insert(next.Days, targetIndex, day)

	for i := range next.Days {
		if next.Days[i].Key != i+1 {
			next.Days[i].Reordered = true
		}
	}
	renumber(next.Days)
	return next, rewriteAssignments(next, scenes), nil
}

// ReorderSceneInDay moves a scene within one day's list. Back-references are
// unaffected.
func ReorderSceneInDay(s Store, key, sourceIndex, targetIndex int) (Store, error) {
	idx := dayIndex(s, key)
	if idx < 0 {
		return Store{}, fmt.Errorf("%w: day %d on %s timeline", ErrNotFound, key, s.Type)
	}
	count := len(s.Days[idx].Scenes)
	if sourceIndex < 0 || sourceIndex >= count {
		return Store{}, fmt.Errorf("%w: scene position %d in day %d", ErrValidation, sourceIndex, key)
	}
	if targetIndex < 0 || targetIndex >= count {
		return Store{}, fmt.Errorf("%w: scene position %d in day %d", ErrValidation, targetIndex, key)
	}

	next := s.Clone()
	list := next.Days[idx].Scenes
	num := list[sourceIndex]
	list = slices.Delete(list, sourceIndex, sourceIndex+1)
	list = slices.Insert(list, targetIndex, num)
	next.Days[idx].Scenes = list
	return next, nil
}

// ChangeSceneTimeline moves a scene between timelines. The destination day is
// chosen by scanning existing days for a scene-number range that contains the
// scene; when none matches, the scene lands on (or creates) day 1. Both
// back-references are rewritten. Moving a scene onto its own timeline is a
// no-op.
func ChangeSceneTimeline(d Document, scenes []Scene, sceneNumber string, from, to Type) (Document, []Scene, error) {
	if _, ok := typeSet[from]; !ok {
		return Document{}, nil, fmt.Errorf("%w: timeline %q", ErrNotFound, from)
	}
	if _, ok := typeSet[to]; !ok {
		return Document{}, nil, fmt.Errorf("%w: timeline %q", ErrNotFound, to)
	}
	if from == to {
		return d, scenes, nil
	}

	source := d.Store(from)
	sourceKey, ok := source.SceneDay(sceneNumber)
	if !ok {
		return Document{}, nil, fmt.Errorf("%w: scene %s on %s timeline", ErrNotFound, sceneNumber, from)
	}

	nextSource := source.Clone()
	srcIdx := dayIndex(nextSource, sourceKey)
	src := &nextSource.Days[srcIdx]
	src.Scenes = removeString(src.Scenes, sceneNumber)
	src.DetectedFrom = removeString(src.DetectedFrom, sceneNumber)

	nextDest := d.Store(to).Clone()
	destKey, matched := destinationDay(nextDest, sceneNumber)
	destIdx := dayIndex(nextDest, destKey)
	switch {
	case destIdx >= 0 && matched:
		dest := &nextDest.Days[destIdx]
		dest.Scenes = append(dest.Scenes, sceneNumber)
		SortSceneNumbers(dest.Scenes)
	case destIdx >= 0:
		dest := &nextDest.Days[destIdx]
		dest.Scenes = append(dest.Scenes, sceneNumber)
	default:
		nextDest.Days = append(nextDest.Days, Day{
			Key:             1,
			Scenes:          []string{sceneNumber},
			ManuallyCreated: true,
		})
	}

	next := d.WithStore(nextSource).WithStore(nextDest)

	updated := append([]Scene(nil), scenes...)
	for i := range updated {
		if updated[i].Number == sceneNumber {
			updated[i].Timeline = to
			updated[i].StoryDay = destKey
		}
	}
	return next, updated, nil
}

// destinationDay picks the day whose scene-number range covers the incoming
// scene. When no range matches it falls back to day 1 and reports matched as
// false so the caller appends instead of re-sorting.
func destinationDay(s Store, sceneNumber string) (int, bool) {
	for _, day := range s.Days {
		if len(day.Scenes) == 0 {
			continue
		}
		lo, hi := day.Scenes[0], day.Scenes[0]
		for _, num := range day.Scenes[1:] {
			if CompareSceneNumbers(num, lo) < 0 {
				lo = num
			}
			if CompareSceneNumbers(num, hi) > 0 {
				hi = num
			}
		}
		if CompareSceneNumbers(lo, sceneNumber) <= 0 && CompareSceneNumbers(sceneNumber, hi) <= 0 {
			return day.Key, true
		}
	}
	return 1, false
}

func dayIndex(s Store, key int) int {
	for i, day := range s.Days {
		if day.Key == key {
			return i
		}
	}
	return -1
}

func renumber(days []Day) {
	for i := range days {
		days[i].Key = i + 1
	}
}

func removeString(list []string, value string) []string {
	for i, v := range list {
		if v == value {
			return slices.Delete(list, i, i+1)
		}
	}
	return list
}

// rewriteAssignments returns scene copies with StoryDay updated to match the
// day whose list actually contains each scene on the store's timeline. Scenes
// on other timelines pass through untouched.
func rewriteAssignments(s Store, scenes []Scene) []Scene {
	updated := append([]Scene(nil), scenes...)
	for i := range updated {
		if updated[i].Timeline != s.Type {
			continue
		}
		if key, ok := s.SceneDay(updated[i].Number); ok {
			updated[i].StoryDay = key
		}
	}
	return updated
}
