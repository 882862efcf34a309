package timeline_test

import (
	"errors"
	"slices"
	"testing"

	"slate/internal/timeline"
)

// buildStore assembles a store plus matching scene list from day scene-number
// lists, mirroring what detection would have produced.
func buildStore(t *testing.T, typ timeline.Type, days ...[]string) (timeline.Store, []timeline.Scene) {
	t.Helper()
	store := timeline.Store{Type: typ}
	var scenes []timeline.Scene
	for i, list := range days {
		store.Days = append(store.Days, timeline.Day{Key: i + 1, Scenes: append([]string(nil), list...)})
		for _, num := range list {
			scenes = append(scenes, timeline.Scene{
				Number:   num,
				StoryDay: i + 1,
				Timeline: typ,
			})
		}
	}
	return store, scenes
}

func checkInvariants(t *testing.T, store timeline.Store, scenes []timeline.Scene) {
	t.Helper()
	for i, day := range store.Days {
		if day.Key != i+1 {
			t.Fatalf("day keys not contiguous: position %d has key %d", i, day.Key)
		}
	}
	seen := make(map[string]int)
	for _, day := range store.Days {
		for _, num := range day.Scenes {
			if prev, dup := seen[num]; dup {
				t.Fatalf("scene %s appears in days %d and %d", num, prev, day.Key)
			}
			seen[num] = day.Key
		}
	}
	for _, s := range scenes {
		if s.Timeline != store.Type {
			continue
		}
		if key, ok := seen[s.Number]; ok && s.StoryDay != key {
			t.Fatalf("scene %s back-reference %d does not match containing day %d", s.Number, s.StoryDay, key)
		}
	}
}

func TestCreateDayAppendsManualDay(t *testing.T) {
	store, scenes := buildStore(t, timeline.Main, []string{"1", "2"})
	next := timeline.CreateDay(store)

	if next.DayCount() != 2 {
		t.Fatalf("day count = %d, want 2", next.DayCount())
	}
	day, ok := next.Day(2)
	if !ok || !day.ManuallyCreated || len(day.Scenes) != 0 {
		t.Fatalf("unexpected appended day: %#v", day)
	}
	if store.DayCount() != 1 {
		t.Fatal("input store was mutated")
	}
	checkInvariants(t, next, scenes)
}

func TestRemoveDayMergesIntoPrevious(t *testing.T) {
	store, scenes := buildStore(t, timeline.Main,
		[]string{"1", "2"},
		[]string{"10", "11"},
		[]string{"20"},
	)

	next, updated, err := timeline.RemoveDay(store, scenes, 2)
	if err != nil {
		t.Fatalf("RemoveDay failed: %v", err)
	}
	if next.DayCount() != 2 {
		t.Fatalf("day count = %d, want 2", next.DayCount())
	}
	if got := next.ScenesForDay(1); !slices.Equal(got, []string{"1", "2", "10", "11"}) {
		t.Fatalf("day 1 scenes = %v", got)
	}
	if next.TotalScenes() != store.TotalScenes() {
		t.Fatalf("scene count changed: %d -> %d", store.TotalScenes(), next.TotalScenes())
	}
	for _, s := range updated {
		switch s.Number {
		case "10", "11":
			if s.StoryDay != 1 {
				t.Errorf("scene %s story day = %d, want 1", s.Number, s.StoryDay)
			}
		case "20":
			if s.StoryDay != 2 {
				t.Errorf("scene 20 story day = %d, want 2 after renumbering", s.StoryDay)
			}
		}
	}
	checkInvariants(t, next, updated)
}

func TestRemoveDayFirstMergesIntoNext(t *testing.T) {
	store, scenes := buildStore(t, timeline.Main,
		[]string{"1"},
		[]string{"5", "6"},
	)

	next, updated, err := timeline.RemoveDay(store, scenes, 1)
	if err != nil {
		t.Fatalf("RemoveDay failed: %v", err)
	}
	if got := next.ScenesForDay(1); !slices.Equal(got, []string{"1", "5", "6"}) {
		t.Fatalf("day 1 scenes = %v", got)
	}
	checkInvariants(t, next, updated)
}

func TestRemoveOnlyDayKeepsScenes(t *testing.T) {
	store, scenes := buildStore(t, timeline.Main, []string{"1", "2"})

	next, updated, err := timeline.RemoveDay(store, scenes, 1)
	if err != nil {
		t.Fatalf("RemoveDay failed: %v", err)
	}
	if next.DayCount() != 1 {
		t.Fatalf("day count = %d, want 1", next.DayCount())
	}
	if got := next.ScenesForDay(1); !slices.Equal(got, []string{"1", "2"}) {
		t.Fatalf("day 1 scenes = %v", got)
	}
	checkInvariants(t, next, updated)
}

func TestRemoveDayUnknownKey(t *testing.T) {
	store, scenes := buildStore(t, timeline.Main, []string{"1"})
	if _, _, err := timeline.RemoveDay(store, scenes, 9); !errors.Is(err, timeline.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMoveSceneRoundTripRestoresMembership(t *testing.T) {
	store, scenes := buildStore(t, timeline.Main,
		[]string{"1", "2"},
		[]string{"10"},
	)

	moved, movedScenes, err := timeline.MoveScene(store, scenes, "2", 1, 2, -1)
	if err != nil {
		t.Fatalf("MoveScene failed: %v", err)
	}
	if key, _ := moved.SceneDay("2"); key != 2 {
		t.Fatalf("scene 2 on day %d, want 2", key)
	}
	checkInvariants(t, moved, movedScenes)

	back, backScenes, err := timeline.MoveScene(moved, movedScenes, "2", 2, 1, -1)
	if err != nil {
		t.Fatalf("MoveScene back failed: %v", err)
	}
	if key, _ := back.SceneDay("2"); key != 1 {
		t.Fatalf("scene 2 on day %d after round trip, want 1", key)
	}
	checkInvariants(t, back, backScenes)
}

func TestMoveSceneResortsTargetNaturally(t *testing.T) {
	store, scenes := buildStore(t, timeline.Main,
		[]string{"17A"},
		[]string{"18", "17B", "17"},
	)

	next, _, err := timeline.MoveScene(store, scenes, "17A", 1, 2, 0)
	if err != nil {
		t.Fatalf("MoveScene failed: %v", err)
	}
	if got := next.ScenesForDay(2); !slices.Equal(got, []string{"17", "17A", "17B", "18"}) {
		t.Fatalf("day 2 scenes = %v, want natural order", got)
	}
}

func TestMoveSceneCreatesNextDayOnly(t *testing.T) {
	store, scenes := buildStore(t, timeline.Main, []string{"1", "2"})

	next, updated, err := timeline.MoveScene(store, scenes, "2", 1, 2, -1)
	if err != nil {
		t.Fatalf("MoveScene failed: %v", err)
	}
	day, ok := next.Day(2)
	if !ok || !day.ManuallyCreated {
		t.Fatalf("expected implicit day 2 to be created, got %#v", day)
	}
	checkInvariants(t, next, updated)

	if _, _, err := timeline.MoveScene(store, scenes, "2", 1, 5, -1); !errors.Is(err, timeline.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for non-contiguous target, got %v", err)
	}
}

func TestMoveSceneUnknownScene(t *testing.T) {
	store, scenes := buildStore(t, timeline.Main, []string{"1"}, []string{"2"})
	if _, _, err := timeline.MoveScene(store, scenes, "99", 1, 2, -1); !errors.Is(err, timeline.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMoveSceneClearsDetectionProvenance(t *testing.T) {
	store, scenes := buildStore(t, timeline.Main, []string{"1", "2"}, []string{"10"})
	store.Days[0].DetectedFrom = []string{"1", "2"}

	next, _, err := timeline.MoveScene(store, scenes, "2", 1, 2, -1)
	if err != nil {
		t.Fatalf("MoveScene failed: %v", err)
	}
	day, _ := next.Day(1)
	if !slices.Equal(day.DetectedFrom, []string{"1"}) {
		t.Fatalf("day 1 detectedFrom = %v, want moved scene removed", day.DetectedFrom)
	}
}

func TestReorderDaysRenumbersAndFlags(t *testing.T) {
	store, scenes := buildStore(t, timeline.Main,
		[]string{"1"},
		[]string{"2"},
		[]string{"3"},
	)

	next, updated, err := timeline.ReorderDays(store, scenes, 0, 2)
	if err != nil {
		t.Fatalf("ReorderDays failed: %v", err)
	}
	if got := next.ScenesForDay(3); !slices.Equal(got, []string{"1"}) {
		t.Fatalf("day 3 scenes = %v, want former day 1", got)
	}
	if !slices.Equal(next.DayKeys(), []int{1, 2, 3}) {
		t.Fatalf("day keys = %v", next.DayKeys())
	}
	for _, day := range next.Days {
		if !day.Reordered {
			t.Fatalf("day %d not flagged as reordered", day.Key)
		}
	}
	checkInvariants(t, next, updated)
}

func TestReorderDaysOutOfRange(t *testing.T) {
	store, scenes := buildStore(t, timeline.Main, []string{"1"})
	if _, _, err := timeline.ReorderDays(store, scenes, 0, 4); !errors.Is(err, timeline.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestReorderSceneInDay(t *testing.T) {
	store, scenes := buildStore(t, timeline.Main, []string{"1", "2", "3"})

	next, err := timeline.ReorderSceneInDay(store, 1, 0, 2)
	if err != nil {
		t.Fatalf("ReorderSceneInDay failed: %v", err)
	}
	if got := next.ScenesForDay(1); !slices.Equal(got, []string{"2", "3", "1"}) {
		t.Fatalf("day 1 scenes = %v", got)
	}
	// Back-references are untouched by intra-day reordering.
	checkInvariants(t, next, scenes)

	if _, err := timeline.ReorderSceneInDay(store, 1, 0, 7); !errors.Is(err, timeline.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if _, err := timeline.ReorderSceneInDay(store, 4, 0, 1); !errors.Is(err, timeline.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestChangeSceneTimelineMatchesRange(t *testing.T) {
	mainStore, mainScenes := buildStore(t, timeline.Main, []string{"5"})
	flashStore, flashScenes := buildStore(t, timeline.Flashback, []string{"3", "7"})

	doc := timeline.NewDocument().WithStore(mainStore).WithStore(flashStore)
	scenes := append(mainScenes, flashScenes...)

	next, updated, err := timeline.ChangeSceneTimeline(doc, scenes, "5", timeline.Main, timeline.Flashback)
	if err != nil {
		t.Fatalf("ChangeSceneTimeline failed: %v", err)
	}

	flash := next.Store(timeline.Flashback)
	if got := flash.ScenesForDay(1); !slices.Equal(got, []string{"3", "5", "7"}) {
		t.Fatalf("flashback day 1 scenes = %v", got)
	}
	if key, ok := next.Store(timeline.Main).SceneDay("5"); ok {
		t.Fatalf("scene 5 still on main timeline day %d", key)
	}
	for _, s := range updated {
		if s.Number == "5" {
			if s.Timeline != timeline.Flashback || s.StoryDay != 1 {
				t.Fatalf("scene 5 back-references = %s/%d", s.Timeline, s.StoryDay)
			}
		}
	}
}

func TestChangeSceneTimelineFallsBackToDayOne(t *testing.T) {
	mainStore, mainScenes := buildStore(t, timeline.Main, []string{"40"})

	doc := timeline.NewDocument().WithStore(mainStore)

	next, updated, err := timeline.ChangeSceneTimeline(doc, mainScenes, "40", timeline.Main, timeline.Dream)
	if err != nil {
		t.Fatalf("ChangeSceneTimeline failed: %v", err)
	}
	dream := next.Store(timeline.Dream)
	if dream.DayCount() != 1 {
		t.Fatalf("dream day count = %d, want 1", dream.DayCount())
	}
	if got := dream.ScenesForDay(1); !slices.Equal(got, []string{"40"}) {
		t.Fatalf("dream day 1 scenes = %v", got)
	}
	for _, s := range updated {
		if s.Number == "40" && (s.Timeline != timeline.Dream || s.StoryDay != 1) {
			t.Fatalf("scene 40 back-references = %s/%d", s.Timeline, s.StoryDay)
		}
	}
}

func TestChangeSceneTimelineNoOp(t *testing.T) {
	mainStore, mainScenes := buildStore(t, timeline.Main, []string{"1"})
	doc := timeline.NewDocument().WithStore(mainStore)

	next, updated, err := timeline.ChangeSceneTimeline(doc, mainScenes, "1", timeline.Main, timeline.Main)
	if err != nil {
		t.Fatalf("ChangeSceneTimeline failed: %v", err)
	}
	if key, _ := next.Store(timeline.Main).SceneDay("1"); key != 1 {
		t.Fatalf("scene 1 moved during no-op")
	}
	if updated[0].Timeline != timeline.Main {
		t.Fatalf("scene list changed during no-op")
	}
}

func TestChangeSceneTimelineUnknownScene(t *testing.T) {
	doc := timeline.NewDocument()
	if _, _, err := timeline.ChangeSceneTimeline(doc, nil, "1", timeline.Main, timeline.Dream); !errors.Is(err, timeline.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMutationSequenceKeepsKeysContiguous(t *testing.T) {
	store, scenes := buildStore(t, timeline.Main,
		[]string{"1", "2"},
		[]string{"3"},
		[]string{"4", "5"},
	)

	store = timeline.CreateDay(store)
	var err error
	store, scenes, err = timeline.ReorderDays(store, scenes, 3, 0)
	if err != nil {
		t.Fatalf("ReorderDays failed: %v", err)
	}
	store, scenes, err = timeline.RemoveDay(store, scenes, 3)
	if err != nil {
		t.Fatalf("RemoveDay failed: %v", err)
	}
	store = timeline.CreateDay(store)

	want := make([]int, store.DayCount())
	for i := range want {
		want[i] = i + 1
	}
	if !slices.Equal(store.DayKeys(), want) {
		t.Fatalf("day keys = %v, want %v", store.DayKeys(), want)
	}
	checkInvariants(t, store, scenes)
}
