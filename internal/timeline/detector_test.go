package timeline_test

import (
	"slices"
	"testing"

	"slate/internal/timeline"
)

func scriptScenes(tods ...timeline.TimeOfDay) []timeline.Scene {
	scenes := make([]timeline.Scene, len(tods))
	for i, tod := range tods {
		scenes[i] = timeline.Scene{
			Number:    sceneNumber(i),
			TimeOfDay: tod,
		}
	}
	return scenes
}

func sceneNumber(i int) string {
	return string(rune('1' + i))
}

func TestDetectLookaheadScenario(t *testing.T) {
	scenes := scriptScenes(timeline.DayTime, timeline.Unknown, timeline.Night, timeline.DayTime)
	annotated, store := timeline.Detect(scenes)

	wantDays := []int{1, 1, 1, 2}
	wantConf := []timeline.Confidence{
		timeline.ConfidenceHigh,
		timeline.ConfidenceMedium,
		timeline.ConfidenceHigh,
		timeline.ConfidenceHigh,
	}
	for i, s := range annotated {
		if s.StoryDay != wantDays[i] {
			t.Errorf("scene %s: story day = %d, want %d", s.Number, s.StoryDay, wantDays[i])
		}
		if s.Confidence != wantConf[i] {
			t.Errorf("scene %s: confidence = %s, want %s", s.Number, s.Confidence, wantConf[i])
		}
		if s.Timeline != timeline.Main {
			t.Errorf("scene %s: timeline = %s, want main", s.Number, s.Timeline)
		}
	}

	if store.DayCount() != 2 {
		t.Fatalf("day count = %d, want 2", store.DayCount())
	}
	if got := store.ScenesForDay(1); !slices.Equal(got, []string{"1", "2", "3"}) {
		t.Fatalf("day 1 scenes = %v", got)
	}
	if got := store.ScenesForDay(2); !slices.Equal(got, []string{"4"}) {
		t.Fatalf("day 2 scenes = %v", got)
	}

	day1, _ := store.Day(1)
	if !slices.Equal(day1.DetectedFrom, []string{"1", "3"}) {
		t.Fatalf("day 1 detectedFrom = %v, want high-confidence scenes only", day1.DetectedFrom)
	}
}

func TestDetectDawnDuskClassification(t *testing.T) {
	scenes := scriptScenes(timeline.Dawn, timeline.Dusk, timeline.Dawn)
	annotated, store := timeline.Detect(scenes)

	// Dusk is nighttime; the following dawn starts a new day.
	wantDays := []int{1, 1, 2}
	for i, s := range annotated {
		if s.StoryDay != wantDays[i] {
			t.Errorf("scene %s: story day = %d, want %d", s.Number, s.StoryDay, wantDays[i])
		}
	}
	if store.DayCount() != 2 {
		t.Fatalf("day count = %d, want 2", store.DayCount())
	}
}

func TestDetectTrailingUnknownsStayLowConfidence(t *testing.T) {
	scenes := scriptScenes(timeline.Night, timeline.Unknown, timeline.Unknown)
	annotated, store := timeline.Detect(scenes)

	for _, s := range annotated[1:] {
		if s.StoryDay != 1 {
			t.Errorf("scene %s: story day = %d, want 1", s.Number, s.StoryDay)
		}
		if s.Confidence != timeline.ConfidenceLow {
			t.Errorf("scene %s: confidence = %s, want low", s.Number, s.Confidence)
		}
	}
	if store.DayCount() != 1 {
		t.Fatalf("day count = %d, want 1", store.DayCount())
	}
}

func TestDetectIsIdempotent(t *testing.T) {
	scenes := scriptScenes(timeline.DayTime, timeline.Night, timeline.Unknown, timeline.DayTime, timeline.Dusk)

	first, firstStore := timeline.Detect(scenes)
	second, secondStore := timeline.Detect(first)

	if !slices.Equal(first, second) {
		t.Fatalf("re-running detection changed annotations:\nfirst:  %#v\nsecond: %#v", first, second)
	}
	if firstStore.DayCount() != secondStore.DayCount() {
		t.Fatalf("day counts differ: %d vs %d", firstStore.DayCount(), secondStore.DayCount())
	}
	for _, key := range firstStore.DayKeys() {
		if !slices.Equal(firstStore.ScenesForDay(key), secondStore.ScenesForDay(key)) {
			t.Fatalf("day %d scene lists differ", key)
		}
	}
}

func TestDetectSkipsReassignedScenes(t *testing.T) {
	scenes := scriptScenes(timeline.DayTime, timeline.Night, timeline.DayTime)
	scenes[1].Timeline = timeline.Flashback
	scenes[1].StoryDay = 3

	annotated, store := timeline.Detect(scenes)

	if annotated[1].Timeline != timeline.Flashback || annotated[1].StoryDay != 3 {
		t.Fatalf("reassigned scene was touched: %#v", annotated[1])
	}
	if key, ok := store.SceneDay("2"); ok {
		t.Fatalf("reassigned scene appeared in main store on day %d", key)
	}
	// With the nighttime scene gone, both daytime scenes share day 1.
	if annotated[0].StoryDay != 1 || annotated[2].StoryDay != 1 {
		t.Fatalf("story days = %d, %d; want 1, 1", annotated[0].StoryDay, annotated[2].StoryDay)
	}
}

func TestDetectDoesNotMutateInput(t *testing.T) {
	scenes := scriptScenes(timeline.DayTime, timeline.Night)
	timeline.Detect(scenes)
	for _, s := range scenes {
		if s.StoryDay != 0 || s.Confidence != "" {
			t.Fatalf("input scene mutated: %#v", s)
		}
	}
}

func TestDetectEmptyInput(t *testing.T) {
	annotated, store := timeline.Detect(nil)
	if len(annotated) != 0 {
		t.Fatalf("expected no annotated scenes, got %d", len(annotated))
	}
	if store.DayCount() != 0 {
		t.Fatalf("expected empty store, got %d days", store.DayCount())
	}
}
