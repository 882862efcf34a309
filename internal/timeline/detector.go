package timeline

// Detect runs the story-day boundary heuristic over a scene list in script
// order and returns annotated scene copies plus the resulting main-timeline
// store. The input is never modified.
//
// The pass keeps a current story day (starting at 1) and the last definitive
// time-of-day seen. A definitive daytime scene that follows a nighttime scene
// opens a new day; everything else stays on the current day. Scenes without a
// usable time-of-day borrow the next definitive value found by lookahead
// (medium confidence) or, when the script ends without one, stay where they
// are (low confidence). Borrowed values update the running state so the scene
// that supplied them does not trigger the same boundary again.
//
// Only the main timeline is written: scenes already reassigned to flashback,
// dream, or other timelines are skipped entirely and returned untouched.
// Re-running Detect fully replaces the previous main partition.
func Detect(scenes []Scene) ([]Scene, Store) {
	out := make([]Scene, len(scenes))
	copy(out, scenes)

	store := Store{Type: Main}
	current := Day{Key: 1}
	currentKey := 1
	last := Unknown
	sawMainScene := false

	for i := range out {
		if reassigned(out[i]) {
			continue
		}
		sawMainScene = true

		value := out[i].TimeOfDay
		confidence := ConfidenceHigh
		if !value.Definitive() {
			if found, ok := lookahead(out, i); ok {
				value = found
				confidence = ConfidenceMedium
			} else {
				confidence = ConfidenceLow
			}
		}

		if value.Definitive() {
			if value.Daytime() && last.Definitive() && !last.Daytime() {
				store.Days = append(store.Days, current)
				currentKey++
				current = Day{Key: currentKey}
			}
			last = value
		}

		out[i].StoryDay = currentKey
		out[i].Timeline = Main
		out[i].Confidence = confidence
		current.Scenes = append(current.Scenes, out[i].Number)
		if confidence == ConfidenceHigh {
			current.DetectedFrom = append(current.DetectedFrom, out[i].Number)
		}
	}

	if sawMainScene {
		store.Days = append(store.Days, current)
	}
	return out, store
}

// reassigned reports whether a scene was manually moved off the main timeline
// and must not be re-examined by detection.
func reassigned(s Scene) bool {
	return s.Timeline != "" && s.Timeline != Main
}

func lookahead(scenes []Scene, from int) (TimeOfDay, bool) {
	for i := from + 1; i < len(scenes); i++ {
		if reassigned(scenes[i]) {
			continue
		}
		if scenes[i].TimeOfDay.Definitive() {
			return scenes[i].TimeOfDay, true
		}
	}
	return Unknown, false
}
