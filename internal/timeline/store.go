package timeline

// Store is the ordered story-day partition for a single timeline type. Day
// keys are always exactly 1..len(Days) in slice order.
type Store struct {
	Type Type
	Days []Day
}

// Clone returns a deep copy of the store.
func (s Store) Clone() Store {
	cp := s
	cp.Days = make([]Day, len(s.Days))
	for i, day := range s.Days {
		cp.Days[i] = day.Clone()
	}
	return cp
}

// DayCount returns the number of story days.
func (s Store) DayCount() int {
	return len(s.Days)
}

// DayKeys returns the day keys in order.
func (s Store) DayKeys() []int {
	keys := make([]int, len(s.Days))
	for i, day := range s.Days {
		keys[i] = day.Key
	}
	return keys
}

// Day returns the day with the given key.
func (s Store) Day(key int) (Day, bool) {
	for _, day := range s.Days {
		if day.Key == key {
			return day, true
		}
	}
	return Day{}, false
}

// ScenesForDay returns a copy of the scene list for the given day key.
func (s Store) ScenesForDay(key int) []string {
	day, ok := s.Day(key)
	if !ok {
		return nil
	}
	return append([]string(nil), day.Scenes...)
}

// SceneDay returns the key of the day whose list contains the scene.
func (s Store) SceneDay(sceneNumber string) (int, bool) {
	for _, day := range s.Days {
		if day.Contains(sceneNumber) {
			return day.Key, true
		}
	}
	return 0, false
}

// TotalScenes counts scenes across all days of the timeline.
func (s Store) TotalScenes() int {
	total := 0
	for _, day := range s.Days {
		total += len(day.Scenes)
	}
	return total
}

// Document bundles the stores for every timeline type.
type Document struct {
	Timelines map[Type]Store
}

// NewDocument returns an empty document.
func NewDocument() Document {
	return Document{Timelines: make(map[Type]Store)}
}

// Clone returns a deep copy of the document.
func (d Document) Clone() Document {
	cp := NewDocument()
	for t, store := range d.Timelines {
		cp.Timelines[t] = store.Clone()
	}
	return cp
}

// Store returns the store for a timeline type, or an empty store of that type
// when none has been recorded yet.
func (d Document) Store(t Type) Store {
	if store, ok := d.Timelines[t]; ok {
		return store
	}
	return Store{Type: t}
}

// WithStore returns a copy of the document with the given store replacing the
// entry for its timeline type.
func (d Document) WithStore(s Store) Document {
	cp := d.Clone()
	cp.Timelines[s.Type] = s
	return cp
}
