package continuity

import (
	"strings"
	"time"

	"slate/internal/timeline"
)

// Type categorizes what a continuity element tracks.
type Type string

const (
	Injury         Type = "injury"
	Makeup         Type = "makeup"
	Costume        Type = "costume"
	Props          Type = "props"
	Hair           Type = "hair"
	Aging          Type = "aging"
	WeatherEffects Type = "weather_effects"
	VehicleDamage  Type = "vehicle_damage"
	Custom         Type = "custom"
)

var allTypes = []Type{Injury, Makeup, Costume, Props, Hair, Aging, WeatherEffects, VehicleDamage, Custom}

var typeSet = func() map[Type]struct{} {
	set := make(map[Type]struct{}, len(allTypes))
	for _, t := range allTypes {
		set[t] = struct{}{}
	}
	return set
}()

// AllTypes returns the ordered list of known element types.
func AllTypes() []Type {
	cp := make([]Type, len(allTypes))
	copy(cp, allTypes)
	return cp
}

// ParseType converts a string into a known element Type.
func ParseType(value string) (Type, bool) {
	normalized := Type(strings.ToLower(strings.TrimSpace(value)))
	if normalized == "" {
		return "", false
	}
	_, ok := typeSet[normalized]
	return normalized, ok
}

// DayRecord holds the per-day tracking state of an element.
type DayRecord struct {
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

// Element is a tracked continuity attribute spanning [StartDay, EndDay] on one
// timeline. StartScene/EndScene are display snapshots taken at creation; they
// are kept even if day numbering later drifts. Daily holds one record for
// every day in the range.
type Element struct {
	ID          string
	Name        string
	Type        Type
	Timeline    timeline.Type
	CharacterID string
	StartDay    int
	EndDay      int
	StartScene  string
	EndScene    string
	Daily       map[int]DayRecord
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Clone returns a deep copy of the element.
func (e Element) Clone() Element {
	cp := e
	cp.Daily = make(map[int]DayRecord, len(e.Daily))
	for key, rec := range e.Daily {
		cp.Daily[key] = rec
	}
	return cp
}

// Form carries the user-supplied fields for creating or editing an element.
// Daily entries override the default empty record for day keys inside the
// resolved range; keys outside it are ignored.
type Form struct {
	Name        string
	Type        Type
	Timeline    timeline.Type
	CharacterID string
	StartScene  string
	EndScene    string
	Daily       map[int]DayRecord
}
