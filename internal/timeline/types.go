package timeline

import "strings"

// Type identifies one of the four independent narrative timelines.
type Type string

const (
	Main      Type = "main"
	Flashback Type = "flashback"
	Dream     Type = "dream"
	Other     Type = "other"
)

var allTypes = []Type{Main, Flashback, Dream, Other}

var typeSet = func() map[Type]struct{} {
	set := make(map[Type]struct{}, len(allTypes))
	for _, t := range allTypes {
		set[t] = struct{}{}
	}
	return set
}()

// AllTypes returns the ordered list of known timeline types.
func AllTypes() []Type {
	cp := make([]Type, len(allTypes))
	copy(cp, allTypes)
	return cp
}

// ParseType converts a string into a known timeline Type.
func ParseType(value string) (Type, bool) {
	normalized := Type(strings.ToLower(strings.TrimSpace(value)))
	if normalized == "" {
		return "", false
	}
	_, ok := typeSet[normalized]
	return normalized, ok
}

// TimeOfDay is the slugline time-of-day token attached to a scene. The empty
// value means the script gives no usable time-of-day.
type TimeOfDay string

const (
	Dawn    TimeOfDay = "DAWN"
	DayTime TimeOfDay = "DAY"
	Dusk    TimeOfDay = "DUSK"
	Night   TimeOfDay = "NIGHT"
	Unknown TimeOfDay = ""
)

// ParseTimeOfDay converts a string into a known TimeOfDay. Empty input parses
// as Unknown.
func ParseTimeOfDay(value string) (TimeOfDay, bool) {
	normalized := TimeOfDay(strings.ToUpper(strings.TrimSpace(value)))
	switch normalized {
	case Dawn, DayTime, Dusk, Night, Unknown:
		return normalized, true
	default:
		return "", false
	}
}

// Definitive reports whether the value carries usable day/night information.
func (t TimeOfDay) Definitive() bool {
	return t != Unknown
}

// Daytime reports whether the value belongs to the daytime class. Only
// meaningful for definitive values.
func (t TimeOfDay) Daytime() bool {
	return t == Dawn || t == DayTime
}

// Confidence records how directly a scene's story-day assignment came from
// explicit metadata versus lookahead inference or defaulting.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// Scene is the slice of the externally-owned scene record this engine reads
// and writes. StoryDay and Timeline are back-references maintained here; a
// StoryDay of zero means the scene has not been assigned yet.
type Scene struct {
	Number     string
	Heading    string
	TimeOfDay  TimeOfDay
	StoryDay   int
	Timeline   Type
	Confidence Confidence
}

// Assigned reports whether the scene carries a story-day assignment.
func (s Scene) Assigned() bool {
	return s.StoryDay > 0
}

// Day is one in-universe narrative day: an ordered list of scene numbers plus
// provenance flags.
type Day struct {
	Key             int
	Scenes          []string
	DetectedFrom    []string
	ManuallyCreated bool
	Reordered       bool
}

// Clone returns a deep copy of the day.
func (d Day) Clone() Day {
	cp := d
	cp.Scenes = append([]string(nil), d.Scenes...)
	cp.DetectedFrom = append([]string(nil), d.DetectedFrom...)
	return cp
}

// Contains reports whether the day's scene list includes the given number.
func (d Day) Contains(sceneNumber string) bool {
	for _, num := range d.Scenes {
		if num == sceneNumber {
			return true
		}
	}
	return false
}
