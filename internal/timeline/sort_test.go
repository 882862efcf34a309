package timeline_test

import (
	"slices"
	"testing"

	"slate/internal/timeline"
)

func TestCompareSceneNumbers(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"17", "17A", -1},
		{"17A", "17B", -1},
		{"17B", "18", -1},
		{"18", "17", 1},
		{"17", "17", 0},
		{"2", "10", -1},
		{"A", "3", 1},
	}
	for _, tc := range cases {
		got := timeline.CompareSceneNumbers(tc.a, tc.b)
		if sign(got) != tc.want {
			t.Errorf("CompareSceneNumbers(%q, %q) = %d, want sign %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestSortSceneNumbersNaturalOrder(t *testing.T) {
	numbers := []string{"18", "17B", "17", "17A"}
	timeline.SortSceneNumbers(numbers)
	want := []string{"17", "17A", "17B", "18"}
	if !slices.Equal(numbers, want) {
		t.Fatalf("sorted order = %v, want %v", numbers, want)
	}
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}
