package timeline

import (
	"cmp"
	"slices"
	"strings"
)

// CompareSceneNumbers orders scene numbers the way a script supervisor reads
// them: the leading numeric run compares numerically, ties fall back to the
// full string, so "17" < "17A" < "17B" < "18". Numbers without a numeric
// prefix sort after numbered scenes.
func CompareSceneNumbers(a, b string) int {
	an, aok := leadingNumber(a)
	bn, bok := leadingNumber(b)
	switch {
	case aok && bok:
		if an != bn {
			return cmp.Compare(an, bn)
		}
	case aok:
		return -1
	case bok:
		return 1
	}
	return strings.Compare(a, b)
}

// SortSceneNumbers sorts a scene-number list in place using the natural
// comparator. The sort is stable so equal numbers keep their relative order.
func SortSceneNumbers(numbers []string) {
	slices.SortStableFunc(numbers, CompareSceneNumbers)
}

func leadingNumber(s string) (int, bool) {
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}
	value := 0
	for _, c := range []byte(s[:end]) {
		value = value*10 + int(c-'0')
	}
	return value, true
}
