package stats

import (
	"cmp"
	"sort"
	"strings"
)

// Count is one row of a frequency table
type Count struct {
	Label string
	Count int
}

// mode returns the most frequent value and its count. Ties go to the
// smallest value. ok is false for an empty input.
func mode[T cmp.Ordered](values []T) (best T, count int, ok bool) {
	freq := make(map[T]int, 64)
	for _, v := range values {
		freq[v]++
	}
	for v, n := range freq {
		if !ok || n > count || (n == count && v < best) {
			best, count, ok = v, n, true
		}
	}
	return best, count, ok
}

// valueCounts returns label counts sorted by descending count, then label.
// Blank labels are treated as missing and skipped.
func valueCounts(labels []string) []Count {
	freq := make(map[string]int)
	for _, l := range labels {
		if isBlank(l) {
			continue
		}
		freq[l]++
	}

	counts := make([]Count, 0, len(freq))
	for label, n := range freq {
		counts = append(counts, Count{Label: label, Count: n})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Label < counts[j].Label
	})
	return counts
}

// isBlank reports a missing cell; the frame reader spells NA cells as "NaN".
func isBlank(s string) bool {
	s = strings.TrimSpace(s)
	return s == "" || s == "NaN"
}
