// Package version compares dotted-numeric version identifiers.
//
// Identifiers are compared segment by segment, numerically, left to right.
// Missing trailing segments compare as zero, so "1.0" == "1.0.0" and
// "1.0" < "1.0.1". This matches the ordering of the Node.js release index,
// where multi-digit segments ("1.10.0") must sort after their single-digit
// neighbors ("1.9.0") rather than lexicographically before them.
package version

import (
	"sort"
	"strings"
)

// Compare returns -1, 0, or 1 depending on whether a sorts before, equal to,
// or after b under segment-wise numeric ordering.
func Compare(a, b string) int {
	sa := strings.Split(a, ".")
	sb := strings.Split(b, ".")

	n := len(sa)
	if len(sb) > n {
		n = len(sb)
	}

	for i := 0; i < n; i++ {
		var na, nb int
		if i < len(sa) {
			na = numericPrefix(sa[i])
		}
		if i < len(sb) {
			nb = numericPrefix(sb[i])
		}
		switch {
		case na < nb:
			return -1
		case na > nb:
			return 1
		}
	}
	return 0
}

// Sort orders ids in place, ascending by Compare.
func Sort(ids []string) {
	sort.SliceStable(ids, func(i, j int) bool {
		return Compare(ids[i], ids[j]) < 0
	})
}

// numericPrefix parses the leading digits of a segment. Trailing non-digit
// text is ignored; a segment with no leading digits counts as zero. The
// release index only ships plain numeric segments, so this is a guard
// against malformed input, not a prerelease scheme.
func numericPrefix(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			break
		}
		n = n*10 + int(c-'0')
	}
	return n
}
