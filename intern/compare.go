package intern

import "strings"

// compareText orders text-index keys by exact byte-for-byte comparison.
// No case folding or normalization: values that differ in any byte are
// distinct entries.
func compareText(a, b any) int {
	return strings.Compare(a.(string), b.(string))
}

// compareID orders id-index keys numerically.
func compareID(a, b any) int {
	av, bv := a.(uint32), b.(uint32)
	switch {
	case av < bv:
		return -1
	case av > bv:
		return 1
	default:
		return 0
	}
}
