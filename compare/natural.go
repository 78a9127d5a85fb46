package compare

import "facette.io/natsort"

// NaturalStrings returns a comparator imposing natural sort order on
// strings. Natural order treats embedded numbers numerically, so "file2"
// orders before "file10".
//
// natsort.Compare is non-strict: it reports true for naturally equal
// inputs in both directions, so it cannot feed FromLess directly. Equality
// is resolved by comparing both ways; note strings such as "file1" and
// "file01" are naturally equal without being byte-equal.
func NaturalStrings() Func[string] {
	return func(a, b string) int {
		ab, ba := natsort.Compare(a, b), natsort.Compare(b, a)

		switch {
		case ab && !ba:
			return -1
		case ba && !ab:
			return 1
		default:
			return 0
		}
	}
}
