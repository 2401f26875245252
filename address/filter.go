// Fichier: address/filter.go

package address

// Predicate reports whether an address should be kept.
type Predicate func(Address) bool

// Filter returns a new pool with the addresses of p for which keep is true,
// in their original order. p is not modified. The result is never nil.
func Filter(p Pool, keep Predicate) Pool {
	res := Pool{}
	for _, a := range p {
		if keep(a) {
			res = append(res, a)
		}
	}
	return res
}

// FirstIs matches addresses whose first token equals v.
// A v outside [0, 255] matches nothing.
func FirstIs(v int) Predicate {
	return func(a Address) bool {
		return int(a[0]) == v
	}
}

// FirstTwoAre matches addresses starting with v1.v2.
func FirstTwoAre(v1, v2 int) Predicate {
	return func(a Address) bool {
		return int(a[0]) == v1 && int(a[1]) == v2
	}
}

// AnyIs matches addresses with at least one token equal to v.
func AnyIs(v int) Predicate {
	return func(a Address) bool {
		for _, tok := range a {
			if int(tok) == v {
				return true
			}
		}
		return false
	}
}

// FilterByFirst keeps the addresses whose first token equals v.
func FilterByFirst(p Pool, v int) Pool {
	return Filter(p, FirstIs(v))
}

// FilterByFirstTwo keeps the addresses whose first two tokens equal v1 and v2.
func FilterByFirstTwo(p Pool, v1, v2 int) Pool {
	return Filter(p, FirstTwoAre(v1, v2))
}

// FilterAny keeps the addresses where any token equals v.
func FilterAny(p Pool, v int) Pool {
	return Filter(p, AnyIs(v))
}
