package models

// Limit is the quota attached to a countable resource for a given tier.
// It is either a finite non-negative number or unlimited. The -1 sentinel of
// the HTTP contract only exists at the serialization boundary (see Int):
// callers compare through Allows so that an unlimited quota can never be fed
// into an integer comparison by accident.
type Limit struct {
	value     int
	unlimited bool
}

var Unlimited = Limit{unlimited: true}

func FiniteLimit(n int) Limit {
	return Limit{value: n}
}

func (l Limit) IsUnlimited() bool {
	return l.unlimited
}

// Allows reports whether one more unit may be created given the current
// count. The comparison is strict: an organization sitting exactly at its
// limit may not add another unit.
func (l Limit) Allows(current int) bool {
	if l.unlimited {
		return true
	}
	return current < l.value
}

// Int returns the wire encoding of the limit, -1 meaning unlimited.
func (l Limit) Int() int {
	if l.unlimited {
		return -1
	}
	return l.value
}

// GreaterOrEqual reports whether l is at least as permissive as other.
// Used to verify the catalog's monotonicity contract.
func (l Limit) GreaterOrEqual(other Limit) bool {
	if l.unlimited {
		return true
	}
	if other.unlimited {
		return false
	}
	return l.value >= other.value
}
