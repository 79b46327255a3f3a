package tokenizer

import "strconv"

// Limit bounds a count. It is either unbounded or capped at a maximum;
// the zero value is unbounded.
type Limit struct {
	max     int
	bounded bool
}

// Unbounded returns a Limit that allows any count.
func Unbounded() Limit {
	return Limit{}
}

// Max returns a Limit capped at n.
func Max(n int) Limit {
	return Limit{max: n, bounded: true}
}

// LimitFromInt converts a plain config integer to a Limit, where zero or
// a negative value means unbounded.
func LimitFromInt(n int) Limit {
	if n <= 0 {
		return Unbounded()
	}
	return Max(n)
}

// Allows reports whether a count of n is within the limit.
func (l Limit) Allows(n int) bool {
	return !l.bounded || n <= l.max
}

// Bounded reports whether the limit is capped.
func (l Limit) Bounded() bool {
	return l.bounded
}

// Value returns the cap; it is meaningful only when Bounded is true.
func (l Limit) Value() int {
	return l.max
}

func (l Limit) String() string {
	if !l.bounded {
		return "unbounded"
	}
	return strconv.Itoa(l.max)
}
