package segment

import "strings"

// Predicate is a composable boolean test over a single segment.
// Predicates are pure: they read the segment and never mutate it.
type Predicate func(*Segment) bool

// And returns a predicate satisfied when every given predicate is satisfied.
func And(ps ...Predicate) Predicate {
	return func(s *Segment) bool {
		for _, p := range ps {
			if !p(s) {
				return false
			}
		}
		return true
	}
}

// Or returns a predicate satisfied when any given predicate is satisfied.
func Or(ps ...Predicate) Predicate {
	return func(s *Segment) bool {
		for _, p := range ps {
			if p(s) {
				return true
			}
		}
		return false
	}
}

// Not returns the negation of a predicate.
func Not(p Predicate) Predicate {
	return func(s *Segment) bool {
		return !p(s)
	}
}

// NameIs matches segments whose name equals any of the given names.
func NameIs(names ...string) Predicate {
	return func(s *Segment) bool {
		for _, name := range names {
			if s.Name == name {
				return true
			}
		}
		return false
	}
}

// RawIs matches segments whose raw text equals any of the given values.
func RawIs(raws ...string) Predicate {
	return func(s *Segment) bool {
		for _, raw := range raws {
			if s.Raw == raw {
				return true
			}
		}
		return false
	}
}

// RawContains matches segments whose raw text contains the substring.
func RawContains(sub string) Predicate {
	return func(s *Segment) bool {
		return strings.Contains(s.Raw, sub)
	}
}

// IsIdentifier matches recognized identifier-like segments.
func IsIdentifier() Predicate {
	return NameIs(NakedIdentifier, QuotedIdentifier)
}
