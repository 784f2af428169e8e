package segment

// Segments is an ordered, restartable sequence of segments returned by the
// selection operators. It is always freshly constructed; mutating it never
// affects the tree it was selected from.
type Segments []*Segment

// First returns the first segment, or nil when the sequence is empty.
func (ss Segments) First() *Segment {
	if len(ss) == 0 {
		return nil
	}
	return ss[0]
}

// Last returns the last segment, or nil when the sequence is empty.
func (ss Segments) Last() *Segment {
	if len(ss) == 0 {
		return nil
	}
	return ss[len(ss)-1]
}

// Any reports whether any segment satisfies the predicate.
func (ss Segments) Any(p Predicate) bool {
	for _, s := range ss {
		if p(s) {
			return true
		}
	}
	return false
}

// All reports whether every segment satisfies the predicate.
func (ss Segments) All(p Predicate) bool {
	for _, s := range ss {
		if !p(s) {
			return false
		}
	}
	return true
}

// Where returns the segments satisfying the predicate, preserving order.
func (ss Segments) Where(p Predicate) Segments {
	var out Segments
	for _, s := range ss {
		if p(s) {
			out = append(out, s)
		}
	}
	return out
}

// Descendants returns all descendants of s satisfying the predicate, in
// depth-first document order. The receiver itself is not included.
// Traversal is cycle-guarded: a malformed tree that revisits a node fails
// closed (the revisited subtree is not descended again).
func (s *Segment) Descendants(p Predicate) Segments {
	var out Segments
	seen := map[*Segment]bool{s: true}
	var walk func(node *Segment)
	walk = func(node *Segment) {
		for _, child := range node.Children {
			if child == nil || seen[child] {
				continue
			}
			seen[child] = true
			if p(child) {
				out = append(out, child)
			}
			walk(child)
		}
	}
	walk(s)
	return out
}

// ChildrenWhere returns the immediate children satisfying the predicate.
func (s *Segment) ChildrenWhere(p Predicate) Segments {
	var out Segments
	for _, child := range s.Children {
		if child != nil && p(child) {
			out = append(out, child)
		}
	}
	return out
}

// NearestAncestor returns the nearest ancestor in the root-first stack that
// satisfies the predicate, or nil if none does. An empty or nil stack fails
// closed with nil.
func NearestAncestor(stack []*Segment, p Predicate) *Segment {
	for i := len(stack) - 1; i >= 0; i-- {
		if stack[i] != nil && p(stack[i]) {
			return stack[i]
		}
	}
	return nil
}
