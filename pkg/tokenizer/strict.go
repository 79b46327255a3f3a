package tokenizer

// exclusive reports whether the candidate span is the only Hebrew
// content in its enclosing scope at the given level: every letter run
// overlapping the scope must lie fully inside the candidate.
func exclusive(tree *scopeTree, level Scope, cand span) bool {
	sc, ok := tree.enclosing(level, cand.start)
	if !ok {
		return false
	}
	for _, run := range tree.runsOverlapping(sc) {
		if !run.within(cand) {
			return false
		}
	}
	return true
}
