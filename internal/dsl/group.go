package dsl

// distributeGroup rewrites group so that every scalar leaf becomes a Match
// against field, per §4.6. Composite nodes that already carry their own
// field (Match, Exists, Range, Nested, Grouped) are structurally complete
// on their own and pass through untouched; only Keyword leaves, Not, and
// Binop need rewriting.
func distributeGroup(field string, group Node) Node {
	switch v := group.(type) {
	case Keyword:
		return Match{Field: field, Value: string(v)}
	case Not:
		return Not{X: distributeGroup(field, v.X)}
	case Binop:
		return Binop{
			Left:  distributeGroup(field, v.Left),
			Op:    v.Op,
			Right: distributeGroup(field, v.Right),
		}
	default:
		return v
	}
}
