package dsl

import "strings"

// existsField is the reserved pseudo-field name whose value names the
// actual field being tested for existence.
const existsField = "_exists_"

// normalise rewrites a raw parse tree into the normalised AST plus the
// flattened directive map (later entries win, per §4.2). A nil Node means
// empty input, which lower() turns into {}.
func normalise(raw *rawQuery) (Node, map[string]string) {
	directives := make(map[string]string, len(raw.Directives))
	for _, d := range raw.Directives {
		directives[d.Key] = d.Value
	}

	var node Node
	if raw.Expr != nil {
		node = normaliseOrExpr(raw.Expr)
	}
	return node, directives
}

func normaliseOrExpr(e *rawOrExpr) Node {
	acc := normaliseAndExpr(e.Left)
	for _, tail := range e.Rest {
		acc = Binop{Left: acc, Op: OpOr, Right: normaliseAndExpr(tail.Operand)}
	}
	return acc
}

func normaliseAndExpr(e *rawAndExpr) Node {
	acc := normaliseTildeExpr(e.Left)
	for _, tail := range e.Rest {
		acc = Binop{Left: acc, Op: OpAnd, Right: normaliseTildeExpr(tail.Operand)}
	}
	return acc
}

func normaliseTildeExpr(e *rawTildeExpr) Node {
	acc := normaliseNotExpr(e.Left)
	for _, tail := range e.Rest {
		acc = Binop{Left: acc, Op: OpTilde, Right: normaliseNotExpr(tail.Operand)}
	}
	return acc
}

func normaliseNotExpr(e *rawNotExpr) Node {
	if e.Negated != nil {
		return Not{X: normaliseNotExpr(e.Negated)}
	}
	return normalisePrimary(e.Prim)
}

func normalisePrimary(p *rawPrimary) Node {
	switch {
	case p.Group != nil:
		return normaliseOrExpr(p.Group)
	case p.Nested != nil:
		return Nested{Path: p.Nested.Path, Query: normaliseNestedTarget(p.Nested.Target)}
	case p.Match != nil:
		return normaliseBasicMatch(p.Match)
	default:
		return normaliseKeywordSeq(p.Keywords)
	}
}

func normaliseNestedTarget(t *rawNestedTarget) Node {
	if t.Group != nil {
		return normaliseOrExpr(t.Group)
	}
	return normaliseBasicMatch(t.Match)
}

func normaliseBasicMatch(m *rawBasicMatch) Node {
	switch {
	case m.Group != nil:
		return Grouped{Field: m.Field, Group: normaliseOrExpr(m.Group)}
	case m.Range != nil:
		return normaliseRange(m.Field, m.Range)
	default:
		value := *m.Value
		if m.Field == existsField {
			return Exists{Field: value}
		}
		return Match{Field: m.Field, Value: value}
	}
}

func normaliseRange(field string, r *rawRange) Node {
	if r.Incl != nil {
		gte := datetimeText(r.Incl.GTE)
		lte := datetimeText(r.Incl.LTE)
		return Range{Field: field, Bounds: RangeBounds{GTE: &gte, LTE: &lte}}
	}
	gt := datetimeText(r.Excl.GT)
	lt := datetimeText(r.Excl.LT)
	return Range{Field: field, Bounds: RangeBounds{GT: &gt, LT: &lt}}
}

func datetimeText(d *rawDatetime) string {
	switch {
	case d.Math != nil:
		return "now" + d.Math.Suffix
	case d.Date != "":
		return d.Date
	default:
		return d.Bare
	}
}

func normaliseKeywordSeq(k *rawKeywordSeq) Node {
	words := append([]string{k.First}, k.Rest...)
	return Keyword(strings.Join(words, " "))
}
