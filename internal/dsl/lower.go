package dsl

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/nestql/nestql/internal/obslog"
)

// lower recursively translates the normalised AST into Query-DSL JSON, per
// §4.3. A nil root (empty input) lowers to {}.
func lower(root Node, directives map[string]string) map[string]any {
	if root == nil {
		return map[string]any{}
	}
	return lowerNode(root, directives)
}

func lowerNode(n Node, directives map[string]string) map[string]any {
	switch v := n.(type) {
	case Exists:
		return map[string]any{"exists": map[string]any{"field": v.Field}}

	case Match:
		return map[string]any{"match": map[string]any{v.Field: v.Value}}

	case Not:
		return map[string]any{"bool": map[string]any{
			"must_not": []any{lowerNode(v.X, directives)},
		}}

	case Nested:
		return lowerNested(v, directives)

	case Grouped:
		return lowerNode(distributeGroup(v.Field, v.Group), directives)

	case Range:
		return map[string]any{"range": map[string]any{v.Field: rangeBody(v.Bounds)}}

	case Binop:
		return lowerBinop(v, directives)

	case Keyword:
		// A keyword_sequence is already joined to one string by normalise;
		// this single case covers both the bare-word and joined-sequence
		// shapes the lowering cases distinguish.
		return queryString(string(v), directives)

	default:
		obslog.Warn("lower: unrecognised AST shape", zap.String("type", fmt.Sprintf("%T", n)))
		return map[string]any{"unrecognised": fmt.Sprintf("%#v", n)}
	}
}

func lowerBinop(v Binop, directives map[string]string) map[string]any {
	left := lowerNode(v.Left, directives)
	right := lowerNode(v.Right, directives)

	switch v.Op {
	case OpTilde, OpAnd:
		return map[string]any{"bool": map[string]any{"must": []any{left, right}}}
	case OpOr:
		return map[string]any{"bool": map[string]any{
			"should":               []any{left, right},
			"minimum_should_match": 1,
		}}
	default:
		obslog.Warn("lower: unrecognised binop operator", zap.String("op", string(v.Op)))
		return map[string]any{"unrecognised": string(v.Op)}
	}
}

func lowerNested(v Nested, directives map[string]string) map[string]any {
	inner := lowerNode(v.Query, directives)
	return map[string]any{"nested": map[string]any{
		"path":  v.Path,
		"query": prefixFields(inner, v.Path),
	}}
}

func rangeBody(b RangeBounds) map[string]any {
	body := map[string]any{}
	if b.GTE != nil {
		body["gte"] = *b.GTE
	}
	if b.LTE != nil {
		body["lte"] = *b.LTE
	}
	if b.GT != nil {
		body["gt"] = *b.GT
	}
	if b.LT != nil {
		body["lt"] = *b.LT
	}
	return body
}
