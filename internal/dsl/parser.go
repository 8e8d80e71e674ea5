package dsl

import (
	"github.com/alecthomas/participle/v2"
)

// Parse runs the full pipeline — grammar parse, AST normalisation, lowering
// — producing the Query-DSL document body a caller places under the
// top-level {"query": …} key. Empty input yields {}.
func Parse(input string) (map[string]any, error) {
	raw, err := dslParser.ParseString("", input)
	if err != nil {
		return nil, classifyParseError(input, err)
	}

	ast, directives := normalise(raw)
	return lower(ast, directives), nil
}

// classifyParseError picks the §7 message form. participle has no
// equivalent of tatsu's "expecting one of" phrasing to string-match
// against, so the split is made on position instead: a failure at offset 0
// means the parser never got past the first token, which is the same
// "query must start with a field name or keyword" situation the format
// message names.
func classifyParseError(input string, err error) InvalidQuery {
	detail := err.Error()
	format := false

	if perr, ok := err.(participle.Error); ok {
		format = perr.Position().Offset == 0
	}

	return InvalidQuery{Input: input, Detail: detail, format: format}
}
