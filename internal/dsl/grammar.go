package dsl

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// dslLexer tokenises the surface query language. Field names, bare values,
// and directive keys/values all share the single Word token: the grammar
// (not the lexer) decides which role a given lexeme plays, since one token
// backing several grammar positions keeps the lexer itself simple.
var dslLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Keyword", Pattern: `\b(AND|OR|NOT|TO|now)\b`},
	{Name: "Date", Pattern: `\d{4}-\d{2}-\d{2}`},
	{Name: "DateMath", Pattern: `[+-]\d+(/[dhms])?|/[dhms]\b`},
	{Name: "Word", Pattern: `[^\s:>()\[\]{}+@=~]+`},
	{Name: "Punct", Pattern: `[@=:>()\[\]{}~]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

// rawQuery is the top-level raw parse tree node: zero or more leading
// directives followed by an optional expression. Empty input is valid and
// lowers to {}.
type rawQuery struct {
	Directives []*rawDirective `parser:"@@*"`
	Expr       *rawOrExpr      `parser:"@@?"`
}

// rawDirective is "@key=value".
type rawDirective struct {
	Key   string `parser:"\"@\" @Word \"=\""`
	Value string `parser:"@Word"`
}

// rawOrExpr implements or_expr := and_expr ( 'OR' and_expr )*
type rawOrExpr struct {
	Left *rawAndExpr  `parser:"@@"`
	Rest []*rawOrTail `parser:"@@*"`
}

type rawOrTail struct {
	Op      string      `parser:"@\"OR\""`
	Operand *rawAndExpr `parser:"@@"`
}

// rawAndExpr implements and_expr := tilde_expr ( 'AND' tilde_expr )*
type rawAndExpr struct {
	Left *rawTildeExpr `parser:"@@"`
	Rest []*rawAndTail `parser:"@@*"`
}

type rawAndTail struct {
	Op      string        `parser:"@\"AND\""`
	Operand *rawTildeExpr `parser:"@@"`
}

// rawTildeExpr implements tilde_expr := not_expr ( '~' not_expr )*
type rawTildeExpr struct {
	Left *rawNotExpr     `parser:"@@"`
	Rest []*rawTildeTail `parser:"@@*"`
}

type rawTildeTail struct {
	Op      string      `parser:"@\"~\""`
	Operand *rawNotExpr `parser:"@@"`
}

// rawNotExpr implements not_expr := 'NOT' not_expr | primary
type rawNotExpr struct {
	Negated *rawNotExpr `parser:"  \"NOT\" @@"`
	Prim    *rawPrimary `parser:"| @@"`
}

// rawPrimary implements
//
//	primary := '(' expr ')' | nested_query | basic_match | keyword_sequence
//
// keyword_query (a single bare word) is not a separate production:
// keyword_sequence already accepts one-or-more words and both collapse to
// the same joined-string AST node during normalisation.
type rawPrimary struct {
	Group    *rawOrExpr     `parser:"  \"(\" @@ \")\""`
	Nested   *rawNested     `parser:"| @@"`
	Match    *rawBasicMatch `parser:"| @@"`
	Keywords *rawKeywordSeq `parser:"| @@"`
}

// rawNested implements nested_query := field '>' nested_target.
type rawNested struct {
	Path   string           `parser:"@Word \">\""`
	Target *rawNestedTarget `parser:"@@"`
}

// rawNestedTarget implements nested_target := '(' expr ')' | basic_match.
type rawNestedTarget struct {
	Group *rawOrExpr     `parser:"  \"(\" @@ \")\""`
	Match *rawBasicMatch `parser:"| @@"`
}

// rawBasicMatch implements
//
//	basic_match  := grouped_match | field ':' value | field ':' range_value
//	grouped_match:= field ':' '(' expr ')'
type rawBasicMatch struct {
	Field string     `parser:"@Word \":\""`
	Group *rawOrExpr `parser:"(   \"(\" @@ \")\""`
	Range *rawRange  `parser:"  | @@"`
	Value *string    `parser:"  | @Word )"`
}

// rawRange implements range_value.
type rawRange struct {
	Incl *rawRangeIncl `parser:"  @@"`
	Excl *rawRangeExcl `parser:"| @@"`
}

type rawRangeIncl struct {
	GTE *rawDatetime `parser:"\"[\" @@"`
	LTE *rawDatetime `parser:"\"TO\" @@ \"]\""`
}

type rawRangeExcl struct {
	GT *rawDatetime `parser:"\"{\" @@"`
	LT *rawDatetime `parser:"\"TO\" @@ \"}\""`
}

// rawDatetime implements datetime := 'now' | /\d{4}-\d{2}-\d{2}/ | date_math
// | value. 'now' alone is just the zero-suffix case of rawDateMath, so it
// does not need its own alternative.
type rawDatetime struct {
	Math *rawDateMath `parser:"  @@"`
	Date string       `parser:"| @Date"`
	Bare string       `parser:"| @Word"`
}

// rawDateMath implements 'now' ( [+-] digits )? ( '/' unit )?. The optional
// suffix is lexed whole (DateMath token) rather than token by token, which
// is far simpler than threading sign/digits/unit through three separate
// grammar fields. The lexer tries DateMath before Word, so a lexeme that
// starts with a sign and digits (e.g. -5), or a standalone /d, /h, /m or
// /s, lexes as DateMath and is not accepted where a Word (field, value or
// bare range bound) is expected.
type rawDateMath struct {
	Suffix string `parser:"\"now\" @DateMath?"`
}

// rawKeywordSeq implements keyword_sequence := keyword ( keyword )*. AND,
// OR, NOT, TO and now lex as Keyword tokens, never Word, so they can never
// be swallowed here.
type rawKeywordSeq struct {
	First string   `parser:"@Word"`
	Rest  []string `parser:"@Word*"`
}

var dslParser = participle.MustBuild[rawQuery](
	participle.Lexer(dslLexer),
	participle.Elide("Whitespace"),
)
