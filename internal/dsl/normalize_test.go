package dsl

import (
	"testing"
)

func parseAndNormalise(t *testing.T, input string) (Node, map[string]string) {
	t.Helper()
	raw, err := dslParser.ParseString("", input)
	if err != nil {
		t.Fatalf("dslParser.ParseString(%q) failed: %v", input, err)
	}
	return normalise(raw)
}

func TestNormaliseBareKeywordSequenceJoins(t *testing.T) {
	node, _ := parseAndNormalise(t, "hello world again")
	kw, ok := node.(Keyword)
	if !ok {
		t.Fatalf("normalise() = %#v, want Keyword", node)
	}
	if string(kw) != "hello world again" {
		t.Errorf("normalise() = %q, want %q", kw, "hello world again")
	}
}

func TestNormaliseDirectivesLastWriteWins(t *testing.T) {
	_, directives := parseAndNormalise(t, "@default_field=title @default_field=body hello")
	if directives["default_field"] != "body" {
		t.Errorf("directives[default_field] = %q, want %q", directives["default_field"], "body")
	}
}

func TestNormaliseBinaryLeftFold(t *testing.T) {
	node, _ := parseAndNormalise(t, "a:1 AND b:2 AND c:3")
	top, ok := node.(Binop)
	if !ok {
		t.Fatalf("normalise() = %#v, want top-level Binop", node)
	}
	if top.Op != OpAnd {
		t.Fatalf("top.Op = %v, want AND", top.Op)
	}
	left, ok := top.Left.(Binop)
	if !ok {
		t.Fatalf("top.Left = %#v, want Binop (left fold)", top.Left)
	}
	if _, ok := left.Left.(Match); !ok {
		t.Errorf("left.Left = %#v, want Match", left.Left)
	}
}

func TestNormaliseExistsSpecialCase(t *testing.T) {
	node, _ := parseAndNormalise(t, "_exists_:price")
	ex, ok := node.(Exists)
	if !ok {
		t.Fatalf("normalise() = %#v, want Exists", node)
	}
	if ex.Field != "price" {
		t.Errorf("ex.Field = %q, want %q", ex.Field, "price")
	}
}

func TestNormaliseEmptyInputYieldsNilNode(t *testing.T) {
	node, _ := parseAndNormalise(t, "")
	if node != nil {
		t.Errorf("normalise(\"\") = %#v, want nil", node)
	}
}

func TestNormaliseRangeExclusiveBounds(t *testing.T) {
	node, _ := parseAndNormalise(t, "price:{10 TO 20}")
	rng, ok := node.(Range)
	if !ok {
		t.Fatalf("normalise() = %#v, want Range", node)
	}
	if rng.Bounds.GT == nil || *rng.Bounds.GT != "10" {
		t.Errorf("rng.Bounds.GT = %v, want 10", rng.Bounds.GT)
	}
	if rng.Bounds.LT == nil || *rng.Bounds.LT != "20" {
		t.Errorf("rng.Bounds.LT = %v, want 20", rng.Bounds.LT)
	}
	if rng.Bounds.GTE != nil || rng.Bounds.LTE != nil {
		t.Errorf("rng.Bounds = %+v, want only GT/LT set", rng.Bounds)
	}
}
