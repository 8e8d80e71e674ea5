package dsl

import "testing"

func TestDistributeGroupOverBinop(t *testing.T) {
	group := Binop{Left: Keyword("a"), Op: OpOr, Right: Keyword("b")}
	got := distributeGroup("f", group)

	want := Binop{
		Left:  Match{Field: "f", Value: "a"},
		Op:    OpOr,
		Right: Match{Field: "f", Value: "b"},
	}
	if got != want {
		t.Errorf("distributeGroup() = %#v, want %#v", got, want)
	}
}

func TestDistributeGroupOverNot(t *testing.T) {
	got := distributeGroup("f", Not{X: Keyword("a")})
	want := Not{X: Match{Field: "f", Value: "a"}}
	if got != want {
		t.Errorf("distributeGroup() = %#v, want %#v", got, want)
	}
}

func TestDistributeGroupLeavesCompositeNodesAlone(t *testing.T) {
	exists := Exists{Field: "price"}
	if got := distributeGroup("f", exists); got != exists {
		t.Errorf("distributeGroup() = %#v, want unchanged %#v", got, exists)
	}
}
