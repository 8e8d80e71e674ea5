package dsl

import "testing"

func TestGrammarAccepts(t *testing.T) {
	inputs := []string{
		"field:value",
		"_exists_:price",
		"date:[2022-01-13 TO now]",
		"price:{10 TO 20}",
		"authors>authors.show:false",
		"authors>(authors.surname:Strindberg ~ (NOT authors.type:editor))",
		"field:value AND (field2:value2 OR field3:value3)",
		"texttype:(diktsamling OR dikt)",
		"NOT field:value",
		"@default_field=title hello world",
		"keyword",
		"hello world again",
		"",
	}

	for _, input := range inputs {
		if _, err := dslParser.ParseString("", input); err != nil {
			t.Errorf("dslParser.ParseString(%q) failed: %v", input, err)
		}
	}
}

func TestGrammarRejects(t *testing.T) {
	inputs := []string{
		">invalid",
		"(field:value",
		"AND",
	}

	for _, input := range inputs {
		if _, err := dslParser.ParseString("", input); err == nil {
			t.Errorf("dslParser.ParseString(%q) succeeded, want error", input)
		}
	}
}

func TestGrammarKeywordSequenceDoesNotSwallowReservedWords(t *testing.T) {
	raw, err := dslParser.ParseString("", "alpha AND beta")
	if err != nil {
		t.Fatalf("dslParser.ParseString() failed: %v", err)
	}
	if raw.Expr == nil {
		t.Fatal("Expr is nil")
	}
	if len(raw.Expr.Left.Rest) != 1 {
		t.Fatalf("AND split into %d rest terms, want 1", len(raw.Expr.Left.Rest))
	}
}
