package dsl

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestQueryStringDirectives(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		directives map[string]string
		want       map[string]any
	}{
		{
			"no directives",
			"hello world",
			map[string]string{},
			map[string]any{"query_string": map[string]any{"query": "hello world"}},
		},
		{
			"recognised and unrecognised keys",
			"hello",
			map[string]string{"default_field": "title", "bogus": "x"},
			map[string]any{"query_string": map[string]any{"query": "hello", "default_field": "title"}},
		},
		{
			"fields split trim dedupe-empty",
			"hello",
			map[string]string{"fields": " title , body ,, "},
			map[string]any{"query_string": map[string]any{"query": "hello", "fields": []string{"title", "body"}}},
		},
		{
			"empty fields directive omitted",
			"hello",
			map[string]string{"fields": " , , "},
			map[string]any{"query_string": map[string]any{"query": "hello"}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := queryString(tc.text, tc.directives)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("queryString() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
