package dsl

import "strings"

// verbatimDirectives lists the directive keys copied through to a
// query_string body unchanged, per §4.5.
var verbatimDirectives = []string{
	"default_field",
	"default_operator",
	"analyzer",
	"quote_analyzer",
	"allow_leading_wildcard",
	"auto_generate_synonyms_phrase_query",
}

// queryString builds the query_string clause for bare keyword text,
// applying whichever recognised directives are present. Unrecognised keys
// are ignored silently.
func queryString(text string, directives map[string]string) map[string]any {
	body := map[string]any{"query": text}

	for _, key := range verbatimDirectives {
		if val, ok := directives[key]; ok {
			body[key] = val
		}
	}

	if raw, ok := directives["fields"]; ok {
		if fields := splitFields(raw); len(fields) > 0 {
			body["fields"] = fields
		}
	}

	return map[string]any{"query_string": body}
}

func splitFields(raw string) []string {
	var fields []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			fields = append(fields, part)
		}
	}
	return fields
}
