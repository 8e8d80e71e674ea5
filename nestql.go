// Package nestql compiles the compact nestql search expression language
// into Elasticsearch/OpenSearch Query DSL JSON. Everything beyond parsing
// and lowering — transport, middleware, CLI — lives in the external
// collaborator packages under cmd/ and internal/httpmw.
package nestql

import "github.com/nestql/nestql/internal/dsl"

// InvalidQuery is returned by Parse when input does not conform to the
// grammar. It carries the original input alongside a diagnostic.
type InvalidQuery = dsl.InvalidQuery

// Parse compiles a nestql query string into the JSON document a caller
// places under the top-level {"query": …} key when posting to
// Elasticsearch's or OpenSearch's _search endpoint. Empty input returns an
// empty document, not an error.
func Parse(input string) (map[string]any, error) {
	return dsl.Parse(input)
}
