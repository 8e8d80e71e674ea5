package httpmw

import "context"

type contextKey int

const (
	parsedQueryKey contextKey = iota
	queryParamsKey
)

// ParsedQueryFromContext returns the document parsed from the request's
// query parameter, and whether parsing succeeded. A failed parse attaches
// a nil marker rather than aborting the request — the caller's handler
// decides what a missing query means, the same way the Flask original left
// g.parsed_query as None on a ValueError.
func ParsedQueryFromContext(ctx context.Context) (map[string]any, bool) {
	doc, ok := ctx.Value(parsedQueryKey).(map[string]any)
	// A type assertion on a boxed nil map still succeeds, so a failed
	// parse (which stores a nil doc) must not be reported as ok.
	return doc, ok && doc != nil
}

// QueryParamsFromContext returns the request's query parameters other than
// the one consumed as the search query, mirroring the g.query_args
// passthrough added in the later revision of the Flask middleware.
func QueryParamsFromContext(ctx context.Context) map[string][]string {
	params, _ := ctx.Value(queryParamsKey).(map[string][]string)
	return params
}

func withParsedQuery(ctx context.Context, doc map[string]any) context.Context {
	return context.WithValue(ctx, parsedQueryKey, doc)
}

func withQueryParams(ctx context.Context, params map[string][]string) context.Context {
	return context.WithValue(ctx, queryParamsKey, params)
}
