// Package httpmw is the HTTP-level collaborator sitting in front of the
// compiler: it extracts a query parameter from the request, compiles it,
// and attaches the result (or a nil marker on failure) to request-scoped
// storage for downstream handlers. It never turns a parse failure into an
// HTTP error.
package httpmw

import (
	"net/http"

	"github.com/google/uuid"
	servertiming "github.com/mitchellh/go-server-timing"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/nestql/nestql"
	"github.com/nestql/nestql/internal/obslog"
)

// Config configures the middleware via functional options.
type Config struct {
	// QueryParam is the request query-string parameter holding the search
	// expression. Defaults to "query".
	QueryParam string

	// TracerProvider enables request tracing via otelhttp when set. If
	// nil, tracing is a passthrough.
	TracerProvider trace.TracerProvider

	// MeterProvider enables otelhttp's request/duration metrics when set.
	MeterProvider metric.MeterProvider

	// EnableServerTiming adds a Server-Timing response header breaking
	// down time spent parsing the query.
	EnableServerTiming bool
}

// Option configures a Config.
type Option func(*Config)

// WithQueryParam overrides the default "query" parameter name.
func WithQueryParam(name string) Option {
	return func(c *Config) { c.QueryParam = name }
}

// WithTracerProvider enables otelhttp instrumentation for requests this
// middleware wraps.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *Config) { c.TracerProvider = tp }
}

// WithMeterProvider enables otelhttp's built-in request metrics for
// requests this middleware wraps.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(c *Config) { c.MeterProvider = mp }
}

// WithServerTiming enables the Server-Timing response header.
func WithServerTiming() Option {
	return func(c *Config) { c.EnableServerTiming = true }
}

func newConfig(opts ...Option) *Config {
	cfg := &Config{QueryParam: "query"}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Middleware returns HTTP middleware that parses the configured query
// parameter on every request and attaches the outcome to the request
// context for handlers to read via ParsedQueryFromContext and
// QueryParamsFromContext.
func Middleware(opts ...Option) func(http.Handler) http.Handler {
	cfg := newConfig(opts...)

	return func(next http.Handler) http.Handler {
		var handler http.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get("X-Request-Id")
			if requestID == "" {
				requestID = uuid.NewString()
			}

			timing := servertiming.FromContext(r.Context())

			params := r.URL.Query()
			queryArgs := make(map[string][]string, len(params))
			for k, v := range params {
				if k == cfg.QueryParam {
					continue
				}
				queryArgs[k] = v
			}

			ctx := withQueryParams(r.Context(), queryArgs)

			if raw := params.Get(cfg.QueryParam); raw != "" {
				var metric *servertiming.Metric
				if timing != nil {
					metric = timing.NewMetric("nestql.parse").WithDesc("compile query expression").Start()
				}

				doc, err := nestql.Parse(raw)
				if metric != nil {
					metric.Stop()
				}

				if err != nil {
					obslog.Debug("query parse failed",
						zap.String("request_id", requestID),
						zap.Error(err),
					)
					ctx = withParsedQuery(ctx, nil)
				} else {
					ctx = withParsedQuery(ctx, doc)
				}
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})

		if cfg.EnableServerTiming {
			handler = servertiming.Middleware(handler, nil)
		}

		if cfg.TracerProvider != nil || cfg.MeterProvider != nil {
			return otelhttp.NewHandler(handler, "nestql.http",
				otelhttp.WithTracerProvider(cfg.TracerProvider),
				otelhttp.WithMeterProvider(cfg.MeterProvider),
			)
		}
		return handler
	}
}
