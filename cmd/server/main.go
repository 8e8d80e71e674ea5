// Command server is a minimal demo host standing in for the Flask/FastAPI
// application the original middleware always assumed existed. It mounts
// internal/httpmw and echoes whatever it parsed from the "query"
// parameter.
package main

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/nestql/nestql/internal/httpmw"
	"github.com/nestql/nestql/internal/obslog"
)

func searchHandler(w http.ResponseWriter, r *http.Request) {
	doc, ok := httpmw.ParsedQueryFromContext(r.Context())
	w.Header().Set("Content-Type", "application/json")

	if !ok {
		json.NewEncoder(w).Encode(map[string]any{"error": "Invalid query"})
		return
	}
	json.NewEncoder(w).Encode(doc)
}

func main() {
	mux := http.NewServeMux()
	mux.HandleFunc("/search", searchHandler)

	handler := httpmw.Middleware(httpmw.WithServerTiming())(mux)

	addr := ":8080"
	obslog.Debug("starting demo server", zap.String("addr", addr))
	if err := http.ListenAndServe(addr, handler); err != nil {
		obslog.Warn("server exited", zap.Error(err))
	}
}
