// Package httpapi exposes the strength analyzer and password generator over
// a JSON HTTP API. All scoring happens in pkg/strength; this layer only
// decodes requests and encodes reports.
package httpapi

import (
	"net/http"

	"github.com/VictoriaMetrics/metrics"
	"github.com/gorilla/mux"

	"github.com/forest6511/pwdctl/pkg/strength"
)

// Request counters exposed on /metrics.
var (
	analyzeRequests  = metrics.NewCounter(`pwdctl_http_requests_total{path="/analyze"}`)
	generateRequests = metrics.NewCounter(`pwdctl_http_requests_total{path="/generate"}`)
)

// Server routes analysis and generation requests to the engine.
type Server struct {
	analyzer *strength.Analyzer
	router   *mux.Router
}

// NewServer creates an HTTP server around an analyzer with the given
// calibration. A nil calibration selects the defaults.
func NewServer(cal *strength.Calibration) *Server {
	s := &Server{
		analyzer: strength.NewAnalyzer(cal),
		router:   mux.NewRouter(),
	}

	s.router.HandleFunc("/", s.handleIndex).Methods("GET")
	s.router.HandleFunc("/analyze", s.handleAnalyze).Methods("POST")
	s.router.HandleFunc("/generate", s.handleGenerate).Methods("GET")
	s.router.HandleFunc("/metrics", s.handleMetrics).Methods("GET")

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handleMetrics(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	metrics.WritePrometheus(w, true)
}
