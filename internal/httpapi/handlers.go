package httpapi

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/forest6511/pwdctl/pkg/generator"
)

//go:embed index.html
var indexHTML []byte

// maxGenerateLength bounds the length query parameter so a single request
// cannot force an arbitrarily large allocation.
const maxGenerateLength = 256

// analyzeRequest is the POST /analyze request body.
type analyzeRequest struct {
	Password string `json:"password"`
}

// generateResponse is the GET /generate response body.
type generateResponse struct {
	Password string `json:"password"`
	Length   int    `json:"length"`
}

type errPayload struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, status int, code, msg string) {
	var e errPayload
	e.Error.Code = code
	e.Error.Message = msg
	writeJSON(w, status, e)
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(indexHTML)
}

// handleAnalyze analyzes a password and returns the full report. A missing
// password is a client error; the engine itself never fails.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	analyzeRequests.Inc()

	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, "bad_request", "invalid JSON body")
		return
	}
	if req.Password == "" {
		writeErr(w, http.StatusBadRequest, "password_required", "password is required")
		return
	}

	writeJSON(w, http.StatusOK, s.analyzer.Analyze(req.Password))
}

// handleGenerate produces a random password. Query parameters: length
// (default 16, capped at 256) and the class toggles lower/upper/digits/symbols
// (default true), plus exclude for characters to strip.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	generateRequests.Inc()

	q := r.URL.Query()

	length := 16
	if raw := q.Get("length"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeErr(w, http.StatusBadRequest, "bad_request", "length must be an integer")
			return
		}
		length = n
	}
	if length > maxGenerateLength {
		writeErr(w, http.StatusBadRequest, "invalid_configuration",
			fmt.Sprintf("length must not exceed %d", maxGenerateLength))
		return
	}

	var opts generator.Options
	var err error
	if opts.Lower, err = queryBool(q.Get("lower"), true); err != nil {
		writeErr(w, http.StatusBadRequest, "bad_request", "lower must be a boolean")
		return
	}
	if opts.Upper, err = queryBool(q.Get("upper"), true); err != nil {
		writeErr(w, http.StatusBadRequest, "bad_request", "upper must be a boolean")
		return
	}
	if opts.Digits, err = queryBool(q.Get("digits"), true); err != nil {
		writeErr(w, http.StatusBadRequest, "bad_request", "digits must be a boolean")
		return
	}
	if opts.Symbols, err = queryBool(q.Get("symbols"), true); err != nil {
		writeErr(w, http.StatusBadRequest, "bad_request", "symbols must be a boolean")
		return
	}
	opts.Exclude = q.Get("exclude")

	password, err := generator.Generate(length, opts)
	if err != nil {
		if errors.Is(err, generator.ErrInvalidConfig) {
			writeErr(w, http.StatusBadRequest, "invalid_configuration", err.Error())
			return
		}
		writeErr(w, http.StatusInternalServerError, "internal", "failed to generate password")
		return
	}

	writeJSON(w, http.StatusOK, generateResponse{Password: password, Length: length})
}

func queryBool(raw string, def bool) (bool, error) {
	if raw == "" {
		return def, nil
	}
	return strconv.ParseBool(raw)
}
