package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forest6511/pwdctl/pkg/strength"
)

func doRequest(t *testing.T, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	server := NewServer(nil)
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)
	return rec
}

func TestHandleAnalyze(t *testing.T) {
	rec := doRequest(t, http.MethodPost, "/analyze", `{"password":"Tr0ub4dor&3"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var report strength.Report
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))

	assert.GreaterOrEqual(t, report.Score, 0)
	assert.LessOrEqual(t, report.Score, 100)
	assert.NotEmpty(t, report.Tier)
	assert.Greater(t, report.EntropyBits, 0.0)
	assert.Equal(t, 11, report.Length)
	assert.NotNil(t, report.Findings)
}

func TestHandleAnalyze_CommonPassword(t *testing.T) {
	rec := doRequest(t, http.MethodPost, "/analyze", `{"password":"password"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var report strength.Report
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))

	assert.True(t, report.IsCommonPassword)
	assert.LessOrEqual(t, report.Score, 10)
	assert.Equal(t, strength.TierVeryWeak, report.Tier)
}

func TestHandleAnalyze_MissingPassword(t *testing.T) {
	rec := doRequest(t, http.MethodPost, "/analyze", `{"password":""}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var e errPayload
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &e))
	assert.Equal(t, "password_required", e.Error.Code)
}

func TestHandleAnalyze_InvalidJSON(t *testing.T) {
	rec := doRequest(t, http.MethodPost, "/analyze", `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleGenerate(t *testing.T) {
	rec := doRequest(t, http.MethodGet, "/generate?length=24", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp generateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Password, 24)
	assert.Equal(t, 24, resp.Length)
}

func TestHandleGenerate_DefaultLength(t *testing.T) {
	rec := doRequest(t, http.MethodGet, "/generate", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp generateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Password, 16)
}

func TestHandleGenerate_ClassToggles(t *testing.T) {
	rec := doRequest(t, http.MethodGet, "/generate?length=64&symbols=false&upper=false", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp generateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	for _, c := range resp.Password {
		assert.True(t, (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9'),
			"unexpected character %q with symbols and uppercase disabled", c)
	}
}

func TestHandleGenerate_InvalidConfiguration(t *testing.T) {
	tests := []struct {
		name   string
		target string
	}{
		{"zero length", "/generate?length=0"},
		{"negative length", "/generate?length=-3"},
		{"non-numeric length", "/generate?length=abc"},
		{"all classes disabled", "/generate?lower=false&upper=false&digits=false&symbols=false"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, http.MethodGet, tt.target, "")
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

// Oversized lengths are rejected outright rather than allocated.
func TestHandleGenerate_LengthCap(t *testing.T) {
	rec := doRequest(t, http.MethodGet, "/generate?length=2000000000", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var e errPayload
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &e))
	assert.Equal(t, "invalid_configuration", e.Error.Code)

	rec = doRequest(t, http.MethodGet, "/generate?length=257", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// The cap itself is allowed.
	rec = doRequest(t, http.MethodGet, "/generate?length=256", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp generateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Password, 256)
}

func TestHandleGenerate_InvalidToggle(t *testing.T) {
	for _, target := range []string{
		"/generate?symbols=flase",
		"/generate?lower=yes",
		"/generate?upper=2",
		"/generate?digits=nope",
	} {
		rec := doRequest(t, http.MethodGet, target, "")
		require.Equal(t, http.StatusBadRequest, rec.Code, "target %s", target)

		var e errPayload
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &e))
		assert.Equal(t, "bad_request", e.Error.Code)
	}
}

func TestHandleIndex(t *testing.T) {
	rec := doRequest(t, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "Password Strength Analyzer")
}

func TestHandleMetrics(t *testing.T) {
	// Bump a counter first so it is present in the output.
	doRequest(t, http.MethodPost, "/analyze", `{"password":"x"}`)

	rec := doRequest(t, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "pwdctl_http_requests_total")
}
