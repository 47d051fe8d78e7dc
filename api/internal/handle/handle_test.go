package handle

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snapsolve/api/internal/solve"
)

func newTestHandle() *Handle {
	return New(&solve.Router{})
}

func postJSON(t *testing.T, h http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	w := httptest.NewRecorder()
	h(w, req)
	return w
}

func TestClassifyEndpoint(t *testing.T) {
	h := newTestHandle()
	tests := []struct {
		name string
		text string
		want string
	}{
		{"question", "What is the capital of France?", "text"},
		{"equation", "2x - 4 = 0", "math"},
		{"empty", "", "visual"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(t, h.Classify, `{"text":`+jsonString(tt.text)+`}`)
			require.Equal(t, http.StatusOK, w.Code)

			var resp struct {
				ProblemType string `json:"problem_type"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.want, resp.ProblemType)
		})
	}
}

func TestClassifyMethodNotAllowed(t *testing.T) {
	h := newTestHandle()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	h.Classify(w, req)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestSolveEndpointMathText(t *testing.T) {
	h := newTestHandle()
	w := postJSON(t, h.Solve, `{"text":"2x - 4 = 0"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var ans solve.Answer
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ans))
	assert.Equal(t, "symbolic", ans.Source)
	assert.Equal(t, []string{"2"}, ans.Solutions)
	assert.Equal(t, "2x - 4 = 0", ans.Recognized)
}

func TestSolveEndpointTypeOverride(t *testing.T) {
	h := newTestHandle()
	// OCR-glyph arithmetic classifies as visual on its own; the override
	// forces the math path, which normalizes the glyphs away
	w := postJSON(t, h.Solve, `{"text":"2×3 − 1","type":"math"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var ans solve.Answer
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ans))
	assert.Equal(t, "symbolic", ans.Source)
	assert.Equal(t, "constant expression, value 5", ans.Note)
}

func TestSolveEndpointBadRequests(t *testing.T) {
	h := newTestHandle()
	tests := []struct {
		name string
		body string
	}{
		{"no input", `{}`},
		{"broken json", `{`},
		{"bad base64", `{"image":"???not-base64???"}`},
		{"unknown type", `{"text":"x","type":"audio"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(t, h.Solve, tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func jsonString(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}
