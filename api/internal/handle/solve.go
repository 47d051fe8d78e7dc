package handle

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"snapsolve/api/internal/classify"
	"snapsolve/api/internal/solve"
	"snapsolve/api/internal/util"
)

// --- SOLVE -------------------------------------------------------------------

type solveReq struct {
	// Text is a pre-recognized problem; Image is base64 (plain or data URL).
	// At least one must be present.
	Text  string `json:"text,omitempty"`
	Image string `json:"image,omitempty"`

	// Type optionally forces the routing path: "math" | "text" | "visual".
	// Empty means classify automatically.
	Type string `json:"type,omitempty"`
}

func (h *Handle) Solve(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "POST only", http.StatusMethodNotAllowed)
		return
	}
	var req solveReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json: "+err.Error(), http.StatusBadRequest)
		return
	}

	var image []byte
	if strings.TrimSpace(req.Image) != "" {
		b, _, err := util.DecodeBase64MaybeDataURL(req.Image)
		if err != nil {
			http.Error(w, "bad image: "+err.Error(), http.StatusBadRequest)
			return
		}
		image = b
	}
	if image == nil && strings.TrimSpace(req.Text) == "" {
		http.Error(w, "text or image is required", http.StatusBadRequest)
		return
	}

	deadline := 90 * time.Second
	if ts := r.URL.Query().Get("timeoutSec"); ts != "" {
		if v, _ := strconv.Atoi(ts); v > 0 {
			deadline = time.Duration(v) * time.Second
		}
	}
	ctx, cancel := context.WithTimeout(r.Context(), deadline)
	defer cancel()

	override, err := parseType(req.Type)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ans, err := h.dispatch(ctx, req.Text, image, override)
	if err != nil {
		http.Error(w, "solve error: "+err.Error(), http.StatusBadGateway)
		return
	}
	writeJSON(w, http.StatusOK, ans)
}

// dispatch picks between the full pipeline and the explicit-type paths.
func (h *Handle) dispatch(ctx context.Context, text string, image []byte, override classify.ProblemType) (solve.Answer, error) {
	switch {
	case override != "":
		if text == "" && image != nil && h.router.OCR != nil {
			out, err := h.router.OCR.ExtractText(ctx, image)
			if err == nil && !strings.HasPrefix(strings.TrimSpace(out), solve.ErrorMarker) {
				text = out
			}
		}
		ans, err := h.router.Route(ctx, override, text, image)
		ans.Recognized = text
		return ans, err
	case image != nil:
		return h.router.Process(ctx, image)
	default:
		ans, err := h.router.Route(ctx, classify.Classify(text), text, nil)
		ans.Recognized = text
		return ans, err
	}
}

func parseType(s string) (classify.ProblemType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return "", nil
	case "math":
		return classify.Math, nil
	case "text":
		return classify.Text, nil
	case "visual":
		return classify.Visual, nil
	}
	return "", &badTypeError{s}
}

type badTypeError struct{ v string }

func (e *badTypeError) Error() string {
	return "unknown type " + strconv.Quote(e.v) + ": want math | text | visual"
}
