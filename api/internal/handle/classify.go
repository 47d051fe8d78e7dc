package handle

import (
	"encoding/json"
	"net/http"

	"snapsolve/api/internal/classify"
)

// --- CLASSIFY ----------------------------------------------------------------

type classifyReq struct {
	Text string `json:"text"`
}

type classifyResp struct {
	ProblemType classify.ProblemType `json:"problem_type"`
	Features    classify.Features    `json:"features"`
}

func (h *Handle) Classify(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "POST only", http.StatusMethodNotAllowed)
		return
	}
	var req classifyReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json: "+err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, classifyResp{
		ProblemType: classify.Classify(req.Text),
		Features:    classify.Extract(req.Text),
	})
}
