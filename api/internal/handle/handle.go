package handle

import (
	"encoding/json"
	"net/http"

	"snapsolve/api/internal/solve"
)

type Handle struct {
	router *solve.Router
}

func New(router *solve.Router) *Handle {
	return &Handle{
		router: router,
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
