package main

import (
	"log"
	"net/http"
	"os"
	"strings"

	"snapsolve/api/internal/config"
	"snapsolve/api/internal/gemini"
	handle "snapsolve/api/internal/handle"
	"snapsolve/api/internal/nlp"
	"snapsolve/api/internal/solve"
	"snapsolve/api/internal/visual"
)

func main() {
	cfg := config.Load()

	if p := strings.TrimSpace(os.Getenv("PORT")); p != "" {
		cfg.Port = p
	} else if strings.TrimSpace(cfg.Port) == "" {
		cfg.Port = "8000"
	}

	router := buildRouter(cfg)

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	h := handle.New(router)
	mux.HandleFunc("/v1/classify", h.Classify)
	mux.HandleFunc("/v1/solve", h.Solve)

	addr := ":" + cfg.Port
	log.Printf("snapsolve listening on %s", addr)
	log.Fatal(http.ListenAndServe(addr, mux))
}

func buildRouter(cfg *config.Config) *solve.Router {
	eng := gemini.New(cfg.GeminiAPIKey, cfg.GeminiModel)

	avail := solve.Availability{AIConfigured: eng.Configured()}
	if !avail.AIConfigured {
		log.Printf("gemini key missing or placeholder: remote paths disabled")
	}

	var analyzer solve.TextAnalyzer
	if a, err := nlp.New(); err != nil {
		log.Printf("nlp disabled: %v", err)
	} else {
		analyzer = a
		avail.NLPLoaded = true
	}

	var (
		ocr    solve.OCRService
		remote solve.RemoteSolver
		desc   visual.Describer
	)
	if avail.AIConfigured {
		ocr, remote, desc = eng, eng, eng
	}

	return &solve.Router{
		Avail:  avail,
		OCR:    ocr,
		NLP:    analyzer,
		Remote: remote,
		Visual: &visual.Analyzer{Describer: desc},
	}
}
