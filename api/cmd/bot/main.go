package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver

	"snapsolve/api/internal/config"
	"snapsolve/api/internal/gemini"
	"snapsolve/api/internal/nlp"
	"snapsolve/api/internal/solve"
	"snapsolve/api/internal/store"
	"snapsolve/api/internal/telegram"
	"snapsolve/api/internal/visual"
)

func main() {
	cfg := config.Load()

	if p := strings.TrimSpace(os.Getenv("PORT")); p != "" {
		cfg.Port = p
	} else if strings.TrimSpace(cfg.Port) == "" {
		cfg.Port = "8080"
	}

	// --- Postgres (optional: no DSN, no cache) ---
	var answers *store.AnswerRepo
	var db *sql.DB
	if dsn := strings.TrimSpace(cfg.DatabaseURL); dsn != "" {
		var err error
		db, err = sql.Open("pgx", dsn)
		if err != nil {
			log.Fatalf("sql.Open: %v", err)
		}
		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(10)
		db.SetConnMaxLifetime(1 * time.Hour)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := db.PingContext(ctx); err != nil {
			log.Fatalf("db.Ping: %v", err)
		}
		answers = store.NewAnswerRepo(db)
		if err := answers.EnsureSchema(ctx); err != nil {
			log.Fatalf("ensure schema: %v", err)
		}
		cancel()
		log.Printf("answer cache enabled")
	} else {
		log.Printf("DATABASE_URL not set: answer cache disabled")
	}

	// --- Solving pipeline ---
	eng := gemini.New(cfg.GeminiAPIKey, cfg.GeminiModel)
	avail := solve.Availability{AIConfigured: eng.Configured()}

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

	solver := &solve.Router{
		Avail:  avail,
		OCR:    ocr,
		NLP:    analyzer,
		Remote: remote,
		Visual: &visual.Analyzer{Describer: desc},
	}

	// --- Telegram bot ---
	bot, err := tgbotapi.NewBotAPI(cfg.MustTelegramToken())
	if err != nil {
		log.Fatal(err)
	}
	bot.Debug = false
	log.Printf("authorized as @%s", bot.Self.UserName)

	r := &telegram.Router{
		Bot:     bot,
		Solver:  solver,
		Answers: answers,
		Engine:  eng.Name(),
		Model:   cfg.GeminiModel,
	}

	// healthz for the platform probe
	go func() {
		http.HandleFunc("/healthz", func(w http.ResponseWriter, req *http.Request) {
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			if db != nil {
				ctx, cancel := context.WithTimeout(req.Context(), 2*time.Second)
				defer cancel()
				if err := db.PingContext(ctx); err != nil {
					w.WriteHeader(http.StatusServiceUnavailable)
					_, _ = w.Write([]byte("db: not ok\n" + err.Error()))
					return
				}
			}
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
		})
		log.Fatal(http.ListenAndServe("0.0.0.0:"+cfg.Port, nil))
	}()

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	for upd := range bot.GetUpdatesChan(u) {
		go r.HandleUpdate(upd)
	}
}
