// Package telegram adapts the solving pipeline to a Telegram bot: photos
// come in, routed answers go out, with a Postgres-backed cache keyed by
// image hash.
package telegram

import (
	"context"
	"log"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"snapsolve/api/internal/classify"
	"snapsolve/api/internal/solve"
	"snapsolve/api/internal/store"
)

// cacheMaxAge bounds how long a routed answer stays valid in the cache.
const cacheMaxAge = 24 * time.Hour

type Router struct {
	Bot    *tgbotapi.BotAPI
	Solver *solve.Router

	// Answers is optional; nil disables caching.
	Answers *store.AnswerRepo

	// Engine and Model identify the remote backend in cache keys.
	Engine string
	Model  string
}

func (r *Router) HandleUpdate(upd tgbotapi.Update) {
	if upd.Message == nil {
		return
	}
	if upd.Message.IsCommand() {
		r.handleCommand(upd)
		return
	}
	if len(upd.Message.Photo) > 0 {
		r.acceptPhoto(*upd.Message)
		return
	}
	if txt := strings.TrimSpace(upd.Message.Text); txt != "" {
		r.acceptText(upd.Message.Chat.ID, txt)
		return
	}
	r.send(upd.Message.Chat.ID, "Send a photo of a problem, or type it as text.")
}

func (r *Router) handleCommand(upd tgbotapi.Update) {
	cid := upd.Message.Chat.ID
	switch upd.Message.Command() {
	case "start":
		r.send(cid, "Send a photo of a math, text or visual problem and I will "+
			"recognize it, figure out what kind it is and answer.\nCommands: /health")
	case "health":
		r.send(cid, "OK")
	default:
		r.send(cid, "Unknown command")
	}
}

// acceptText runs the typed problem straight through classification and
// routing, skipping OCR.
func (r *Router) acceptText(cid int64, text string) {
	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	ans, err := r.Solver.Route(ctx, classify.Classify(text), text, nil)
	if err != nil {
		r.SendError(cid, err)
		return
	}
	ans.Recognized = text
	r.send(cid, FormatAnswer(ans))
}

func (r *Router) send(cid int64, text string) {
	msg := tgbotapi.NewMessage(cid, text)
	if _, err := r.Bot.Send(msg); err != nil {
		log.Printf("telegram send: %v", err)
	}
}

func (r *Router) SendError(cid int64, err error) {
	r.send(cid, "Something went wrong: "+err.Error())
}
