package telegram

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func (r *Router) acceptPhoto(msg tgbotapi.Message) {
	cid := msg.Chat.ID
	// largest size is last
	ph := msg.Photo[len(msg.Photo)-1]
	file, err := r.Bot.GetFile(tgbotapi.FileConfig{FileID: ph.FileID})
	if err != nil {
		r.SendError(cid, err)
		return
	}
	url := fmt.Sprintf("https://api.telegram.org/file/bot%s/%s", r.Bot.Token, file.FilePath)
	image, err := download(url)
	if err != nil {
		r.SendError(cid, err)
		return
	}

	r.send(cid, "Got the photo, working on it.")
	go r.processPhoto(cid, image)
}

func (r *Router) processPhoto(cid int64, image []byte) {
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	sum := sha256.Sum256(image)
	hash := hex.EncodeToString(sum[:])

	if r.Answers != nil {
		if ans, err := r.Answers.Find(ctx, hash, r.Engine, r.Model, cacheMaxAge); err == nil {
			r.send(cid, FormatAnswer(ans))
			return
		} else if !errors.Is(err, sql.ErrNoRows) {
			log.Printf("answer cache lookup: %v", err)
		}
	}

	ans, err := r.Solver.Process(ctx, image)
	if err != nil {
		r.SendError(cid, err)
		return
	}
	r.send(cid, FormatAnswer(ans))

	if r.Answers != nil {
		if err := r.Answers.Upsert(ctx, hash, r.Engine, r.Model, ans); err != nil {
			log.Printf("answer cache upsert: %v", err)
		}
	}
}

func download(url string) ([]byte, error) {
	cl := &http.Client{Timeout: 30 * time.Second}
	resp, err := cl.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download photo: status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
