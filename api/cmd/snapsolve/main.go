// snapsolve is the command-line entry: solve one problem from an image
// file or from text and print the routed answer as JSON.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"snapsolve/api/internal/classify"
	"snapsolve/api/internal/config"
	"snapsolve/api/internal/gemini"
	"snapsolve/api/internal/imagesrc"
	"snapsolve/api/internal/nlp"
	"snapsolve/api/internal/solve"
	"snapsolve/api/internal/visual"
)

func main() {
	var (
		imagePath = flag.String("image", "", "path to a problem photo")
		text      = flag.String("text", "", "problem text (skips OCR)")
		typ       = flag.String("type", "", "force routing: math | text | visual")
	)
	flag.Parse()

	if *imagePath == "" && *text == "" {
		fmt.Fprintln(os.Stderr, "usage: snapsolve -image photo.jpg | -text \"2x - 4 = 0\" [-type math]")
		os.Exit(2)
	}

	cfg := config.Load()
	router := buildRouter(cfg)

	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	var image []byte
	if *imagePath != "" {
		b, mime, err := imagesrc.LoadFile(*imagePath)
		if err != nil {
			log.Fatal(err)
		}
		log.Printf("loaded %s (%s, %d bytes)", *imagePath, mime, len(b))
		image = b
	}

	ans, err := run(ctx, router, *text, image, *typ)
	if err != nil {
		log.Fatal(err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(ans)
}

func run(ctx context.Context, router *solve.Router, text string, image []byte, typ string) (solve.Answer, error) {
	if typ != "" {
		pt, err := parseType(typ)
		if err != nil {
			return solve.Answer{}, err
		}
		if text == "" && image != nil && router.OCR != nil {
			if out, err := router.OCR.ExtractText(ctx, image); err == nil {
				text = out
			}
		}
		ans, err := router.Route(ctx, pt, text, image)
		ans.Recognized = text
		return ans, err
	}
	if image != nil {
		return router.Process(ctx, image)
	}
	ans, err := router.Route(ctx, classify.Classify(text), text, nil)
	ans.Recognized = text
	return ans, err
}

func parseType(s string) (classify.ProblemType, error) {
	switch s {
	case "math":
		return classify.Math, nil
	case "text":
		return classify.Text, nil
	case "visual":
		return classify.Visual, nil
	}
	return "", fmt.Errorf("unknown type %q: want math | text | visual", s)
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
