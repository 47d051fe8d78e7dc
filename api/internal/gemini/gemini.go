// Package gemini implements the remote collaborators — OCR, text problem
// solving and visual description — on the Gemini API.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"snapsolve/api/internal/util"
)

// placeholderKeys are credential values that mean "not configured".
var placeholderKeys = map[string]struct{}{
	"YOUR_GEMINI_API_KEY": {},
	"GEMINI_API_KEY":      {},
}

const ocrPrompt = "Extract all visible text from this image. " +
	"Output the text content directly, with no extra explanation or labels."

const describePrompt = "Describe the contents of this image, focusing on " +
	"shapes, patterns, sequences and spatial relationships that could form " +
	"a visual puzzle. Output a short analysis, no preamble."

type Engine struct {
	APIKey string
	Model  string
}

func New(apiKey, model string) *Engine {
	return &Engine{
		APIKey: strings.TrimSpace(apiKey),
		Model:  strings.TrimSpace(model),
	}
}

func (e *Engine) Name() string { return "gemini" }

// Configured reports whether a usable credential is present. A known
// placeholder value counts as absent.
func (e *Engine) Configured() bool {
	if e == nil || e.APIKey == "" {
		return false
	}
	_, placeholder := placeholderKeys[e.APIKey]
	return !placeholder
}

// ExtractText runs OCR over an image artifact.
func (e *Engine) ExtractText(ctx context.Context, image []byte) (string, error) {
	parts := []genai.Part{
		genai.Text(ocrPrompt),
		&genai.Blob{MIMEType: util.PickMIME("", "", image), Data: image},
	}
	// low temperature for deterministic transcription
	return e.generate(ctx, 0.1, parts)
}

// SolveText asks the backend to solve a text problem with worked steps.
func (e *Engine) SolveText(ctx context.Context, problem string) (string, error) {
	prompt := "Solve the following problem. Give the key steps and the " +
		"final answer.\n\nProblem: " + problem + "\n\nSolution:"
	return e.generate(ctx, 0.7, []genai.Part{genai.Text(prompt)})
}

// DescribeImage produces a visual-puzzle oriented description of an image.
func (e *Engine) DescribeImage(ctx context.Context, image []byte) (string, error) {
	parts := []genai.Part{
		genai.Text(describePrompt),
		&genai.Blob{MIMEType: util.PickMIME("", "", image), Data: image},
	}
	return e.generate(ctx, 0.4, parts)
}

func (e *Engine) generate(ctx context.Context, temperature float32, parts []genai.Part) (string, error) {
	if !e.Configured() {
		return "", errors.New("GEMINI_API_KEY is empty or a placeholder")
	}
	cl, err := genai.NewClient(ctx, option.WithAPIKey(e.APIKey))
	if err != nil {
		return "", err
	}
	defer cl.Close()

	m := cl.GenerativeModel(e.Model)
	if m == nil {
		return "", fmt.Errorf("gemini: model is nil")
	}
	m.GenerationConfig = genai.GenerationConfig{
		Temperature: ptrFloat32(temperature),
	}

	// retries for 5xx and transient failures
	var lastErr error
	for attempt := 1; attempt <= 3; attempt++ {
		resp, err := m.GenerateContent(ctx, parts...)
		if err != nil {
			lastErr = err
			if ctx.Err() != nil {
				break
			}
			time.Sleep(time.Duration(attempt) * 300 * time.Millisecond)
			continue
		}
		txt := firstText(resp)
		if txt == "" {
			return "", fmt.Errorf("gemini: empty response")
		}
		return util.StripCodeFences(txt), nil
	}
	return "", lastErr
}

func firstText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	for _, c := range resp.Candidates {
		if c.Content == nil {
			continue
		}
		for _, p := range c.Content.Parts {
			if t, ok := p.(genai.Text); ok {
				return string(t)
			}
		}
	}
	return ""
}

func ptrFloat32(v float32) *float32 { return &v }
