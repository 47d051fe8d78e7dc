package solve

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"snapsolve/api/internal/classify"
	"snapsolve/api/internal/mathsolve"
)

// ErrEmptyInput means a math or text solver was asked to work without any
// recognized text. Empty OCR output is routed to Visual by design; this
// error only surfaces when an explicit type override bypasses that.
var ErrEmptyInput = errors.New("no recognized text")

// Router wires a classified problem to the collaborator that answers it.
// All fields are set once at startup; a nil collaborator combined with the
// matching Availability flag degrades the corresponding path.
type Router struct {
	Avail  Availability
	OCR    OCRService
	NLP    TextAnalyzer
	Remote RemoteSolver
	Visual VisualAnalyzer
}

// Answer is the routed outcome of one request. Failures of individual
// strategies are folded into the error, not into the answer.
type Answer struct {
	Type       classify.ProblemType `json:"type"`
	Source     string               `json:"source"`
	Recognized string               `json:"recognized_text,omitempty"`
	Text       string               `json:"text,omitempty"`
	Equation   string               `json:"equation,omitempty"`
	Solutions  []string             `json:"solutions,omitempty"`
	Note       string               `json:"note,omitempty"`
}

// Process runs the full pipeline for one image: OCR, classification,
// routing. OCR failures and error-marked OCR responses are treated as
// "no content", which the classifier routes to the visual path.
func (r *Router) Process(ctx context.Context, image []byte) (Answer, error) {
	var text string
	if r.OCR != nil {
		out, err := r.OCR.ExtractText(ctx, image)
		switch {
		case err != nil:
			log.Printf("ocr failed, treating as no content: %v", err)
		case strings.HasPrefix(strings.TrimSpace(out), ErrorMarker):
			log.Printf("ocr returned error marker, treating as no content")
		default:
			text = out
		}
	}
	pt := classify.Classify(text)
	ans, err := r.Route(ctx, pt, text, image)
	ans.Recognized = text
	return ans, err
}

// Route dispatches one problem of a known type. image may be nil for pure
// text requests; it is only consulted on the visual path.
func (r *Router) Route(ctx context.Context, pt classify.ProblemType, text string, image []byte) (Answer, error) {
	switch pt {
	case classify.Math:
		if strings.TrimSpace(text) == "" {
			return Answer{Type: pt}, fmt.Errorf("math path: %w", ErrEmptyInput)
		}
		res, err := mathsolve.Solve(text)
		if err != nil {
			return Answer{Type: pt}, err
		}
		return Answer{
			Type:      pt,
			Source:    "symbolic",
			Equation:  res.Equation,
			Solutions: res.Solutions,
			Note:      res.Note,
		}, nil
	case classify.Text:
		if strings.TrimSpace(text) == "" {
			return Answer{Type: pt}, fmt.Errorf("text path: %w", ErrEmptyInput)
		}
		return r.routeText(ctx, text)
	default:
		if r.Visual == nil {
			return Answer{Type: classify.Visual}, errors.New("visual analyzer not available")
		}
		out, err := r.Visual.Analyze(ctx, image)
		if err != nil {
			return Answer{Type: classify.Visual}, err
		}
		return Answer{Type: classify.Visual, Source: "visual", Text: out}, nil
	}
}

// strategy is one step of the text-path fallback chain: it either returns
// an answer or a typed failure the next step recovers from.
type strategy struct {
	name string
	run  func(ctx context.Context) (string, error)
}

// routeText tries the remote AI backend before local NLP when the problem
// looks too complex for the knowledge base — CJK-dominant, a long
// digit-bearing word problem, or simply many words — and falls back on the
// backend's explicit failure signal. Exhausting every strategy yields one
// combined diagnostic.
func (r *Router) routeText(ctx context.Context, text string) (Answer, error) {
	f := classify.Extract(text)
	preferRemote := f.CJKRatio > 0.5 ||
		(f.HasDigit && f.Length > 50) ||
		f.WordCount > 7

	var chain []strategy
	if preferRemote && r.Avail.AIConfigured && r.Remote != nil {
		chain = append(chain, strategy{"remote-ai", func(ctx context.Context) (string, error) {
			out, err := r.Remote.SolveText(ctx, text)
			if err != nil {
				return "", AsBackendError("remote-ai", err)
			}
			if strings.HasPrefix(strings.TrimSpace(out), ErrorMarker) {
				return "", &BackendError{Backend: "remote-ai", Err: errors.New(strings.TrimSpace(out))}
			}
			return out, nil
		}})
	}
	if r.Avail.NLPLoaded && r.NLP != nil {
		chain = append(chain, strategy{"nlp", func(ctx context.Context) (string, error) {
			return r.NLP.Analyze(text)
		}})
	}
	if len(chain) == 0 {
		return Answer{Type: classify.Text}, errors.Join(ErrNLPUnavailable, ErrBackendUnavailable)
	}

	var failures []error
	for _, s := range chain {
		out, err := s.run(ctx)
		if err == nil {
			return Answer{Type: classify.Text, Source: s.name, Text: out}, nil
		}
		log.Printf("text path: %s failed: %v", s.name, err)
		failures = append(failures, err)
	}
	return Answer{Type: classify.Text}, errors.Join(failures...)
}
