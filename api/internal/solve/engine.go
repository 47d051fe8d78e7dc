// Package solve is the decision layer between the classifier and the
// external collaborators: it owns no wire formats and performs no I/O of
// its own, only ordering and fallback.
package solve

import "context"

// ErrorMarker prefixes collaborator responses that denote failure.
// A response carrying it must never be treated as content or as an answer.
const ErrorMarker = "ERROR:"

// OCRService extracts text from an image artifact. An empty string is a
// valid "no content" result.
type OCRService interface {
	ExtractText(ctx context.Context, image []byte) (string, error)
}

// RemoteSolver answers a text problem through a remote AI backend.
type RemoteSolver interface {
	SolveText(ctx context.Context, problem string) (string, error)
}

// TextAnalyzer is the local NLP collaborator.
type TextAnalyzer interface {
	Analyze(text string) (string, error)
}

// VisualAnalyzer produces a descriptive analysis of an image artifact.
type VisualAnalyzer interface {
	Analyze(ctx context.Context, image []byte) (string, error)
}

// Availability captures which optional collaborators were initialized at
// process start. It is immutable afterwards; routing degrades gracefully
// around whatever is missing.
type Availability struct {
	NLPLoaded    bool
	AIConfigured bool
}
