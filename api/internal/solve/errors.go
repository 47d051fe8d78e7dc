package solve

import (
	"context"
	"errors"
	"fmt"
)

// ErrBackendUnavailable means the remote AI backend is not configured (no
// credential, or the credential is a known placeholder). The remote path
// is skipped silently; this is not a failure of the request.
var ErrBackendUnavailable = errors.New("ai backend not configured")

// ErrNLPUnavailable means no local NLP model was loaded at startup.
var ErrNLPUnavailable = errors.New("nlp model not loaded")

// BackendError is a failed call to a remote collaborator: network error,
// non-2xx, timeout, or a response whose shape could not be interpreted.
// Timeout is distinguished so the router falls back instead of hanging.
type BackendError struct {
	Backend string
	Timeout bool
	Err     error
}

func (e *BackendError) Error() string {
	if e.Timeout {
		return fmt.Sprintf("%s: timed out: %v", e.Backend, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Backend, e.Err)
}

func (e *BackendError) Unwrap() error { return e.Err }

// AsBackendError wraps err for a named backend, marking deadline
// expiration as a timeout.
func AsBackendError(backend string, err error) *BackendError {
	return &BackendError{
		Backend: backend,
		Timeout: errors.Is(err, context.DeadlineExceeded),
		Err:     err,
	}
}
