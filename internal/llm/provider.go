package llm

import (
	"context"
	"errors"
)

var (
	// ErrInvalidInput means a required prompt input was empty.
	ErrInvalidInput = errors.New("missing required input")
	// ErrUpstream means the completion endpoint was unreachable, refused the
	// call, or no credential is configured. Never retried automatically.
	ErrUpstream = errors.New("completion endpoint failure")
	// ErrMalformedResponse means the endpoint answered but the body was empty
	// or not the JSON the contract requires.
	ErrMalformedResponse = errors.New("malformed completion response")
)

type CallOptions struct {
	Temperature float64
	JSONMode    bool
}

// Completer sends a system instruction and a prompt to a chat-completion
// endpoint and returns the raw text response. Tests substitute a stub.
type Completer interface {
	Complete(ctx context.Context, system, prompt string, opts CallOptions) (string, error)
}
