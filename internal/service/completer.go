package service

import (
	"context"
	"errors"
)

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

var ErrEmptyCompletion = errors.New("no response from LLM")

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// CompletionRequest leaves MaxTokens at zero and Temperature nil to use the
// provider defaults.
type CompletionRequest struct {
	Messages    []Message
	MaxTokens   int
	Temperature *float32
}

// Completer issues exactly one chat-completion call and returns the trimmed
// text of the first choice.
type Completer interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}
