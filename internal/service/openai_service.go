package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fadilmartias/job-tracker/internal/config"
	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

// OpenAIService talks to any OpenAI-compatible chat completions endpoint.
type OpenAIService struct {
	client *resty.Client
	model  string
}

func NewOpenAIService(cfg *config.OpenAIConfig) (*OpenAIService, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY not set")
	}
	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetAuthToken(cfg.APIKey).
		SetHeader("Content-Type", "application/json").
		SetTimeout(2 * time.Minute)
	return &OpenAIService{client: client, model: cfg.Model}, nil
}

func (s *OpenAIService) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	body := map[string]any{
		"model":    s.model,
		"messages": req.Messages,
	}
	if req.MaxTokens > 0 {
		body["max_tokens"] = req.MaxTokens
	}
	if req.Temperature != nil {
		body["temperature"] = *req.Temperature
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(body).
		Post("/chat/completions")
	if err != nil {
		return "", err
	}
	if resp.IsError() {
		msg := gjson.Get(resp.String(), "error.message").String()
		if msg == "" {
			msg = resp.Status()
		}
		return "", fmt.Errorf("completion API returned %d: %s", resp.StatusCode(), msg)
	}

	text := strings.TrimSpace(gjson.Get(resp.String(), "choices.0.message.content").String())
	if text == "" {
		return "", ErrEmptyCompletion
	}
	return text, nil
}
