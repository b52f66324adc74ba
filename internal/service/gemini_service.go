package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fadilmartias/job-tracker/internal/config"
	"google.golang.org/genai"
)

type GeminiService struct {
	Client         *genai.Client
	Model          string
	RequestTimeout time.Duration
}

func NewGeminiService(ctx context.Context, cfg *config.GeminiConfig) (*GeminiService, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY not set")
	}

	clientConfig := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}
	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &GeminiService{
		Client:         client,
		Model:          cfg.Model,
		RequestTimeout: 90 * time.Second,
	}, nil
}

// Complete maps system messages onto the system instruction and the rest onto
// conversation contents. A failed call is returned as is.
func (s *GeminiService) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	genConfig := &genai.GenerateContentConfig{
		Temperature: req.Temperature,
	}
	if req.MaxTokens > 0 {
		genConfig.MaxOutputTokens = int32(req.MaxTokens)
	}

	var (
		contents []*genai.Content
		system   []string
	)
	for _, m := range req.Messages {
		switch m.Role {
		case RoleSystem:
			system = append(system, m.Content)
		case RoleAssistant:
			contents = append(contents, genai.NewContentFromText(m.Content, genai.RoleModel))
		default:
			contents = append(contents, genai.NewContentFromText(m.Content, genai.RoleUser))
		}
	}
	if len(contents) == 0 {
		return "", fmt.Errorf("prompt cannot be empty")
	}
	if len(system) > 0 {
		genConfig.SystemInstruction = genai.NewContentFromText(strings.Join(system, "\n\n"), genai.RoleUser)
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, s.RequestTimeout)
	defer cancel()

	result, err := s.Client.Models.GenerateContent(timeoutCtx, s.Model, contents, genConfig)
	if err != nil {
		return "", fmt.Errorf("generate content failed: %w", err)
	}
	if err := validateGenerateResponse(result); err != nil {
		return "", fmt.Errorf("invalid response: %w", err)
	}

	text := strings.TrimSpace(result.Text())
	if text == "" {
		return "", ErrEmptyCompletion
	}
	return text, nil
}

func validateGenerateResponse(resp *genai.GenerateContentResponse) error {
	if resp == nil {
		return fmt.Errorf("response is nil")
	}
	if len(resp.Candidates) == 0 {
		return fmt.Errorf("no candidates in response")
	}
	if resp.Candidates[0].Content == nil {
		return fmt.Errorf("candidate content is nil")
	}
	if len(resp.Candidates[0].Content.Parts) == 0 {
		return fmt.Errorf("no parts in content")
	}
	return nil
}
