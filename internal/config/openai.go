package config

import (
	"os"
	"sync"
)

type OpenAIConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

var (
	openAIConfig *OpenAIConfig
	openAIOnce   sync.Once
)

// LoadOpenAIConfig also covers OpenAI-compatible gateways such as OpenRouter
// through OPENAI_BASE_URL.
func LoadOpenAIConfig() *OpenAIConfig {
	openAIOnce.Do(func() {
		openAIConfig = &OpenAIConfig{
			APIKey:  os.Getenv("OPENAI_API_KEY"),
			BaseURL: getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
			Model:   getEnv("OPENAI_MODEL", "gpt-4"),
		}
	})
	return openAIConfig
}
