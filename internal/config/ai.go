package config

import (
	"sync"
)

const (
	AIProviderOpenAI = "openai"
	AIProviderGemini = "gemini"
)

type AIConfig struct {
	Provider string
}

var (
	aiConfig *AIConfig
	aiOnce   sync.Once
)

func LoadAIConfig() *AIConfig {
	aiOnce.Do(func() {
		aiConfig = &AIConfig{
			Provider: getEnv("AI_PROVIDER", AIProviderOpenAI),
		}
	})
	return aiConfig
}
