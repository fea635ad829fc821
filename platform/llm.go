package platform

import (
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

var (
	LLMClient *openai.Client
)

// InitLLMClient builds the shared provider client. Retries are disabled:
// every feature here is user-interactive, a failed completion is surfaced
// immediately rather than replayed.
func InitLLMClient(cfg *Config) {
	LLMClient = NewLLMClient(cfg)
}

func NewLLMClient(cfg *Config) *openai.Client {
	return openai.NewClient(
		option.WithBaseURL(cfg.LLMBaseURL),
		option.WithAPIKey(cfg.LLMAPIKey),
		option.WithMaxRetries(0),
	)
}
