package service

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/Alphiii2005/alphabot-live/apperr"
	"github.com/openai/openai-go"
)

// CompletionGateway performs the single outbound call to the LLM provider
// and maps every outcome onto the apperr taxonomy. It persists nothing and
// never retries. One timeout applies to every channel.
type CompletionGateway struct {
	client  *openai.Client
	apiKey  string
	timeout time.Duration
}

func NewCompletionGateway(client *openai.Client, apiKey string, timeout time.Duration) *CompletionGateway {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &CompletionGateway{client: client, apiKey: apiKey, timeout: timeout}
}

// Complete sends the assembled messages to the provider and returns the
// reply text of the first completion choice. A temperature of 0 leaves the
// provider default in place.
func (g *CompletionGateway) Complete(ctx context.Context, model string, messages []PromptMessage, temperature float64) (string, error) {
	if g.apiKey == "" {
		return "", apperr.Config("OpenRouter API key not set")
	}

	params := openai.ChatCompletionNewParams{
		Messages: openai.F([]openai.ChatCompletionMessageParamUnion{}),
		Model:    openai.F(model),
	}
	if temperature > 0 {
		params.Temperature = openai.F(temperature)
	}
	for _, message := range messages {
		var content any = message.Content
		params.Messages.Value = append(params.Messages.Value, openai.ChatCompletionMessageParam{
			Role:    openai.F(message.Role),
			Content: openai.F(content),
		})
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	completion, err := g.client.Chat.Completions.New(ctx, params)
	if err != nil {
		if isTimeout(err) {
			return "", apperr.TimedOut(err)
		}
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			return "", apperr.Provider(apiErr.StatusCode, providerDetail(apiErr))
		}
		return "", apperr.Provider(0, err.Error())
	}

	if len(completion.Choices) == 0 {
		return "", apperr.Malformed("provider returned no completion choices")
	}
	return completion.Choices[0].Message.Content, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func providerDetail(apiErr *openai.Error) string {
	detail := fmt.Sprintf("API Error %d", apiErr.StatusCode)
	if apiErr.Message != "" {
		detail += ": " + apiErr.Message
	}
	return detail
}
