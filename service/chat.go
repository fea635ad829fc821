package service

import (
	"context"
	"strings"

	"github.com/Alphiii2005/alphabot-live/apperr"
	"github.com/Alphiii2005/alphabot-live/model"
	"github.com/Alphiii2005/alphabot-live/platform"
)

var logger = platform.Logger

// ChatService orchestrates one transcript-backed channel turn: load the
// history, assemble the prompt, call the provider, and persist the exchange
// only once the provider has answered. A failed completion leaves the
// transcript exactly as it was.
type ChatService struct {
	gateway *CompletionGateway
}

func NewChatService(gateway *CompletionGateway) *ChatService {
	return &ChatService{gateway: gateway}
}

func (s *ChatService) SendMessage(ctx context.Context, userID uint, ch Channel, text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", apperr.BadRequestf("Message required")
	}

	history, err := model.History(userID, ch.Name)
	if err != nil {
		return "", apperr.Storage(err)
	}

	messages := Assemble(ch, history, text)
	reply, err := s.gateway.Complete(ctx, ch.Model, messages, 0)
	if err != nil {
		return "", err
	}

	if err := model.AppendExchange(userID, ch.Name, text, ch.Assistant, reply); err != nil {
		return "", apperr.Storage(err)
	}
	return reply, nil
}

func (s *ChatService) History(userID uint, ch Channel) ([]model.Message, error) {
	history, err := model.History(userID, ch.Name)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	return history, nil
}

func (s *ChatService) Reset(userID uint, ch Channel) error {
	if err := model.ResetChannel(userID, ch.Name); err != nil {
		return apperr.Storage(err)
	}
	return nil
}
