package service

import (
	"fmt"
	"strings"

	"github.com/Alphiii2005/alphabot-live/model"
	"github.com/openai/openai-go"
)

// PromptMessage is one role-tagged unit of a provider request.
type PromptMessage struct {
	Role    openai.ChatCompletionMessageParamRole `json:"role"`
	Content string                                `json:"content"`
}

// Channel describes one independent conversation bucket: which model serves
// it, the assistant identity stored in its transcript, and the fixed
// instructions sent with every turn.
type Channel struct {
	Name      string
	Model     string
	Assistant string
	System    string
	Persona   string
}

var (
	ChannelChat = Channel{
		Name:      "chat",
		Model:     "meta-llama/llama-4-maverick:free",
		Assistant: "AlphaBot",
		System:    "You are AlphaBot, a friendly assistant who helps with anything. You were created by Alphin a single person",
		Persona:   "You are AlphaBot 🤖, a friendly and helpful assistant.",
	}

	ChannelCoder = Channel{
		Name:      "coder",
		Model:     "deepseek/deepseek-chat:free",
		Assistant: "AlphaBot",
		System:    "You are AlphaBot, a coding genius who helps with anything related to coding in python, javascript or something else.",
		Persona:   "You are AlphaBot 🤖, a coding assistant.",
	}
)

// Assemble builds the provider message list for one turn: the channel's
// system instruction, then a single user unit carrying the persona preamble,
// the full serialized transcript and the new line. The whole history is
// resent verbatim on every turn; nothing is truncated or summarized, so the
// output is a pure function of its inputs.
func Assemble(ch Channel, history []model.Message, userText string) []PromptMessage {
	lines := make([]string, 0, len(history))
	for _, m := range history {
		lines = append(lines, fmt.Sprintf("%s: %s", m.Sender, m.Text))
	}

	prompt := fmt.Sprintf("%s Chat history:\n%s\nUser: %s",
		ch.Persona, strings.Join(lines, "\n"), userText)

	return []PromptMessage{
		{Role: openai.ChatCompletionMessageParamRoleSystem, Content: ch.System},
		{Role: openai.ChatCompletionMessageParamRoleUser, Content: prompt},
	}
}
