package service

import (
	"reflect"
	"testing"

	"github.com/Alphiii2005/alphabot-live/model"
	"github.com/openai/openai-go"
)

func TestAssembleShape(t *testing.T) {
	history := []model.Message{
		{Sender: "user", Text: "hi"},
		{Sender: "AlphaBot", Text: "hello!"},
	}

	messages := Assemble(ChannelChat, history, "how are you?")
	if len(messages) != 2 {
		t.Fatalf("len=%d, want 2", len(messages))
	}
	if messages[0].Role != openai.ChatCompletionMessageParamRoleSystem {
		t.Fatalf("messages[0].Role=%s, want system", messages[0].Role)
	}
	if messages[0].Content != ChannelChat.System {
		t.Fatalf("messages[0].Content=%q", messages[0].Content)
	}
	if messages[1].Role != openai.ChatCompletionMessageParamRoleUser {
		t.Fatalf("messages[1].Role=%s, want user", messages[1].Role)
	}

	want := ChannelChat.Persona + " Chat history:\nuser: hi\nAlphaBot: hello!\nUser: how are you?"
	if messages[1].Content != want {
		t.Fatalf("messages[1].Content=\n%q\nwant\n%q", messages[1].Content, want)
	}
}

func TestAssembleEmptyHistory(t *testing.T) {
	messages := Assemble(ChannelCoder, nil, "write a loop")

	want := ChannelCoder.Persona + " Chat history:\n\nUser: write a loop"
	if messages[1].Content != want {
		t.Fatalf("content=%q, want %q", messages[1].Content, want)
	}
}

func TestAssembleIsDeterministic(t *testing.T) {
	history := []model.Message{
		{Sender: "user", Text: "explain goroutines"},
		{Sender: "AlphaBot", Text: "they are lightweight threads"},
		{Sender: "user", Text: "and channels?"},
	}

	first := Assemble(ChannelCoder, history, "show an example")
	second := Assemble(ChannelCoder, history, "show an example")
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("assembly not deterministic:\n%v\n%v", first, second)
	}
}

func TestAssembleDoesNotTruncateHistory(t *testing.T) {
	history := make([]model.Message, 200)
	for i := range history {
		history[i] = model.Message{Sender: "user", Text: "turn"}
	}

	messages := Assemble(ChannelChat, history, "next")
	content := messages[1].Content
	count := 0
	for i := 0; i+len("user: turn") <= len(content); i++ {
		if content[i:i+len("user: turn")] == "user: turn" {
			count++
		}
	}
	if count != 200 {
		t.Fatalf("serialized %d turns, want 200", count)
	}
}
