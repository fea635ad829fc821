package model

import (
	"testing"
	"time"

	"github.com/Alphiii2005/alphabot-live/platform"
)

func TestAppendAndHistorySingleTurn(t *testing.T) {
	setupTestDB(t)
	owner := seedUser(t, "alice")

	if err := AppendMessage(owner.ID, "chat", SenderUser, "hi"); err != nil {
		t.Fatalf("AppendMessage: %v", err)
	}

	history, err := History(owner.ID, "chat")
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("History: len=%d, want 1", len(history))
	}
	if history[0].Sender != SenderUser || history[0].Text != "hi" {
		t.Fatalf("History: got %s/%q", history[0].Sender, history[0].Text)
	}
}

func TestHistoryInsertionOrder(t *testing.T) {
	setupTestDB(t)
	owner := seedUser(t, "alice")

	texts := []string{"one", "two", "three", "four"}
	for _, text := range texts {
		if err := AppendMessage(owner.ID, "chat", SenderUser, text); err != nil {
			t.Fatalf("AppendMessage(%q): %v", text, err)
		}
	}

	history, err := History(owner.ID, "chat")
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(history) != len(texts) {
		t.Fatalf("History: len=%d, want %d", len(history), len(texts))
	}
	for i, text := range texts {
		if history[i].Text != text {
			t.Fatalf("History[%d]=%q, want %q", i, history[i].Text, text)
		}
	}
}

func TestHistoryBreaksTimestampTiesByInsertionOrder(t *testing.T) {
	setupTestDB(t)
	owner := seedUser(t, "alice")

	// Same created_at on every row; only the auto-increment id can order them.
	ts := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for _, text := range []string{"first", "second", "third"} {
		msg := Message{UserID: owner.ID, Channel: "chat", Sender: SenderUser, Text: text, CreatedAt: ts}
		if err := platform.DB.Create(&msg).Error; err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	history, err := History(owner.ID, "chat")
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	want := []string{"first", "second", "third"}
	for i := range want {
		if history[i].Text != want[i] {
			t.Fatalf("History[%d]=%q, want %q", i, history[i].Text, want[i])
		}
	}
}

func TestChannelsAndOwnersAreIsolated(t *testing.T) {
	setupTestDB(t)
	alice := seedUser(t, "alice")
	bob := seedUser(t, "bob")

	if err := AppendMessage(alice.ID, "chat", SenderUser, "alice chat"); err != nil {
		t.Fatalf("AppendMessage: %v", err)
	}
	if err := AppendMessage(alice.ID, "coder", SenderUser, "alice coder"); err != nil {
		t.Fatalf("AppendMessage: %v", err)
	}
	if err := AppendMessage(bob.ID, "chat", SenderUser, "bob chat"); err != nil {
		t.Fatalf("AppendMessage: %v", err)
	}

	history, err := History(alice.ID, "chat")
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(history) != 1 || history[0].Text != "alice chat" {
		t.Fatalf("History(alice, chat): %+v", history)
	}

	history, err = History(bob.ID, "coder")
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(history) != 0 {
		t.Fatalf("History(bob, coder): len=%d, want 0", len(history))
	}
}

func TestResetChannelLeavesOtherChannelsAlone(t *testing.T) {
	setupTestDB(t)
	owner := seedUser(t, "alice")

	if err := AppendMessage(owner.ID, "chat", SenderUser, "chat line"); err != nil {
		t.Fatalf("AppendMessage: %v", err)
	}
	if err := AppendMessage(owner.ID, "coder", SenderUser, "coder line"); err != nil {
		t.Fatalf("AppendMessage: %v", err)
	}

	if err := ResetChannel(owner.ID, "chat"); err != nil {
		t.Fatalf("ResetChannel: %v", err)
	}

	history, err := History(owner.ID, "chat")
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(history) != 0 {
		t.Fatalf("History(chat) after reset: len=%d, want 0", len(history))
	}

	history, err = History(owner.ID, "coder")
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(history) != 1 || history[0].Text != "coder line" {
		t.Fatalf("History(coder) after chat reset: %+v", history)
	}
}

func TestResetChannelIsIdempotent(t *testing.T) {
	setupTestDB(t)
	owner := seedUser(t, "alice")

	if err := ResetChannel(owner.ID, "chat"); err != nil {
		t.Fatalf("ResetChannel on empty channel: %v", err)
	}
	if err := ResetChannel(owner.ID, "chat"); err != nil {
		t.Fatalf("ResetChannel second call: %v", err)
	}
}

func TestAppendExchangeWritesBothRowsInOrder(t *testing.T) {
	setupTestDB(t)
	owner := seedUser(t, "alice")

	if err := AppendExchange(owner.ID, "chat", "hello there", "AlphaBot", "hi!"); err != nil {
		t.Fatalf("AppendExchange: %v", err)
	}

	history, err := History(owner.ID, "chat")
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("History: len=%d, want 2", len(history))
	}
	if history[0].Sender != SenderUser || history[0].Text != "hello there" {
		t.Fatalf("History[0]: %s/%q", history[0].Sender, history[0].Text)
	}
	if history[1].Sender != "AlphaBot" || history[1].Text != "hi!" {
		t.Fatalf("History[1]: %s/%q", history[1].Sender, history[1].Text)
	}
}

func TestProfileCreatedWithUser(t *testing.T) {
	setupTestDB(t)
	owner := seedUser(t, "alice")

	profile, err := GetProfile(owner.ID)
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if profile.UserID != owner.ID {
		t.Fatalf("profile.UserID=%d, want %d", profile.UserID, owner.ID)
	}
}
