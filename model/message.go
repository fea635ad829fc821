package model

import (
	"fmt"
	"time"

	"github.com/Alphiii2005/alphabot-live/platform"
	"gorm.io/gorm"
)

// SenderUser is the sender tag for the human side of a transcript. The
// assistant side is tagged with the channel's assistant name.
const SenderUser = "user"

// Message is one immutable turn in a per-user, per-channel transcript.
// Rows are only ever created, bulk-read and bulk-deleted; there is no
// update path. Retrieval order is created_at with the auto-increment id
// breaking timestamp ties, i.e. insertion order.
type Message struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint      `json:"user_id" gorm:"not null;index:idx_user_id_channel_created_at"`
	Channel   string    `json:"channel" gorm:"type:varchar(64);not null;index:idx_user_id_channel_created_at"`
	Sender    string    `gorm:"type:varchar(64);not null" json:"sender"`
	Text      string    `gorm:"type:text" json:"text"`
	CreatedAt time.Time `json:"created_at" gorm:"index:idx_user_id_channel_created_at"`
}

func AppendMessage(userID uint, channel, sender, text string) error {
	db := platform.DB
	msg := Message{UserID: userID, Channel: channel, Sender: sender, Text: text}
	if err := db.Create(&msg).Error; err != nil {
		return fmt.Errorf("failed to append message: %w", err)
	}
	return nil
}

// AppendExchange stores one user turn and the assistant reply to it as a
// single transaction, so a transcript never ends up with a dangling user
// line whose completion was lost.
func AppendExchange(userID uint, channel, userText, assistantSender, reply string) error {
	db := platform.DB
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&Message{UserID: userID, Channel: channel, Sender: SenderUser, Text: userText}).Error; err != nil {
			return err
		}
		return tx.Create(&Message{UserID: userID, Channel: channel, Sender: assistantSender, Text: reply}).Error
	})
	if err != nil {
		return fmt.Errorf("failed to append exchange: %w", err)
	}
	return nil
}

// History returns the full transcript for one (user, channel) pair, oldest
// first. Other channels of the same user are never touched.
func History(userID uint, channel string) ([]Message, error) {
	db := platform.DB
	var messages []Message
	err := db.Where("user_id = ? AND channel = ?", userID, channel).
		Order("created_at ASC, id ASC").
		Find(&messages).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch history: %w", err)
	}
	return messages, nil
}

// ResetChannel deletes the transcript for one (user, channel) pair. A reset
// of an already-empty channel is a no-op.
func ResetChannel(userID uint, channel string) error {
	db := platform.DB
	if err := db.Where("user_id = ? AND channel = ?", userID, channel).Delete(&Message{}).Error; err != nil {
		return fmt.Errorf("failed to reset channel: %w", err)
	}
	return nil
}
