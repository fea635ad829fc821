package controller

import (
	"net/http"

	"github.com/Alphiii2005/alphabot-live/service"
	"github.com/gin-gonic/gin"
)

// ChatController exposes the transcript-backed channels. Each channel gets
// the same three handlers bound to its own profile.
type ChatController struct{}

type chatRequest struct {
	Message string `json:"message"`
}

type historyEntry struct {
	Sender string `json:"sender"`
	Text   string `json:"text"`
}

// NewMessage handles one channel turn: authenticate, validate, complete,
// persist, reply.
func (ch ChatController) NewMessage(channel service.Channel) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			abortUnauthorized(c)
			return
		}

		var input chatRequest
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Message required"})
			return
		}

		reply, err := chatService.SendMessage(c.Request.Context(), userID, channel, input.Message)
		if err != nil {
			abortWithError(c, err)
			return
		}

		logger.Infof("[%s] Completed %s turn for user %d", c.GetString("requestId"), channel.Name, userID)
		c.JSON(http.StatusOK, gin.H{"response": reply})
	}
}

func (ch ChatController) Reset(channel service.Channel) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			abortUnauthorized(c)
			return
		}

		if err := chatService.Reset(userID, channel); err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "Chat reset."})
	}
}

func (ch ChatController) History(channel service.Channel) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			abortUnauthorized(c)
			return
		}

		messages, err := chatService.History(userID, channel)
		if err != nil {
			abortWithError(c, err)
			return
		}

		history := make([]historyEntry, 0, len(messages))
		for _, m := range messages {
			history = append(history, historyEntry{Sender: m.Sender, Text: m.Text})
		}
		c.JSON(http.StatusOK, gin.H{"history": history})
	}
}
