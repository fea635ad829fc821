package controller

import (
	"net/http"

	"github.com/Alphiii2005/alphabot-live/apperr"
	"github.com/Alphiii2005/alphabot-live/platform"
	"github.com/Alphiii2005/alphabot-live/service"
	"github.com/gin-gonic/gin"
)

var logger = platform.Logger

var (
	userService      *service.UserService
	chatService      *service.ChatService
	assistantService *service.AssistantService
)

// Init wires the controllers to their services. Must run after the platform
// clients exist.
func Init(cfg *platform.Config) {
	gateway := service.NewCompletionGateway(platform.LLMClient, cfg.LLMAPIKey, cfg.LLMTimeout)
	userService = service.NewUserService(service.NewMailer(cfg))
	chatService = service.NewChatService(gateway)
	assistantService = service.NewAssistantService(gateway)
}

// currentUserID reads the identity placed in the context by the token
// middleware. A missing identity means the request bypassed the middleware
// or the token was invalid.
func currentUserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get("UserId")
	if !ok {
		return 0, false
	}
	id, ok := v.(int64)
	if !ok || id <= 0 {
		return 0, false
	}
	return uint(id), true
}

func abortUnauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
}

// abortWithError maps a taxonomy error onto its HTTP status and the
// uniform {"error": ...} body.
func abortWithError(c *gin.Context, err error) {
	e := apperr.From(err)
	logger.Warnf("[%s] %s: %s", c.GetString("requestId"), e.Kind, e.Error())

	msg := e.Error()
	switch e.Kind {
	case apperr.Timeout:
		msg = "API timeout"
	case apperr.StorageError:
		msg = "Server error"
	}
	c.JSON(e.Status, gin.H{"error": msg})
}
