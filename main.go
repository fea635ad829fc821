package main

import (
	"time"

	"github.com/Alphiii2005/alphabot-live/controller"
	"github.com/Alphiii2005/alphabot-live/model"
	"github.com/Alphiii2005/alphabot-live/platform"
	"github.com/Alphiii2005/alphabot-live/service"

	_uuid "github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
)

// CORSMiddleware ...
// CORS (Cross-Origin Resource Sharing)
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "http://localhost")
		c.Writer.Header().Set("Access-Control-Max-Age", "86400")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE, UPDATE")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "X-Requested-With, Content-Type, Origin, Authorization, Accept, Client-Security-Token, Accept-Encoding, x-access-token")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Content-Length")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(200)
		} else {
			c.Next()
		}
	}
}

// RequestIDMiddleware ...
// Generate a unique ID and attach it to each request for future reference or use
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		uuid := _uuid.New()
		c.Writer.Header().Set("X-Request-Id", uuid.String())
		c.Set("requestId", uuid.String())
		c.Next()
	}
}

func LogMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery
		if raw != "" {
			path = path + "?" + raw
		}

		c.Next()

		latency := time.Since(start)

		status := c.Writer.Status()
		clientIP := c.ClientIP()
		method := c.Request.Method
		userAgent := c.Request.UserAgent()
		requestId := c.GetString("requestId")

		platform.Logger.Infof(
			" [%s] %d | %v | %s | %s | %s | %s ",
			requestId,
			status,
			latency,
			clientIP,
			method,
			path,
			userAgent,
		)
	}
}

var auth = new(controller.AuthController)

// TokenAuthMiddleware ...
// JWT Authentication middleware attached to each request that needs to be authenitcated to
// validate the access_token in the header
func TokenAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		auth.TokenValid(c)
		c.Next()
	}
}

func main() {
	//Load the .env file
	if err := godotenv.Load(".env"); err != nil {
		platform.Logger.Warn("failed to load the env file")
	}
	cfg := platform.LoadConfig()

	r := gin.Default()
	r.Use(CORSMiddleware())
	r.Use(RequestIDMiddleware())
	r.Use(LogMiddleware())

	//init database
	platform.InitDB(cfg)
	model.InstallDB()

	platform.InitLLMClient(cfg)
	controller.Init(cfg)

	v1 := r.Group("/v1")
	{
		user := new(controller.UserController)
		v1.POST("/user/register", user.Register)
		v1.POST("/user/login", user.Login)
		v1.GET("/user/logout", TokenAuthMiddleware(), user.Logout)
		v1.GET("/user/profile", TokenAuthMiddleware(), user.GetProfile)
		v1.PUT("/user/profile", TokenAuthMiddleware(), user.UpdateProfile)

		//Refresh the token
		v1.POST("/token/refresh", auth.Refresh)

		// Transcript-backed channels
		chat := new(controller.ChatController)
		v1.POST("/chat", TokenAuthMiddleware(), chat.NewMessage(service.ChannelChat))
		v1.POST("/chat/reset", TokenAuthMiddleware(), chat.Reset(service.ChannelChat))
		v1.GET("/chat/history", TokenAuthMiddleware(), chat.History(service.ChannelChat))
		v1.POST("/coder", TokenAuthMiddleware(), chat.NewMessage(service.ChannelCoder))
		v1.POST("/coder/reset", TokenAuthMiddleware(), chat.Reset(service.ChannelCoder))
		v1.GET("/coder/history", TokenAuthMiddleware(), chat.History(service.ChannelCoder))

		// One-shot assistants
		assistant := new(controller.AssistantController)
		v1.POST("/cv/generate", TokenAuthMiddleware(), assistant.GenerateCV)
		v1.POST("/content/generate", TokenAuthMiddleware(), assistant.GenerateContent)
		v1.POST("/script/generate", TokenAuthMiddleware(), assistant.GenerateScript)
		v1.POST("/paraphrase", assistant.Paraphrase)
	}

	c := cron.New()
	c.AddFunc("17 3 * * *", func() {
		service.PurgeRevokedTokensTask()
	})
	c.Start()

	platform.Logger.Infof("Server started on port %s", cfg.Port)
	r.Run(":" + cfg.Port)
}
