package controller

import (
	"net/http"

	"github.com/Alphiii2005/alphabot-live/service"
	"github.com/gin-gonic/gin"
)

// AssistantController exposes the stateless single-shot features.
type AssistantController struct{}

func (a AssistantController) GenerateCV(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		abortUnauthorized(c)
		return
	}

	var req service.CVRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON data"})
		return
	}

	result, err := assistantService.GenerateCV(c.Request.Context(), &req)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (a AssistantController) GenerateContent(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		abortUnauthorized(c)
		return
	}

	var input struct {
		Topic     string `json:"topic"`
		SourceURL string `json:"source_url"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	content, err := assistantService.GenerateContent(c.Request.Context(), input.Topic, input.SourceURL)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"response": content})
}

func (a AssistantController) GenerateScript(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		abortUnauthorized(c)
		return
	}

	var input struct {
		Prompt string `json:"prompt"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No prompt provided"})
		return
	}

	script, err := assistantService.GenerateScript(c.Request.Context(), input.Prompt)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"response": script})
}

// Paraphrase is open to unauthenticated callers.
func (a AssistantController) Paraphrase(c *gin.Context) {
	var input struct {
		Message string `json:"message"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No input provided."})
		return
	}

	paraphrased, err := assistantService.Paraphrase(c.Request.Context(), input.Message)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"response": paraphrased})
}
