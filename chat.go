package main

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Chat endpoints. The strict endpoint is the deterministic command router;
// the AI endpoint calls the completion gateway and falls back to the router
// when the upstream degrades. Both always answer 200 with a non-empty reply
// so the widget never has to special-case transport errors.

type chatRequest struct {
	Message string `json:"message"`
}

type aiChatRequest struct {
	Message string                `json:"message"`
	History []ConversationMessage `json:"history"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

const askMePrompt = "Ask me about Adrian's projects, stack, or contact.\n\nType `help` to see all commands."

func handleChat(c *gin.Context) {
	var req chatRequest
	// Malformed body degrades to the help text via routeIntent("").
	_ = c.ShouldBindJSON(&req)
	c.JSON(http.StatusOK, chatResponse{Reply: routeIntent(req.Message)})
}

func handleAIChat(assistant *Assistant, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("ai-chat handler panicked", zap.Any("panic", r), zap.Stack("stack"))
				c.JSON(http.StatusOK, chatResponse{Reply: technicalIssueMessage(langEnglish)})
			}
		}()

		var req aiChatRequest
		if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Message) == "" {
			c.JSON(http.StatusOK, chatResponse{Reply: askMePrompt})
			return
		}

		lang := detectLanguage(req.Message)
		if assistant == nil {
			logger.Warn("assistant not configured, GROQ_API_KEY missing")
			c.JSON(http.StatusOK, chatResponse{Reply: technicalIssueMessage(lang)})
			return
		}

		raw, err := assistant.Complete(c.Request.Context(), req.Message, req.History)
		if err != nil {
			c.JSON(http.StatusOK, chatResponse{Reply: completionFailureReply(req.Message, lang, err, logger)})
			return
		}

		c.JSON(http.StatusOK, chatResponse{Reply: postProcessReply(raw)})
	}
}

// completionFailureReply turns an upstream failure into a user-facing reply.
// Rate limits surface a localized wait message, auth/config problems a
// generic technical notice; everything else re-routes the original message
// through the strict command router so the user still gets an answer.
func completionFailureReply(message, lang string, err error, logger *zap.Logger) string {
	switch classifyUpstreamError(err) {
	case upstreamRateLimited:
		logger.Warn("completion rate limited", zap.Error(err))
		return rateLimitMessage(lang, retryAfterHint(err))
	case upstreamAuthFailed:
		logger.Error("completion auth failure", zap.Error(err))
		return technicalIssueMessage(lang)
	default:
		logger.Warn("completion failed, falling back to command router", zap.Error(err))
		return routeIntent(message)
	}
}
