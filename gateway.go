package main

import (
	"context"
	"errors"
	"os"
	"regexp"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"github.com/tmc/langchaingo/schema"
	"go.uber.org/zap"
)

// Completion gateway: one outbound chat-completion call per invocation,
// against Groq's OpenAI-compatible endpoint. No retries, no internal timeout;
// the request lifetime bounds the call.

const (
	completionBaseURL = "https://api.groq.com/openai/v1"
	completionModel   = "llama-3.1-8b-instant"
	maxHistory        = 10
)

type ConversationMessage struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

type Assistant struct {
	llm    llms.Model
	logger *zap.Logger
}

var errEmptyCompletion = errors.New("completion returned no content")

// newAssistant builds the gateway from GROQ_API_KEY. A missing key is not
// fatal for the site; the AI endpoint degrades to the strict router.
func newAssistant(logger *zap.Logger) (*Assistant, error) {
	key := os.Getenv("GROQ_API_KEY")
	if key == "" {
		return nil, errors.New("GROQ_API_KEY not set")
	}

	llm, err := openai.New(
		openai.WithToken(key),
		openai.WithBaseURL(completionBaseURL),
		openai.WithModel(completionModel),
	)
	if err != nil {
		return nil, err
	}
	return &Assistant{llm: llm, logger: logger}, nil
}

// Complete sends system prompt + context, the trailing history and the new
// user message, and returns the raw assistant text. Callers guard against an
// empty message; history beyond the last 10 entries is dropped silently.
func (a *Assistant) Complete(ctx context.Context, message string, history []ConversationMessage) (string, error) {
	if len(history) > maxHistory {
		history = history[len(history)-maxHistory:]
	}

	msgs := make([]llms.MessageContent, 0, len(history)+2)
	msgs = append(msgs, llms.TextParts(schema.ChatMessageTypeSystem, systemPrompt+"\n\nCONTEXT:\n"+buildContext()))
	for _, m := range history {
		role := schema.ChatMessageTypeHuman
		if m.Role == "assistant" {
			role = schema.ChatMessageTypeAI
		}
		msgs = append(msgs, llms.TextParts(role, m.Content))
	}
	msgs = append(msgs, llms.TextParts(schema.ChatMessageTypeHuman, message))

	resp, err := a.llm.GenerateContent(ctx, msgs,
		llms.WithTemperature(0.2),
		llms.WithMaxTokens(600),
	)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Content) == "" {
		return "", errEmptyCompletion
	}
	return resp.Choices[0].Content, nil
}

// Upstream error taxonomy, classified from the error text since the client
// library folds the HTTP status and body into the error string.

type upstreamErrorKind int

const (
	upstreamUnknown upstreamErrorKind = iota
	upstreamRateLimited
	upstreamAuthFailed
	upstreamBadRequest
)

var retryAfterRe = regexp.MustCompile(`(?i)try again in ([0-9]+(?:\.[0-9]+)?(?:ms|s|m|h)(?:[0-9.]+(?:ms|s|m|h))*)`)

func classifyUpstreamError(err error) upstreamErrorKind {
	if err == nil {
		return upstreamUnknown
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "429") || strings.Contains(msg, "rate limit") || strings.Contains(msg, "rate_limit"):
		return upstreamRateLimited
	case strings.Contains(msg, "401") || strings.Contains(msg, "403") ||
		strings.Contains(msg, "invalid api key") || strings.Contains(msg, "unauthorized") ||
		strings.Contains(msg, "authentication"):
		return upstreamAuthFailed
	case strings.Contains(msg, "400") || strings.Contains(msg, "invalid request") || strings.Contains(msg, "invalid_request"):
		return upstreamBadRequest
	default:
		return upstreamUnknown
	}
}

// retryAfterHint pulls a human-readable wait duration out of a rate-limit
// error body ("Please try again in 2m59.56s"), or "" when absent.
func retryAfterHint(err error) string {
	if err == nil {
		return ""
	}
	if m := retryAfterRe.FindStringSubmatch(err.Error()); m != nil {
		return m[1]
	}
	return ""
}
