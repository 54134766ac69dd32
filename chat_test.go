package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func postJSON(t *testing.T, r *gin.Engine, path, body string) (*httptest.ResponseRecorder, chatResponse) {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	var resp chatResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func newChatRouter(assistant *Assistant) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/chat", handleChat)
	r.POST("/api/ai-chat", handleAIChat(assistant, zap.NewNop()))
	return r
}

func TestHandleChat(t *testing.T) {
	r := newChatRouter(nil)

	t.Run("routes strict commands", func(t *testing.T) {
		w, resp := postJSON(t, r, "/api/chat", `{"message":"projects"}`)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, listAll(), resp.Reply)
	})

	t.Run("missing message yields help", func(t *testing.T) {
		w, resp := postJSON(t, r, "/api/chat", `{}`)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, helpText, resp.Reply)
	})

	t.Run("malformed body yields help, not an error status", func(t *testing.T) {
		w, resp := postJSON(t, r, "/api/chat", `{not json`)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, helpText, resp.Reply)
	})
}

func TestHandleAIChat(t *testing.T) {
	t.Run("post-processes the completion", func(t *testing.T) {
		fake := &fakeModel{resp: textReply("Check out TicTacToe (Flutter) here: https://example.com")}
		r := newChatRouter(&Assistant{llm: fake, logger: zap.NewNop()})

		w, resp := postJSON(t, r, "/api/ai-chat", `{"message":"what games did you build?"}`)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, resp.Reply, "[TicTacToe (Flutter)](/projects/tic-tac-toe)")
		assert.Contains(t, resp.Reply, "[https://example.com](https://example.com)")
	})

	t.Run("upstream failure falls back to the strict router with 200", func(t *testing.T) {
		fake := &fakeModel{err: errors.New("API returned unexpected status code: 500")}
		r := newChatRouter(&Assistant{llm: fake, logger: zap.NewNop()})

		w, resp := postJSON(t, r, "/api/ai-chat", `{"message":"projects"}`)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotEmpty(t, resp.Reply)
		assert.Equal(t, routeIntent("projects"), resp.Reply)
	})

	t.Run("empty completion falls back to the strict router", func(t *testing.T) {
		fake := &fakeModel{resp: textReply("")}
		r := newChatRouter(&Assistant{llm: fake, logger: zap.NewNop()})

		_, resp := postJSON(t, r, "/api/ai-chat", `{"message":"featured"}`)
		assert.Equal(t, routeIntent("featured"), resp.Reply)
	})

	t.Run("rate limit returns localized wait message", func(t *testing.T) {
		fake := &fakeModel{err: errors.New("status 429: Please try again in 30s")}
		r := newChatRouter(&Assistant{llm: fake, logger: zap.NewNop()})

		_, resp := postJSON(t, r, "/api/ai-chat", `{"message":"tell me about your work"}`)
		assert.Contains(t, resp.Reply, "30s")
	})

	t.Run("empty message returns the canned prompt", func(t *testing.T) {
		r := newChatRouter(&Assistant{llm: &fakeModel{resp: textReply("ok")}, logger: zap.NewNop()})

		w, resp := postJSON(t, r, "/api/ai-chat", `{"message":"   "}`)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, askMePrompt, resp.Reply)
	})

	t.Run("unconfigured assistant returns a generic notice", func(t *testing.T) {
		r := newChatRouter(nil)

		w, resp := postJSON(t, r, "/api/ai-chat", `{"message":"hello"}`)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, technicalIssueMessage(langEnglish), resp.Reply)
	})

	t.Run("history is forwarded", func(t *testing.T) {
		fake := &fakeModel{resp: textReply("ok")}
		r := newChatRouter(&Assistant{llm: fake, logger: zap.NewNop()})

		_, _ = postJSON(t, r, "/api/ai-chat",
			`{"message":"and then?","history":[{"role":"user","content":"hi"},{"role":"assistant","content":"hey"}]}`)
		// system + 2 history + new message
		assert.Len(t, fake.gotMessages, 4)
	})
}
