package telegram

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatMessage(t *testing.T) {
	n := NewNotifier("token", "chat", "", nil, nil)
	n.now = func() time.Time {
		return time.Date(2025, time.March, 14, 19, 30, 0, 0, time.UTC)
	}

	t.Run("english submission", func(t *testing.T) {
		text := n.formatMessage(Message{
			Name:         "Ana García",
			Email:        "ana@example.com",
			Project:      "Consulting",
			Message:      "I would like to discuss a project.",
			Locale:       "en",
			IP:           "203.0.113.7",
			SubmissionID: "sub-123",
		})
		assert.Contains(t, text, "🇺🇸")
		assert.Contains(t, text, "*Language:* English")
		assert.Contains(t, text, "*Name:* Ana García")
		// 19:30 UTC is 15:30 in New York during DST.
		assert.Contains(t, text, "Mar 14, 2025, 03:30 PM")
		assert.Contains(t, text, "*Submission ID:* `sub-123`")
		assert.Contains(t, text, "*IP:* `203.0.113.7`")
		assert.Contains(t, text, "Reply directly via email: ana@example.com")
	})

	t.Run("spanish submission", func(t *testing.T) {
		text := n.formatMessage(Message{Name: "Ana", Email: "a@b.com", Locale: "es"})
		assert.Contains(t, text, "🇪🇸")
		assert.Contains(t, text, "*Language:* Spanish")
	})

	t.Run("optional fields omitted", func(t *testing.T) {
		text := n.formatMessage(Message{Name: "Ana", Email: "a@b.com", Locale: "en"})
		assert.NotContains(t, text, "Submission ID")
		assert.NotContains(t, text, "*IP:*")
	})

	t.Run("long message truncated", func(t *testing.T) {
		text := n.formatMessage(Message{Message: strings.Repeat("y", 700), Locale: "en"})
		assert.Contains(t, text, strings.Repeat("y", 500)+"...")
		assert.NotContains(t, text, strings.Repeat("y", 501))
	})
}

func TestNotify(t *testing.T) {
	t.Run("unconfigured is skipped", func(t *testing.T) {
		n := NewNotifier("", "", "", nil, nil)
		outcome := n.Notify(context.Background(), Message{Name: "Ana"})
		assert.False(t, outcome.Sent)
		assert.NoError(t, outcome.Err)
	})

	t.Run("posts sendMessage", func(t *testing.T) {
		var got sendMessageRequest
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/bottoken/sendMessage", r.URL.Path)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			w.Write([]byte(`{"ok": true}`))
		}))
		defer srv.Close()

		n := NewNotifier("token", "chat-42", srv.URL, srv.Client(), nil)
		outcome := n.Notify(context.Background(), Message{Name: "Ana", Email: "a@b.com", Locale: "en"})
		assert.True(t, outcome.Sent)
		assert.Equal(t, "chat-42", got.ChatID)
		assert.Equal(t, "Markdown", got.ParseMode)
		assert.True(t, got.DisableWebPagePreview)
		assert.Contains(t, got.Text, "New Contact Form Submission")
	})

	t.Run("api error is an outcome", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"ok": false, "error_code": 400, "description": "chat not found"}`))
		}))
		defer srv.Close()

		n := NewNotifier("token", "chat", srv.URL, srv.Client(), nil)
		outcome := n.Notify(context.Background(), Message{Name: "Ana"})
		assert.False(t, outcome.Sent)
		require.Error(t, outcome.Err)
		assert.Contains(t, outcome.Err.Error(), "chat not found")
	})

	t.Run("transport failure is an outcome", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close()

		n := NewNotifier("token", "chat", srv.URL, nil, nil)
		outcome := n.Notify(context.Background(), Message{Name: "Ana"})
		assert.False(t, outcome.Sent)
		assert.Error(t, outcome.Err)
	})
}
