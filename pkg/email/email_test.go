package email

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnippet(t *testing.T) {
	t.Run("short message passes through", func(t *testing.T) {
		assert.Equal(t, "hello there", Snippet("hello there"))
	})

	t.Run("exactly 100 passes through", func(t *testing.T) {
		msg := strings.Repeat("a", 100)
		assert.Equal(t, msg, Snippet(msg))
	})

	t.Run("over 100 truncated with ellipsis", func(t *testing.T) {
		msg := strings.Repeat("a", 150)
		got := Snippet(msg)
		assert.Equal(t, strings.Repeat("a", 100)+"...", got)
	})

	t.Run("truncation is rune aware", func(t *testing.T) {
		msg := strings.Repeat("é", 150)
		got := Snippet(msg)
		assert.Equal(t, strings.Repeat("é", 100)+"...", got)
	})
}

func TestRenderConfirmationLocalized(t *testing.T) {
	data := ConfirmationData{
		Name:    "Ana María",
		Email:   "ana@example.com",
		Project: "Consulting",
		Message: "I would like to discuss a potential collaboration.",
	}

	t.Run("english", func(t *testing.T) {
		data.Locale = "en"
		html, err := renderConfirmation(data)
		require.NoError(t, err)
		assert.Contains(t, html, "Thanks for reaching out!")
		assert.Contains(t, html, "Ana María")
		assert.Contains(t, html, "Consulting")
	})

	t.Run("spanish", func(t *testing.T) {
		data.Locale = "es"
		html, err := renderConfirmation(data)
		require.NoError(t, err)
		assert.Contains(t, html, "¡Gracias por contactarme!")
		assert.Contains(t, html, "Hola")
	})

	t.Run("long message embeds snippet only", func(t *testing.T) {
		data.Locale = "en"
		data.Message = strings.Repeat("x", 300)
		html, err := renderConfirmation(data)
		require.NoError(t, err)
		assert.Contains(t, html, strings.Repeat("x", 100)+"...")
		assert.NotContains(t, html, strings.Repeat("x", 101))
	})
}

func TestSendConfirmation(t *testing.T) {
	t.Run("unconfigured is skipped", func(t *testing.T) {
		s := NewService("", "", "", nil, nil)
		outcome := s.SendConfirmation(context.Background(), ConfirmationData{Email: "a@b.com"})
		assert.False(t, outcome.Sent)
		assert.NoError(t, outcome.Err)
	})

	t.Run("posts to resend", func(t *testing.T) {
		var got sendRequest
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Bearer re_key", r.Header.Get("Authorization"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			w.Write([]byte(`{"id": "email-1"}`))
		}))
		defer srv.Close()

		s := NewService("re_key", "noreply@fmemije.com", srv.URL, srv.Client(), nil)
		outcome := s.SendConfirmation(context.Background(), ConfirmationData{
			Name: "Ana", Email: "ana@example.com", Project: "Consulting",
			Message: "I would like to discuss a potential collaboration.", Locale: "es",
		})
		assert.True(t, outcome.Sent)
		assert.NoError(t, outcome.Err)
		assert.Equal(t, "noreply@fmemije.com", got.From)
		assert.Equal(t, []string{"ana@example.com"}, got.To)
		assert.Equal(t, "¡Gracias por contactarme! - Fernando Rodriguez", got.Subject)
	})

	t.Run("api failure is an outcome, not a panic", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			w.Write([]byte(`{"message": "invalid from"}`))
		}))
		defer srv.Close()

		s := NewService("re_key", "noreply@fmemije.com", srv.URL, srv.Client(), nil)
		outcome := s.SendConfirmation(context.Background(), ConfirmationData{Email: "ana@example.com"})
		assert.False(t, outcome.Sent)
		assert.Error(t, outcome.Err)
	})
}
