// Package telegram posts contact submission summaries to an operator chat via
// the Telegram Bot API. The channel is optional: missing configuration means
// disabled, not broken.
package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"go-portfolio-backend/pkg/notify"
)

const defaultAPIBase = "https://api.telegram.org"

// messageLimit bounds the message body embedded in the chat summary.
const messageLimit = 500

// Notifier posts formatted submission summaries to a fixed chat.
type Notifier struct {
	botToken string
	chatID   string
	apiBase  string
	client   *http.Client
	log      *slog.Logger
	now      func() time.Time
}

// Message is one submission summary to post.
type Message struct {
	Name         string
	Email        string
	Project      string
	Message      string
	Locale       string
	IP           string
	SubmissionID string
}

type sendMessageRequest struct {
	ChatID                string `json:"chat_id"`
	Text                  string `json:"text"`
	ParseMode             string `json:"parse_mode"`
	DisableWebPagePreview bool   `json:"disable_web_page_preview"`
}

type apiResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description,omitempty"`
	ErrorCode   int    `json:"error_code,omitempty"`
}

// NewNotifier builds the notifier. client may be nil; apiBase overrides are
// for tests.
func NewNotifier(botToken, chatID, apiBase string, client *http.Client, log *slog.Logger) *Notifier {
	if apiBase == "" {
		apiBase = defaultAPIBase
	}
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	if log == nil {
		log = slog.Default()
	}
	return &Notifier{
		botToken: botToken,
		chatID:   chatID,
		apiBase:  apiBase,
		client:   client,
		log:      log,
		now:      time.Now,
	}
}

// IsConfigured reports whether both the bot token and chat id are present.
func (n *Notifier) IsConfigured() bool {
	return n.botToken != "" && n.chatID != ""
}

// Notify formats and posts the summary. Best-effort, single attempt.
func (n *Notifier) Notify(ctx context.Context, msg Message) notify.Outcome {
	if !n.IsConfigured() {
		n.log.Info("Telegram notification skipped: missing TELEGRAM_BOT_TOKEN or TELEGRAM_CHAT_ID")
		return notify.Skipped()
	}

	payload, err := json.Marshal(sendMessageRequest{
		ChatID:                n.chatID,
		Text:                  n.formatMessage(msg),
		ParseMode:             "Markdown",
		DisableWebPagePreview: true,
	})
	if err != nil {
		return notify.Failed(err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", n.apiBase, n.botToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return notify.Failed(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return notify.Failed(fmt.Errorf("telegram request failed: %w", err))
	}
	defer resp.Body.Close()

	var result apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return notify.Failed(fmt.Errorf("telegram response decode failed: %w", err))
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 || !result.OK {
		return notify.Failed(fmt.Errorf("telegram API error %d: %s", result.ErrorCode, result.Description))
	}

	n.log.Info("Telegram notification sent", "chat_id", n.chatID)
	return notify.SentOutcome()
}

// formatMessage renders the markdown summary posted to the operator chat.
func (n *Notifier) formatMessage(msg Message) string {
	flag := "🇺🇸"
	language := "English"
	if msg.Locale == "es" {
		flag = "🇪🇸"
		language = "Spanish"
	}

	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		loc = time.UTC
	}
	timestamp := n.now().In(loc).Format("Jan 2, 2006, 03:04 PM")

	body := msg.Message
	if runes := []rune(body); len(runes) > messageLimit {
		body = string(runes[:messageLimit]) + "..."
	}

	text := fmt.Sprintf(`🚀 *New Contact Form Submission* %s

👤 *Name:* %s
📧 *Email:* %s
💼 *Project Type:* %s
🌐 *Language:* %s
🕐 *Time:* %s

💬 *Message:*
%s
`, flag, msg.Name, msg.Email, msg.Project, language, timestamp, body)

	if msg.SubmissionID != "" {
		text += fmt.Sprintf("\n🆔 *Submission ID:* `%s`", msg.SubmissionID)
	}
	if msg.IP != "" {
		text += fmt.Sprintf("\n🌍 *IP:* `%s`", msg.IP)
	}
	text += fmt.Sprintf("\n\n---\nReply directly via email: %s", msg.Email)
	return text
}
