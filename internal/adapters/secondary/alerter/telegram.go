package alerter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/admin/astro-services/jyotish/internal/ports/service"
)

const apiTimeout = 10 * time.Second

var _ service.IAlerterService = (*Client)(nil)

// Client отправляет алерты в Telegram группу (или топик форума) через sendMessage
type Client struct {
	httpClient      *http.Client
	endpoint        string
	chatID          int64
	messageThreadID *int64
	log             *slog.Logger
}

type sendMessageRequest struct {
	ChatID          int64  `json:"chat_id"`
	Text            string `json:"text"`
	MessageThreadID *int64 `json:"message_thread_id,omitempty"`
}

type apiResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description,omitempty"`
	ErrorCode   int    `json:"error_code,omitempty"`
}

// NewClient nil если алерты не настроены
func NewClient(cfg *Config, log *slog.Logger) *Client {
	if !cfg.Enabled() {
		return nil
	}

	return &Client{
		httpClient:      &http.Client{Timeout: apiTimeout},
		endpoint:        strings.TrimRight(cfg.APIURL, "/") + "/bot" + cfg.BotToken + "/sendMessage",
		chatID:          cfg.ChatID,
		messageThreadID: cfg.MessageThreadID,
		log:             log,
	}
}

func (c *Client) SendAlert(ctx context.Context, message string) error {
	if c == nil {
		return fmt.Errorf("alerter client is not initialized")
	}

	if err := c.sendMessage(ctx, message); err != nil {
		c.log.WarnContext(ctx, "failed to send alert",
			"error", err,
			"chat_id", c.chatID,
			"message_thread_id", c.messageThreadID,
		)
		return fmt.Errorf("failed to send alert: %w", err)
	}

	c.log.DebugContext(ctx, "alert sent successfully", "chat_id", c.chatID)
	return nil
}

func (c *Client) sendMessage(ctx context.Context, text string) error {
	jsonData, err := json.Marshal(sendMessageRequest{
		ChatID:          c.chatID,
		Text:            text,
		MessageThreadID: c.messageThreadID,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		// url.Error содержит токен в адресе
		return fmt.Errorf("failed to send request to telegram: %w", redact(err, c.endpoint))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	var apiResp apiResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return fmt.Errorf("failed to unmarshal response (status %d): %w", resp.StatusCode, err)
	}
	if !apiResp.OK {
		return fmt.Errorf("telegram API error: %s (code: %d)", apiResp.Description, apiResp.ErrorCode)
	}
	return nil
}

func redact(err error, endpoint string) error {
	return fmt.Errorf("%s", strings.ReplaceAll(err.Error(), endpoint, "<telegram sendMessage>"))
}
