package alerter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/admin/astro-services/jyotish/internal/pkg/logger"
)

func TestNewClient_Disabled(t *testing.T) {
	assert.Nil(t, NewClient(nil, logger.Nop()))
	assert.Nil(t, NewClient(&Config{BotToken: "token"}, logger.Nop()))

	var c *Client
	assert.Error(t, c.SendAlert(context.Background(), "x"))
}

func TestSendAlert(t *testing.T) {
	thread := int64(7)
	var got sendMessageRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/botsecret/sendMessage", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"ok":true,"result":{"message_id":1}}`))
	}))
	defer srv.Close()

	c := NewClient(&Config{BotToken: "secret", ChatID: -100, MessageThreadID: &thread, APIURL: srv.URL + "/"}, logger.Nop())
	require.NoError(t, c.SendAlert(context.Background(), "job failed"))

	assert.Equal(t, int64(-100), got.ChatID)
	assert.Equal(t, "job failed", got.Text)
	require.NotNil(t, got.MessageThreadID)
	assert.Equal(t, thread, *got.MessageThreadID)
}

func TestSendAlert_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"ok":false,"error_code":400,"description":"Bad Request: chat not found"}`))
	}))
	defer srv.Close()

	c := NewClient(&Config{BotToken: "secret", ChatID: 1, APIURL: srv.URL}, logger.Nop())
	err := c.SendAlert(context.Background(), "x")
	assert.ErrorContains(t, err, "chat not found")
}

func TestSendAlert_RedactsToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := NewClient(&Config{BotToken: "secret", ChatID: 1, APIURL: url}, logger.Nop())
	err := c.SendAlert(context.Background(), "x")
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "secret")
}
