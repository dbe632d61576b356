package discord

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"alert-srv/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWebhookURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		id      string
		token   string
		wantErr bool
	}{
		{name: "valid", url: "https://discord.com/api/webhooks/123/abc", id: "123", token: "abc"},
		{name: "trims spaces", url: "  https://discord.com/api/webhooks/1/t  ", id: "1", token: "t"},
		{name: "wrong host", url: "https://example.com/api/webhooks/1/t", wantErr: true},
		{name: "missing token", url: "https://discord.com/api/webhooks/1", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, token, err := parseWebhookURL(tt.url)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.id, id)
			assert.Equal(t, tt.token, token)
		})
	}
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *discordImpl {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := DefaultConfig()
	cfg.RetryDelay = time.Millisecond
	c, err := newImpl(log.NewNop(), "id", "token", cfg)
	require.NoError(t, err)
	impl := c.(*discordImpl)
	impl.baseURL = srv.URL + "/"
	impl.clock = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }
	return impl
}

func TestSendNotification_KeepsFieldOrder(t *testing.T) {
	var got WebhookPayload
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/id/token", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusNoContent)
	})

	err := c.SendNotification(context.Background(), "Low stock", "desc", []EmbedField{
		{Name: "b", Value: "2"},
		{Name: "a", Value: "1"},
	})
	require.NoError(t, err)
	require.Len(t, got.Embeds, 1)
	assert.Equal(t, []string{"b", "a"}, []string{got.Embeds[0].Fields[0].Name, got.Embeds[0].Fields[1].Name})
	assert.Equal(t, "2026-01-02T03:04:05Z", got.Embeds[0].Timestamp)
	assert.Equal(t, DefaultUsername, got.Username)
}

func TestSendWithRetry(t *testing.T) {
	var calls int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	require.NoError(t, c.SendInfo(context.Background(), "t", "d"))
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestSendMessage_TooLong(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected")
	})
	err := c.SendMessage(context.Background(), strings.Repeat("x", MaxMessageLength+1))
	assert.ErrorIs(t, err, ErrMessageTooLong)
}

func TestMessageOptionsColor(t *testing.T) {
	assert.Equal(t, ColorUrgent, MessageOptions{Type: MessageTypeWarning, Level: LevelUrgent}.color())
	assert.Equal(t, ColorError, MessageOptions{Type: MessageTypeError, Level: LevelUrgent}.color())
	assert.Equal(t, ColorInfo, MessageOptions{}.color())
}
