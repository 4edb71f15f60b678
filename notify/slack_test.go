package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsawler/menugrid/model"
)

func TestHeaderAndSectionBlocks(t *testing.T) {
	h := HeaderBlock("来週のお弁当のチェックをお願いします")
	assert.Equal(t, "header", h.Type)
	assert.Equal(t, "plain_text", h.Text.Type)

	s := SectionBlock(":iphone: https://example.com")
	assert.Equal(t, "section", s.Type)
	assert.Equal(t, "mrkdwn", s.Text.Type)
}

func TestOrderSummaryBlocks(t *testing.T) {
	orders := []Order{
		{Date: model.Date(2026, time.March, 2), Name: "唐揚げ弁当", Price: "¥450", Count: 3},
		{Date: model.Date(2026, time.March, 3), Name: "のり弁当", Price: "¥400", Count: 1},
	}

	blocks := OrderSummaryBlocks("来週のお弁当は下記の通りです", orders)
	require.Len(t, blocks, 3)
	assert.Equal(t, "header", blocks[0].Type)
	assert.Contains(t, blocks[1].Text.Text, "唐揚げ弁当")
	assert.Contains(t, blocks[1].Text.Text, "3個")
	assert.Contains(t, blocks[1].Text.Text, "2026年03月02日")
}

func TestPostMessage(t *testing.T) {
	var got postMessageRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat.postMessage", r.URL.Path)
		assert.Equal(t, "Bearer xoxb-test", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	c := New("xoxb-test", srv.URL)
	err := c.PostMessage(context.Background(), "C123", []Block{HeaderBlock("hello")})
	require.NoError(t, err)

	assert.Equal(t, "C123", got.Channel)
	require.Len(t, got.Blocks, 1)
	assert.Equal(t, "hello", got.Blocks[0].Text.Text)
}

func TestPostMessageAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ok":false,"error":"channel_not_found"}`))
	}))
	defer srv.Close()

	c := New("xoxb-test", srv.URL)
	err := c.PostMessage(context.Background(), "C404", []Block{HeaderBlock("hello")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "channel_not_found")
}
