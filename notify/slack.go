// Package notify delivers workflow messages to Slack.
//
// Messages are built as Block Kit blocks and posted with chat.postMessage
// over plain HTTP; delivery retries are Slack's concern, not ours.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Block is one Block Kit component of a message.
type Block struct {
	Type string      `json:"type"`
	Text *TextObject `json:"text,omitempty"`
}

// TextObject is the text payload of a block.
type TextObject struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// HeaderBlock builds a plain-text header block.
func HeaderBlock(text string) Block {
	return Block{Type: "header", Text: &TextObject{Type: "plain_text", Text: text}}
}

// SectionBlock builds a markdown section block.
func SectionBlock(text string) Block {
	return Block{Type: "section", Text: &TextObject{Type: "mrkdwn", Text: text}}
}

// Order is one aggregated order line for the weekly report.
type Order struct {
	Date  time.Time
	Name  string
	Price string
	Count int
}

// OrderSummaryBlocks builds the weekly report message: a header followed
// by one section per aggregated order line.
func OrderSummaryBlocks(header string, orders []Order) []Block {
	blocks := []Block{HeaderBlock(header)}
	for _, o := range orders {
		blocks = append(blocks, SectionBlock(
			fmt.Sprintf("%s %s %s %d個", o.Date.Format("2006年01月02日 (Mon)"), o.Name, o.Price, o.Count),
		))
	}
	return blocks
}

// Client posts messages to Slack.
type Client struct {
	token   string
	baseURL string
	client  *http.Client
}

// New creates a Slack client. baseURL overrides the API endpoint for
// testing; empty means the public API.
func New(token, baseURL string) *Client {
	if baseURL == "" {
		baseURL = "https://slack.com/api"
	}
	return &Client{
		token:   token,
		baseURL: baseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

type postMessageRequest struct {
	Channel string  `json:"channel"`
	Blocks  []Block `json:"blocks"`
}

type postMessageResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

// PostMessage posts the blocks to the given channel.
func (c *Client) PostMessage(ctx context.Context, channelID string, blocks []Block) error {
	body, err := json.Marshal(postMessageRequest{Channel: channelID, Blocks: blocks})
	if err != nil {
		return fmt.Errorf("notify: encoding message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat.postMessage", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("notify: building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("notify: posting message: %w", err)
	}
	defer resp.Body.Close()

	var result postMessageResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("notify: decoding response: %w", err)
	}
	if !result.OK {
		return fmt.Errorf("notify: slack rejected message: %s", result.Error)
	}
	return nil
}
