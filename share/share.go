// Package share posts shopping lists to a chat webhook.
package share

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"foodist/recipe"
)

var ErrNoWebhook = errors.New("share webhook url is not configured")

type doer interface {
	Do(req *http.Request) (*http.Response, error)
}

type Client struct {
	webhookURL string
	httpClient doer
}

func NewClient(webhookURL string, httpClient doer) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		webhookURL: webhookURL,
		httpClient: httpClient,
	}
}

type message struct {
	Channel string `json:"channel,omitempty"`
	Text    string `json:"text"`
}

func (c *Client) PostMessage(ctx context.Context, channel string, text string) error {
	if c.webhookURL == "" {
		return ErrNoWebhook
	}

	payload, err := json.Marshal(message{Channel: channel, Text: text})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("failed to post message: %s", resp.Status)
	}
	return nil
}

// ShareRecipe posts the shopping list of r sized for makeFor people.
func (c *Client) ShareRecipe(ctx context.Context, channel string, r *recipe.Recipe, makeFor int) error {
	return c.PostMessage(ctx, channel, ShoppingMessage(r, makeFor))
}

// ShoppingMessage renders the chat text for a recipe's shopping list.
func ShoppingMessage(r *recipe.Recipe, makeFor int) string {
	if makeFor <= 0 {
		makeFor = r.Serves
	}

	var b strings.Builder
	fmt.Fprintf(&b, "*%s* (for %d)\n", r.Name, makeFor)
	for _, line := range r.ShoppingList(makeFor) {
		b.WriteString("• ")
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n")
}
