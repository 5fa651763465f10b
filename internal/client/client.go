// Package client implements the HTTP client for the tracefire service.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tracefire-io/tracefire/internal/models"
)

// Client talks to a tracefire service instance.
type Client struct {
	baseURL string
	httpc   *http.Client
}

// New returns a client for the service at baseURL.
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: 30 * time.Second},
	}
}

// ListActions fetches the recorded model invocations for an agent, newest
// last. roomID narrows to one room when non-empty; excludeTypes is applied
// server-side so excluded categories never cross the wire.
func (c *Client) ListActions(ctx context.Context, agentID, roomID string, excludeTypes []string) ([]models.ModelCall, error) {
	q := url.Values{}
	if roomID != "" {
		q.Set("room", roomID)
	}
	for _, t := range excludeTypes {
		q.Add("exclude", t)
	}

	endpoint := fmt.Sprintf("%s/v1/agents/%s/actions", c.baseURL, url.PathEscape(agentID))
	if len(q) > 0 {
		endpoint += "?" + q.Encode()
	}

	var resp struct {
		Actions []models.ModelCall `json:"actions"`
	}
	if err := c.do(ctx, http.MethodGet, endpoint, &resp); err != nil {
		return nil, fmt.Errorf("failed to list actions: %w", err)
	}
	return resp.Actions, nil
}

// DeleteAction removes one recorded invocation.
func (c *Client) DeleteAction(ctx context.Context, agentID, logID string) error {
	endpoint := fmt.Sprintf("%s/v1/agents/%s/logs/%s", c.baseURL, url.PathEscape(agentID), url.PathEscape(logID))
	if err := c.do(ctx, http.MethodDelete, endpoint, nil); err != nil {
		return fmt.Errorf("failed to delete log: %w", err)
	}
	return nil
}

// Stats fetches the per-model aggregation for an agent.
func (c *Client) Stats(ctx context.Context, agentID string) (*models.AgentStats, error) {
	endpoint := fmt.Sprintf("%s/v1/agents/%s/stats", c.baseURL, url.PathEscape(agentID))
	var stats models.AgentStats
	if err := c.do(ctx, http.MethodGet, endpoint, &stats); err != nil {
		return nil, fmt.Errorf("failed to fetch stats: %w", err)
	}
	return &stats, nil
}

func (c *Client) do(ctx context.Context, method, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, method, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("server returned %s: %s", resp.Status, readErrorMessage(resp.Body))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// readErrorMessage pulls the error field out of a JSON error body, falling
// back to the raw text.
func readErrorMessage(r io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(r, 4096))
	if err != nil || len(data) == 0 {
		return "no error detail"
	}
	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(data, &body); err == nil && body.Error != "" {
		return body.Error
	}
	return strings.TrimSpace(string(data))
}
