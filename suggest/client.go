// Package suggest asks a chat-completion model for an alternative furniture
// layout. It is optional: every failure degrades to an empty suggestion and
// the rule-based layout stays authoritative.
package suggest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"

	"roomplanner/config"
	"roomplanner/models"
)

const (
	defaultTimeout = 30 * time.Second
	probeTimeout   = 10 * time.Second
)

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type request struct {
	Model       string    `json:"model"`
	Messages    []message `json:"messages"`
	Temperature float64   `json:"temperature,omitempty"`
	MaxTokens   int       `json:"max_tokens"`
	TopP        float64   `json:"top_p,omitempty"`
}

// Client talks to an OpenRouter compatible chat-completions endpoint.
type Client struct {
	cfg    config.AI
	http   *http.Client
	parser *Parser
	logger *log.Logger
}

func NewClient(cfg config.AI, httpClient *http.Client, logger *log.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if cfg.Timeout.Duration <= 0 {
		cfg.Timeout.Duration = defaultTimeout
	}
	logger.Info("AI client initialized", "model", cfg.Model)
	return &Client{cfg: cfg, http: httpClient, parser: NewParser(logger), logger: logger}
}

// IsConfigured reports whether an API key other than the placeholder is set.
func (c *Client) IsConfigured() bool {
	return c.cfg.Configured()
}

// Suggest never fails: on any error it logs and returns an empty suggestion.
func (c *Client) Suggest(ctx context.Context, room models.RoomSpec, items []models.FurnitureItem) models.Suggestion {
	empty := models.Suggestion{SuggestedFurniture: []models.SuggestedFurniture{}}
	c.logger.Info("requesting AI layout", "length", room.Length, "width", room.Width, "budget", room.Budget)

	prompt := BuildLayoutPrompt(room, items)
	c.logger.Debug("generated prompt", "prompt", prompt)

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout.Duration)
	defer cancel()

	body, err := c.post(ctx, request{
		Model:       c.cfg.Model,
		Messages:    []message{{Role: "user", Content: prompt}},
		Temperature: 0.7,
		MaxTokens:   2000,
		TopP:        0.9,
	})
	if err != nil {
		c.logger.Error("AI API call failed", "err", err)
		c.logger.Info("returning empty AI suggestion")
		return empty
	}

	s, err := c.parser.Parse(string(body), room)
	if err != nil {
		c.logger.Info("returning empty AI suggestion")
		return empty
	}
	c.logger.Info("AI suggested layout", "items", len(s.SuggestedFurniture), "reasoning", s.Reasoning)
	return s
}

// TestConnection sends a tiny request and reports whether the endpoint answered.
func (c *Client) TestConnection(ctx context.Context) bool {
	if !c.IsConfigured() {
		return false
	}
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	_, err := c.post(ctx, request{
		Model:     c.cfg.Model,
		Messages:  []message{{Role: "user", Content: "Test connection. Reply with 'OK'."}},
		MaxTokens: 10,
	})
	if err != nil {
		c.logger.Error("AI connection test failed", "err", err)
		return false
	}
	c.logger.Info("AI connection test successful")
	return true
}

func (c *Client) post(ctx context.Context, payload request) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.APIURL, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("HTTP-Referer", "http://localhost:8080")
	req.Header.Set("X-Title", "Room Planner")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %d: %s", resp.StatusCode, bytes.TrimSpace(body))
	}
	return body, nil
}
