package suggest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/log"

	"roomplanner/layout"
	"roomplanner/models"
)

var errNoContent = errors.New("no content found in AI response")

// Parser turns chat-completion replies into suggestions.
type Parser struct {
	logger *log.Logger
}

func NewParser(logger *log.Logger) *Parser {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Parser{logger: logger}
}

// ExtractJSON cuts the outermost {...} out of text that may carry prose
// around it. Text without braces is returned unchanged.
func ExtractJSON(text string) string {
	start := strings.IndexByte(text, '{')
	end := strings.LastIndexByte(text, '}')
	if start != -1 && end > start {
		return text[start : end+1]
	}
	return text
}

type completion struct {
	Choices []struct {
		Message struct {
			Content json.RawMessage `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type rawSuggestion struct {
	Name      *string  `json:"name"`
	X         *float64 `json:"x"`
	Y         *float64 `json:"y"`
	Reasoning string   `json:"reasoning"`
}

// Parse reads either a chat-completion envelope (choices[0].message.content,
// as an object or a JSON string) or a bare layout object. Entries without a
// name or coordinates are dropped; coordinates outside the clearance band are
// clamped into it.
func (p *Parser) Parse(response string, room models.RoomSpec) (models.Suggestion, error) {
	body, err := p.layoutBody(ExtractJSON(response))
	if err != nil {
		p.logger.Error("parse AI response", "err", err)
		p.logger.Debug("AI response", "content", response)
		return models.Suggestion{}, fmt.Errorf("failed to parse AI response: %w", err)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return models.Suggestion{}, fmt.Errorf("failed to parse AI response: %w", err)
	}

	out := models.Suggestion{SuggestedFurniture: []models.SuggestedFurniture{}}
	var entries []json.RawMessage
	if raw, ok := fields["suggestedFurniture"]; ok {
		if err := json.Unmarshal(raw, &entries); err != nil {
			p.logger.Warn("suggestedFurniture is not an array", "err", err)
		}
	}
	for _, raw := range entries {
		if s, ok := p.entry(raw, room); ok {
			out.SuggestedFurniture = append(out.SuggestedFurniture, s)
		}
	}

	if raw, ok := fields["totalEstimatedCost"]; ok {
		var cost float64
		if err := json.Unmarshal(raw, &cost); err == nil {
			out.TotalEstimatedCost = int(cost)
		}
	}
	if raw, ok := fields["reasoning"]; ok {
		_ = json.Unmarshal(raw, &out.Reasoning)
	}

	p.logger.Info("parsed AI suggestion", "items", len(out.SuggestedFurniture))
	return out, nil
}

func (p *Parser) layoutBody(text string) ([]byte, error) {
	var c completion
	if err := json.Unmarshal([]byte(text), &c); err != nil {
		return nil, err
	}
	if len(c.Choices) > 0 && len(c.Choices[0].Message.Content) > 0 {
		content := c.Choices[0].Message.Content
		var s string
		if err := json.Unmarshal(content, &s); err == nil {
			return []byte(ExtractJSON(s)), nil
		}
		if string(content) == "null" {
			return nil, errNoContent
		}
		return content, nil
	}

	var probe map[string]json.RawMessage
	if err := json.Unmarshal([]byte(text), &probe); err != nil {
		return nil, err
	}
	if _, ok := probe["suggestedFurniture"]; ok {
		return []byte(text), nil
	}
	return nil, errNoContent
}

func (p *Parser) entry(raw json.RawMessage, room models.RoomSpec) (models.SuggestedFurniture, bool) {
	var r rawSuggestion
	if err := json.Unmarshal(raw, &r); err != nil {
		p.logger.Warn("skipping furniture suggestion", "err", err)
		return models.SuggestedFurniture{}, false
	}
	if r.Name == nil || r.X == nil || r.Y == nil {
		p.logger.Warn("skipping furniture suggestion without name or coordinates", "raw", string(raw))
		return models.SuggestedFurniture{}, false
	}

	x, y := *r.X, *r.Y
	if !withinClearance(x, y, room) {
		p.logger.Warn("clamping suggested coordinates", "name", *r.Name, "x", x, "y", y)
		x = clamp(x, layout.WallClearance, room.Length-layout.WallClearance)
		y = clamp(y, layout.WallClearance, room.Width-layout.WallClearance)
	}
	return models.SuggestedFurniture{Name: *r.Name, X: x, Y: y, Reasoning: r.Reasoning}, true
}

func withinClearance(x, y float64, room models.RoomSpec) bool {
	c := layout.WallClearance
	return x >= c && x <= room.Length-c && y >= c && y <= room.Width-c
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
