package llm

import (
	"encoding/json"
	"errors"
)

// completion is what an SDK adapter extracts from a vendor response.
// finish turns it into a Response the same way for every provider.
type completion struct {
	text      string
	usage     Usage
	model     string
	truncated bool
}

func (c completion) finish(req Request) (*Response, error) {
	content := json.RawMessage(c.text)
	if c.truncated {
		return nil, &ErrMaxTokensExceeded{Content: content}
	}
	if req.Schema != nil {
		if err := validateResponse(req.Schema, content); err != nil {
			return nil, err
		}
	}

	usage := c.usage
	if usage.TotalTokens == 0 {
		usage.TotalTokens = usage.InputTokens + usage.OutputTokens
	}
	return &Response{
		Content:    content,
		Usage:      usage,
		Model:      c.model,
		StopReason: StopEnd,
	}, nil
}

var errNoContent = errors.New("response carried no text content")
