package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/abhisek/kotoba/internal/store"
)

// EventSink persists one row per LLM call.
type EventSink interface {
	AppendLLMRequest(ctx context.Context, ev store.LLMEvent) error
}

// LoggingProvider records every call, successful or not, to an EventSink.
// A failing sink never fails the call.
type LoggingProvider struct {
	inner    Provider
	sink     EventSink
	provider string
	logger   *slog.Logger
}

// WithLogging wraps p so each call is recorded under providerName.
func WithLogging(p Provider, sink EventSink, providerName string, logger *slog.Logger) Provider {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoggingProvider{inner: p, sink: sink, provider: providerName, logger: logger}
}

func (l *LoggingProvider) ModelID() string { return l.inner.ModelID() }

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := l.inner.Generate(ctx, req)

	ev := store.LLMEvent{
		Timestamp:   start,
		Provider:    l.provider,
		Model:       l.inner.ModelID(),
		Purpose:     PurposeFrom(ctx),
		LatencyMs:   time.Since(start).Milliseconds(),
		Success:     err == nil,
		RequestBody: transcript(req),
	}
	if resp != nil {
		ev.InputTokens, ev.OutputTokens = resp.Usage.InputTokens, resp.Usage.OutputTokens
		ev.ResponseBody = string(resp.Content)
		if resp.Model != "" {
			ev.Model = resp.Model
		}
	}
	if err != nil {
		ev.ErrorMessage = err.Error()
		l.logger.Debug("llm request failed", "purpose", ev.Purpose, "model", ev.Model, "error", err)
	}

	if serr := l.sink.AppendLLMRequest(context.WithoutCancel(ctx), ev); serr != nil {
		l.logger.Warn("record llm request event", "purpose", ev.Purpose, "error", serr)
	}
	return resp, err
}

// transcript renders req as labelled sections for `kotoba llm view`.
func transcript(req Request) string {
	var b strings.Builder
	section := func(label, body string) {
		fmt.Fprintf(&b, "[%s]\n%s\n\n", label, body)
	}

	if req.System != "" {
		section("system", req.System)
	}
	for _, m := range req.Messages {
		section(string(m.Role), m.Content)
	}
	if req.Schema != nil {
		if def, err := json.Marshal(req.Schema.Definition); err == nil {
			fmt.Fprintf(&b, "[schema: %s]\n%s\n", req.Schema.Name, def)
		}
	}
	return b.String()
}
