package store

import (
	"context"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/pkg/errors"
)

const llmEventsTable = "llm_events"

// LLMEvent captures a single LLM API call.
type LLMEvent struct {
	ID           int
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit   int       // max results (0 = unlimited)
	Purpose string    // exact match when set
	From    time.Time // timestamp >= From
	To      time.Time // timestamp <= To
}

// LLMUsage aggregates token usage for one purpose or model.
type LLMUsage struct {
	Purpose      string
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// EventRepo records and queries LLM request events.
type EventRepo struct {
	drv *entsql.Driver
}

var llmEventColumns = []string{
	"id", "created_at", "provider", "model", "purpose",
	"input_tokens", "output_tokens", "latency_ms", "success",
	"error_message", "request_body", "response_body",
}

// AppendLLMRequest records an LLM API call event.
func (r *EventRepo) AppendLLMRequest(ctx context.Context, ev LLMEvent) error {
	ts := ev.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}

	query, args := entsql.Dialect(dialect.SQLite).
		Insert(llmEventsTable).
		Columns(llmEventColumns[1:]...).
		Values(
			ts.UnixMilli(), ev.Provider, ev.Model, ev.Purpose,
			ev.InputTokens, ev.OutputTokens, ev.LatencyMs, ev.Success,
			ev.ErrorMessage, ev.RequestBody, ev.ResponseBody,
		).
		Query()

	var res entsql.Result
	if err := r.drv.Exec(ctx, query, args, &res); err != nil {
		return errors.Wrap(err, "save LLM request event")
	}
	return nil
}

// QueryLLMEvents returns events newest first.
func (r *EventRepo) QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error) {
	b := entsql.Dialect(dialect.SQLite)
	sel := b.Select(llmEventColumns...).
		From(b.Table(llmEventsTable)).
		OrderBy(entsql.Desc("id"))

	var preds []*entsql.Predicate
	if opts.Purpose != "" {
		preds = append(preds, entsql.EQ("purpose", opts.Purpose))
	}
	if !opts.From.IsZero() {
		preds = append(preds, entsql.GTE("created_at", opts.From.UnixMilli()))
	}
	if !opts.To.IsZero() {
		preds = append(preds, entsql.LTE("created_at", opts.To.UnixMilli()))
	}
	if len(preds) > 0 {
		sel.Where(entsql.And(preds...))
	}
	if opts.Limit > 0 {
		sel.Limit(opts.Limit)
	}

	query, args := sel.Query()
	rows := &entsql.Rows{}
	if err := r.drv.Query(ctx, query, args, rows); err != nil {
		return nil, errors.Wrap(err, "query LLM events")
	}
	defer rows.Close()

	var events []LLMEvent
	for rows.Next() {
		ev, err := scanLLMEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, errors.Wrap(rows.Err(), "query LLM events")
}

// GetLLMEvent returns the event with the given id, or nil if none exists.
func (r *EventRepo) GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error) {
	b := entsql.Dialect(dialect.SQLite)
	query, args := b.Select(llmEventColumns...).
		From(b.Table(llmEventsTable)).
		Where(entsql.EQ("id", id)).
		Query()

	rows := &entsql.Rows{}
	if err := r.drv.Query(ctx, query, args, rows); err != nil {
		return nil, errors.Wrapf(err, "get LLM event %d", id)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, errors.Wrapf(rows.Err(), "get LLM event %d", id)
	}
	ev, err := scanLLMEvent(rows)
	if err != nil {
		return nil, err
	}
	return &ev, nil
}

// LLMUsageByPurpose aggregates usage per purpose, busiest first.
func (r *EventRepo) LLMUsageByPurpose(ctx context.Context) ([]LLMUsage, error) {
	return r.usageBy(ctx, "purpose")
}

// LLMUsageByModel aggregates usage per model, busiest first.
func (r *EventRepo) LLMUsageByModel(ctx context.Context) ([]LLMUsage, error) {
	return r.usageBy(ctx, "model")
}

func (r *EventRepo) usageBy(ctx context.Context, column string) ([]LLMUsage, error) {
	b := entsql.Dialect(dialect.SQLite)
	query, args := b.Select(
		column,
		entsql.As(entsql.Count("*"), "calls"),
		entsql.As(entsql.Sum("input_tokens"), "input_tokens"),
		entsql.As(entsql.Sum("output_tokens"), "output_tokens"),
		entsql.As(entsql.Avg("latency_ms"), "avg_latency"),
	).
		From(b.Table(llmEventsTable)).
		GroupBy(column).
		OrderBy(entsql.Desc("calls"), column).
		Query()

	rows := &entsql.Rows{}
	if err := r.drv.Query(ctx, query, args, rows); err != nil {
		return nil, errors.Wrapf(err, "aggregate usage by %s", column)
	}
	defer rows.Close()

	var out []LLMUsage
	for rows.Next() {
		var (
			key     string
			u       LLMUsage
			latency float64
		)
		if err := rows.Scan(&key, &u.Calls, &u.InputTokens, &u.OutputTokens, &latency); err != nil {
			return nil, errors.Wrap(err, "scan usage row")
		}
		if column == "purpose" {
			u.Purpose = key
		} else {
			u.Model = key
		}
		u.AvgLatencyMs = int64(latency)
		out = append(out, u)
	}
	return out, errors.Wrapf(rows.Err(), "aggregate usage by %s", column)
}

// ClearLLMEvents deletes every recorded event.
func (r *EventRepo) ClearLLMEvents(ctx context.Context) error {
	query, args := entsql.Dialect(dialect.SQLite).Delete(llmEventsTable).Query()
	var res entsql.Result
	if err := r.drv.Exec(ctx, query, args, &res); err != nil {
		return errors.Wrap(err, "clear LLM events")
	}
	return nil
}

func scanLLMEvent(rows *entsql.Rows) (LLMEvent, error) {
	var (
		ev LLMEvent
		ts int64
	)
	err := rows.Scan(
		&ev.ID, &ts, &ev.Provider, &ev.Model, &ev.Purpose,
		&ev.InputTokens, &ev.OutputTokens, &ev.LatencyMs, &ev.Success,
		&ev.ErrorMessage, &ev.RequestBody, &ev.ResponseBody,
	)
	if err != nil {
		return LLMEvent{}, errors.Wrap(err, "scan LLM event")
	}
	ev.Timestamp = time.UnixMilli(ts)
	return ev, nil
}
