package srs

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/abhisek/kotoba/internal/vocab"
)

// TableData is the persisted form of the SRS table.
type TableData struct {
	Version int          `json:"version"`
	Records []RecordData `json:"records"`
}

// RecordData is the persisted form of one record. Times are RFC3339.
type RecordData struct {
	Item           vocab.Item `json:"item"`
	Level          int        `json:"level"`
	NextReviewAt   string     `json:"next_review_at"`
	LastReviewedAt string     `json:"last_reviewed_at,omitempty"`
	TimesCorrect   int        `json:"times_correct,omitempty"`
	TimesIncorrect int        `json:"times_incorrect,omitempty"`
}

const tableVersion = 1

// EncodeTable serializes records for storage.
func EncodeTable(records []Record) ([]byte, error) {
	data := TableData{Version: tableVersion, Records: make([]RecordData, 0, len(records))}
	for _, r := range records {
		rd := RecordData{
			Item:           r.Item,
			Level:          r.Level,
			NextReviewAt:   r.NextReviewAt.UTC().Format(time.RFC3339),
			TimesCorrect:   r.TimesCorrect,
			TimesIncorrect: r.TimesIncorrect,
		}
		if !r.LastReviewedAt.IsZero() {
			rd.LastReviewedAt = r.LastReviewedAt.UTC().Format(time.RFC3339)
		}
		data.Records = append(data.Records, rd)
	}
	return json.Marshal(data)
}

// DecodeTable parses a stored table. Records with unparseable dates are
// skipped; a malformed document is an error.
func DecodeTable(b []byte) ([]Record, error) {
	var data TableData
	if err := json.Unmarshal(b, &data); err != nil {
		return nil, fmt.Errorf("decode srs table: %w", err)
	}

	out := make([]Record, 0, len(data.Records))
	for _, rd := range data.Records {
		next, err := time.Parse(time.RFC3339, rd.NextReviewAt)
		if err != nil {
			continue
		}
		r := Record{
			Item:           rd.Item,
			Level:          clampLevel(rd.Level),
			NextReviewAt:   next,
			TimesCorrect:   rd.TimesCorrect,
			TimesIncorrect: rd.TimesIncorrect,
		}
		r.Interval = IntervalTable[r.Level]
		if rd.LastReviewedAt != "" {
			if last, err := time.Parse(time.RFC3339, rd.LastReviewedAt); err == nil {
				r.LastReviewedAt = last
			}
		}
		out = append(out, r)
	}
	return out, nil
}
