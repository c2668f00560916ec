package llm

import "context"

// Purposes label logged requests so usage can be broken down by feature.
const (
	PurposeWordGen       = "word-gen"
	PurposeEncouragement = "encouragement"
	PurposeUnknown       = "unknown"
)

type purposeKey struct{}

// WithPurpose tags ctx with the feature making the request.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey{}, purpose)
}

// PurposeFrom returns the tag set by WithPurpose, or PurposeUnknown.
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey{}).(string); ok && v != "" {
		return v
	}
	return PurposeUnknown
}
