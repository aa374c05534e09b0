package analysis

import "context"

// Client produces a dashboard configuration document for a CSV dataset.
// Implementations return the raw JSON body; decoding and validation happen
// at the consumer's boundary.
type Client interface {
	AnalyzeCSV(ctx context.Context, csvText string) ([]byte, error)
}
