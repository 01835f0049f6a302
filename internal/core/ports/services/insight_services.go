package services

import "context"

// SQLGenerator is the outbound port to the text-completion provider. It
// returns the model's raw completion for a system prompt plus question.
type SQLGenerator interface {
	GenerateSQL(ctx context.Context, systemPrompt, question string) (string, error)
}

// InsightResult is the answer envelope of the NL-to-SQL pipeline: the shaped
// result, the exact SQL executed, and the original question.
type InsightResult struct {
	Result any
	SQL    string
	Query  string
}

// InsightSvcFacade converts a free-text business question into a validated
// read-only SQL query, executes it and shapes the result.
type InsightSvcFacade interface {
	Answer(ctx context.Context, question string) (*InsightResult, error)
}
