package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	portsrepo "github.com/retailpulse/bi_backend/internal/core/ports/repositories"
	portssvc "github.com/retailpulse/bi_backend/internal/core/ports/services"
	"github.com/retailpulse/bi_backend/internal/llm"
	"github.com/retailpulse/bi_backend/internal/sqlguard"
)

// InsightService runs the NL-to-SQL pipeline: assemble context, generate a
// candidate statement, gate it, execute it and shape the result. The
// pipeline is linear with no retries; a rejected statement is returned to
// the caller with the offending SQL, never auto-corrected.
type InsightService struct {
	generator portssvc.SQLGenerator
	executor  portsrepo.RawQueryExecutor
	now       func() time.Time
	logger    *slog.Logger
}

// NewInsightService creates a new InsightService.
func NewInsightService(generator portssvc.SQLGenerator, executor portsrepo.RawQueryExecutor, logger *slog.Logger) *InsightService {
	return &InsightService{
		generator: generator,
		executor:  executor,
		now:       time.Now,
		logger:    logger,
	}
}

// Ensure implementation matches interface
var _ portssvc.InsightSvcFacade = (*InsightService)(nil)

// Answer converts the question into a validated read-only statement, runs
// it, and returns the shaped rows together with the exact SQL executed.
func (s *InsightService) Answer(ctx context.Context, question string) (*portssvc.InsightResult, error) {
	systemPrompt := llm.BuildSystemPrompt(s.now(), question)

	completion, err := s.generator.GenerateSQL(ctx, systemPrompt, question)
	if err != nil {
		return nil, fmt.Errorf("sql generation failed: %w", err)
	}

	sql := sqlguard.StripCodeFences(completion)
	if err := sqlguard.Validate(sql); err != nil {
		return nil, err
	}
	sql = sqlguard.EnsureLimit(sql)

	s.logger.Info("Executing generated query", slog.String("sql", sql))
	rows, err := s.executor.RunSelect(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("generated query failed: %w", err)
	}

	return &portssvc.InsightResult{
		Result: shapeResult(rows),
		SQL:    sql,
		Query:  question,
	}, nil
}

// shapeResult collapses a single-row, single-column result into a flat
// key-value KPI object; anything else passes through as the row list.
func shapeResult(rows []map[string]any) any {
	if len(rows) == 1 && len(rows[0]) == 1 {
		return rows[0]
	}
	return rows
}
