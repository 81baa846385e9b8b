package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tirasundara/dsa-reconciliation/internal/domain"
	"github.com/tirasundara/dsa-reconciliation/internal/schema"
	"go.uber.org/zap"
)

// ReconciliationService orchestrates one report run: validate, adapt, analyze
type ReconciliationService struct {
	engine  domain.QualificationEngine
	matcher domain.TransactionalMatcher
	logger  *zap.Logger
}

// NewReconciliationService creates a new ReconciliationService
func NewReconciliationService(
	engine domain.QualificationEngine,
	matcher domain.TransactionalMatcher,
	logger *zap.Logger,
) *ReconciliationService {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &ReconciliationService{
		engine:  engine,
		matcher: matcher,
		logger:  logger,
	}
}

// RunQualification produces Report A from the raw inputs
func (s *ReconciliationService) RunQualification(ctx context.Context, in domain.Inputs) (*domain.QualificationResult, error) {
	runID, log := s.begin("qualification")
	start := time.Now()

	ds, err := s.prepare(ctx, schema.Qualification, in, log)
	if err != nil {
		return nil, err
	}

	result, err := s.engine.Run(ds)
	if err != nil {
		return nil, fmt.Errorf("running qualification analysis: %w", err)
	}
	result.RunID = runID

	log.Info("run complete",
		zap.Int("qualified_rows", len(result.QualifiedCustomers)),
		zap.Int("agents", len(result.DSASummary)),
		zap.Int("warnings", result.Warnings),
		zap.Duration("elapsed", time.Since(start)))

	return result, nil
}

// RunTransactional produces Report B from the raw inputs
func (s *ReconciliationService) RunTransactional(ctx context.Context, in domain.Inputs) (*domain.TransactionalResult, error) {
	runID, log := s.begin("transactional")
	start := time.Now()

	ds, err := s.prepare(ctx, schema.Transactional, in, log)
	if err != nil {
		return nil, err
	}

	result, err := s.matcher.Run(ds)
	if err != nil {
		return nil, fmt.Errorf("running transactional analysis: %w", err)
	}
	result.RunID = runID

	log.Info("run complete",
		zap.Int("rows", len(result.Rows)),
		zap.Int("agents", result.SummaryStats.TotalDSAs),
		zap.Int("warnings", result.Warnings),
		zap.Duration("elapsed", time.Since(start)))

	return result, nil
}

func (s *ReconciliationService) begin(report string) (string, *zap.Logger) {
	runID := uuid.NewString()
	log := s.logger.With(zap.String("run_id", runID), zap.String("report", report))
	log.Info("run started")
	return runID, log
}

// prepare checks the mandatory inputs and maps their columns through the profile
func (s *ReconciliationService) prepare(ctx context.Context, profile schema.Profile, in domain.Inputs, log *zap.Logger) (domain.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return domain.Dataset{}, err
	}

	if err := in.Validate(); err != nil {
		return domain.Dataset{}, err
	}

	ds, err := schema.NewAdapter(profile, log).AdaptInputs(in)
	if err != nil {
		return domain.Dataset{}, fmt.Errorf("adapting inputs: %w", err)
	}

	if ds.Warnings > 0 {
		log.Warn("malformed values coerced to zero", zap.Int("count", ds.Warnings))
	}

	return ds, nil
}
