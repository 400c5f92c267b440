// Package profix simulates reconciliation of loan balances against the ProFIX core banking system.
package profix

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/apperrors"
	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/config"
	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/consts"
	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/log_messages"
	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/logger"
	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/otel"
	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/store/models"
	"github.com/FidelOdongoTech/Stima-demo02/internal/service/interfaces"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const SyncedMessage = "Loan data synchronized with ProFIX"

var errSimulatedFailure = errors.New("simulated ProFIX outage")

type ProfixService struct {
	loans  interfaces.LoanRepositoryInterface
	cache  interfaces.RedisStoreOperations
	events interfaces.EventDispatcherInterface
	cfg    config.ProfixConfig
	random func() float64
	now    func() time.Time
}

// NewProfixService accepts a nil cache; sync records are then not kept.
func NewProfixService(
	loans interfaces.LoanRepositoryInterface,
	cache interfaces.RedisStoreOperations,
	events interfaces.EventDispatcherInterface,
	cfg config.ProfixConfig,
) *ProfixService {
	return &ProfixService{
		loans:  loans,
		cache:  cache,
		events: events,
		cfg:    cfg,
		random: rand.Float64,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Sync scales the outstanding balance by a factor drawn uniformly from
// [1-variance, 1+variance], rounded to cents and never below zero.
func (s *ProfixService) Sync(ctx context.Context, loanID string) (*models.ProfixSyncResult, error) {
	ctx, span := otel.GetTracer().Start(ctx, "profix.sync", trace.WithAttributes(attribute.String("loan_id", loanID)))
	defer span.End()

	loan, err := s.loans.GetByID(ctx, loanID)
	if err != nil {
		return nil, err
	}

	if s.cfg.FailureRate > 0 && s.random() < s.cfg.FailureRate {
		logger.CtxWarn(ctx, "ProFIX sync failed", slog.String("loan_id", loanID))
		span.RecordError(errSimulatedFailure)
		span.SetStatus(codes.Error, "ProFIX sync failed")
		return nil, apperrors.ExternalService("ProFIX sync failed", errSimulatedFailure)
	}

	factor := 1 - s.cfg.Variance + s.random()*2*s.cfg.Variance
	updated := models.RoundToCents(loan.OutstandingBalance * factor)
	if updated < 0 {
		updated = 0
	}

	syncTime := s.now()
	if err := s.loans.UpdateOutstandingBalance(ctx, loanID, updated, syncTime); err != nil {
		return nil, err
	}

	result := &models.ProfixSyncResult{
		Success:         true,
		Message:         SyncedMessage,
		LoanID:          loanID,
		PreviousBalance: loan.OutstandingBalance,
		UpdatedBalance:  updated,
		SyncTime:        syncTime,
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, consts.ProfixSyncKey(loanID), result, s.cfg.SyncRecordTTL); err != nil {
			logger.CtxError(ctx, log_messages.ErrorSavingSyncRecord, err, slog.String("loan_id", loanID))
		}
	}
	s.events.CollectionEvent(ctx, consts.EventLoanSynced, loanID, loanID, result)

	logger.CtxInfo(ctx, "Loan synced with ProFIX",
		slog.String("loan_id", loanID),
		slog.Float64("previous_balance", result.PreviousBalance),
		slog.Float64("updated_balance", updated),
	)
	return result, nil
}

func (s *ProfixService) LastSync(ctx context.Context, loanID string) (*models.ProfixSyncResult, error) {
	if s.cache == nil {
		return nil, apperrors.ServiceUnavailable("Sync record store is not configured", nil)
	}

	var result models.ProfixSyncResult
	if err := s.cache.GetJSON(ctx, consts.ProfixSyncKey(loanID), &result); err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NotFound("Sync record")
		}
		logger.CtxError(ctx, "Error reading ProFIX sync record", err, slog.String("loan_id", loanID))
		return nil, apperrors.ServiceUnavailable("Sync record store unavailable", err)
	}
	return &result, nil
}
