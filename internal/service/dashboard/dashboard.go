package dashboard

import (
	"context"
	"log/slog"
	"time"

	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/consts"
	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/logger"
	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/store/models"
	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/store/query"
	"github.com/FidelOdongoTech/Stima-demo02/internal/service/interfaces"
)

type DashboardService struct {
	members     interfaces.MemberRepositoryInterface
	loans       interfaces.LoanRepositoryInterface
	calls       interfaces.CallLogRepositoryInterface
	promises    interfaces.PromiseRepositoryInterface
	assignments interfaces.PartnerAssignmentRepositoryInterface
	now         func() time.Time
}

func NewDashboardService(
	members interfaces.MemberRepositoryInterface,
	loans interfaces.LoanRepositoryInterface,
	calls interfaces.CallLogRepositoryInterface,
	promises interfaces.PromiseRepositoryInterface,
	assignments interfaces.PartnerAssignmentRepositoryInterface,
) *DashboardService {
	return &DashboardService{
		members:     members,
		loans:       loans,
		calls:       calls,
		promises:    promises,
		assignments: assignments,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Stats re-queries every figure on each call. "Today" is the current UTC day.
func (s *DashboardService) Stats(ctx context.Context) (*models.DashboardStats, error) {
	stats := &models.DashboardStats{RecoveryRatePercent: consts.RecoveryRatePercent}
	var err error

	if stats.TotalMembers, err = s.members.Count(ctx); err != nil {
		return nil, err
	}
	if stats.TotalLoans, err = s.loans.Count(ctx, ""); err != nil {
		return nil, err
	}
	if stats.TotalNPLLoans, err = s.loans.Count(ctx, models.LoanStatusNonPerforming); err != nil {
		return nil, err
	}

	totals, err := s.loans.PortfolioTotals(ctx)
	if err != nil {
		return nil, err
	}
	stats.TotalOutstandingAmount = totals.TotalOutstanding
	stats.TotalArrearsAmount = totals.TotalArrears

	from, to := query.DayWindow(s.now())
	if stats.CallsToday, err = s.calls.CountStartedBetween(ctx, from, to); err != nil {
		return nil, err
	}
	if stats.PromisesDueToday, err = s.promises.CountDueBetween(ctx, models.PromiseStatusPending, from, to); err != nil {
		return nil, err
	}
	if stats.EscalationsPending, err = s.assignments.CountByStatus(ctx, models.AssignmentStatusAssigned); err != nil {
		return nil, err
	}

	logger.CtxDebug(ctx, "Dashboard stats computed",
		slog.Int64("total_loans", stats.TotalLoans),
		slog.Int64("total_npl_loans", stats.TotalNPLLoans),
		slog.Int64("calls_today", stats.CallsToday),
	)
	return stats, nil
}
