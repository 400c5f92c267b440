package interfaces

import (
	"context"
	"time"

	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/store/models"
)

type LoanRepositoryInterface interface {
	List(ctx context.Context, filter models.LoanFilter) ([]models.LoanAccount, error)
	GetByID(ctx context.Context, id string) (*models.LoanAccount, error)
	ListByMember(ctx context.Context, memberID string) ([]models.LoanAccount, error)
	Create(ctx context.Context, in models.LoanAccountCreate) (*models.LoanAccount, error)
	Update(ctx context.Context, id string, in models.LoanAccountUpdate) (*models.LoanAccount, error)
	UpdateOutstandingBalance(ctx context.Context, id string, balance float64, at time.Time) error
	PortfolioTotals(ctx context.Context) (models.PortfolioTotals, error)
	Count(ctx context.Context, status models.LoanStatus) (int64, error)
	InsertMany(ctx context.Context, loans []models.LoanAccount) (int, error)
}
