package interfaces

import (
	"context"
	"time"

	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/store/models"
)

type CallLogRepositoryInterface interface {
	List(ctx context.Context, filter models.CallLogFilter) ([]models.CallLog, error)
	Create(ctx context.Context, call models.CallLog) (*models.CallLog, error)
	CountStartedBetween(ctx context.Context, from, to time.Time) (int64, error)
	InsertMany(ctx context.Context, calls []models.CallLog) (int, error)
}
