package interfaces

import (
	"context"
	"time"

	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/store/models"
)

type PromiseRepositoryInterface interface {
	List(ctx context.Context, filter models.PromiseFilter) ([]models.PromiseToPay, error)
	GetByID(ctx context.Context, id string) (*models.PromiseToPay, error)
	Create(ctx context.Context, promise models.PromiseToPay) (*models.PromiseToPay, error)
	UpdateStatus(ctx context.Context, id string, status models.PromiseStatus, at time.Time) (*models.PromiseToPay, error)
	CountDueBetween(ctx context.Context, status models.PromiseStatus, from, to time.Time) (int64, error)
	InsertMany(ctx context.Context, promises []models.PromiseToPay) (int, error)
}
