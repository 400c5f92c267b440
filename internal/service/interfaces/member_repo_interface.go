package interfaces

import (
	"context"

	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/store/models"
)

type MemberRepositoryInterface interface {
	List(ctx context.Context, filter models.MemberFilter) ([]models.Member, error)
	GetByID(ctx context.Context, id string) (*models.Member, error)
	GetByNumber(ctx context.Context, memberNumber string) (*models.Member, error)
	Create(ctx context.Context, in models.MemberCreate) (*models.Member, error)
	Update(ctx context.Context, id string, in models.MemberUpdate) (*models.Member, error)
	Delete(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int64, error)
	InsertMany(ctx context.Context, members []models.Member) (int, error)
	MemberIDResolver
}

// MemberIDResolver finds member ids by name or member number.
type MemberIDResolver interface {
	FindIDsBySearch(ctx context.Context, term string, limit int64) ([]string, error)
}
