package interfaces

import (
	"context"

	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/store/models"

	"go.mongodb.org/mongo-driver/bson"
)

type PartnerRepositoryInterface interface {
	List(ctx context.Context, activeOnly bool) ([]models.ExternalPartner, error)
	GetByID(ctx context.Context, id string) (*models.ExternalPartner, error)
	Create(ctx context.Context, in models.ExternalPartnerCreate) (*models.ExternalPartner, error)
	InsertMany(ctx context.Context, partners []models.ExternalPartner) (int, error)
}

type PartnerAssignmentRepositoryInterface interface {
	List(ctx context.Context, filter models.PartnerAssignmentFilter) ([]models.PartnerAssignment, error)
	GetByID(ctx context.Context, id string) (*models.PartnerAssignment, error)
	Create(ctx context.Context, assignment models.PartnerAssignment) (*models.PartnerAssignment, error)
	Update(ctx context.Context, id string, fields bson.M) (*models.PartnerAssignment, error)
	CountByStatus(ctx context.Context, status models.AssignmentStatus) (int64, error)
	InsertMany(ctx context.Context, assignments []models.PartnerAssignment) (int, error)
}
