package partners

import (
	"context"
	"log/slog"
	"time"

	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/apperrors"
	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/consts"
	mongodb "github.com/FidelOdongoTech/Stima-demo02/internal/pkg/db/mongo"
	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/log_messages"
	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/logger"
	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/store/models"
	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/store/query"
	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/store/repository"
	"github.com/FidelOdongoTech/Stima-demo02/internal/service/interfaces"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const resource = "Partner"

type PartnerRepository struct {
	repo  interfaces.StoreInterface[models.ExternalPartner]
	now   func() time.Time
	newID func() string
}

func NewPartnerRepository(client *mongodb.MongoClient) *PartnerRepository {
	collection := client.Database.Collection(consts.ExternalPartnersCollection)
	return NewPartnerRepositoryWithInterface(repository.NewMongoRepository[models.ExternalPartner](collection))
}

func NewPartnerRepositoryWithInterface(repo interfaces.StoreInterface[models.ExternalPartner]) *PartnerRepository {
	return &PartnerRepository{
		repo:  repo,
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}
}

func (pr *PartnerRepository) List(ctx context.Context, activeOnly bool) ([]models.ExternalPartner, error) {
	q := query.New().SortAsc("partner_name").Page(0, consts.MaxLimit)
	if activeOnly {
		q.Is("is_active", true)
	}

	partners, err := pr.repo.Find(ctx, q.Filter(), q.FindOptions())
	if err != nil {
		logger.CtxError(ctx, log_messages.ErrorFindingDocuments, err, slog.String("collection", consts.ExternalPartnersCollection))
		return nil, repository.TranslateError(err, resource)
	}
	return partners, nil
}

func (pr *PartnerRepository) GetByID(ctx context.Context, id string) (*models.ExternalPartner, error) {
	partner, err := pr.repo.FindOne(ctx, bson.M{"_id": id}, options.FindOne())
	if err != nil {
		err = repository.TranslateError(err, resource)
		if apperrors.IsNotFound(err) {
			logger.CtxWarn(ctx, log_messages.DocumentNotFound,
				slog.String("collection", consts.ExternalPartnersCollection),
				slog.String("partner_id", id),
			)
			return nil, err
		}
		logger.CtxError(ctx, "Error finding partner", err, slog.String("partner_id", id))
		return nil, err
	}
	return &partner, nil
}

func (pr *PartnerRepository) Create(ctx context.Context, in models.ExternalPartnerCreate) (*models.ExternalPartner, error) {
	partner := models.NewExternalPartner(in, pr.newID(), pr.now())

	if _, err := pr.repo.Create(ctx, partner); err != nil {
		logger.CtxError(ctx, log_messages.ErrorInsertingDocument, err,
			slog.String("collection", consts.ExternalPartnersCollection),
			slog.String("partner_name", in.PartnerName),
		)
		return nil, repository.TranslateError(err, resource)
	}

	logger.CtxInfo(ctx, "Partner registered",
		slog.String("partner_id", partner.ID),
		slog.String("partner_type", string(partner.PartnerType)),
		slog.Float64("commission_rate", partner.CommissionRate),
	)
	return &partner, nil
}

func (pr *PartnerRepository) InsertMany(ctx context.Context, partners []models.ExternalPartner) (int, error) {
	n, err := pr.repo.CreateMany(ctx, partners)
	if err != nil {
		logger.CtxError(ctx, log_messages.ErrorInsertingDocument, err,
			slog.String("collection", consts.ExternalPartnersCollection),
			slog.Int("inserted", n),
		)
		return n, repository.TranslateError(err, resource)
	}
	return n, nil
}
