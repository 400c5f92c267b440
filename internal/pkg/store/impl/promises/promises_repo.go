package promises

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

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const resource = "Promise"

type PromiseRepository struct {
	repo interfaces.StoreInterface[models.PromiseToPay]
}

func NewPromiseRepository(client *mongodb.MongoClient) *PromiseRepository {
	collection := client.Database.Collection(consts.PromisesToPayCollection)
	return NewPromiseRepositoryWithInterface(repository.NewMongoRepository[models.PromiseToPay](collection))
}

func NewPromiseRepositoryWithInterface(repo interfaces.StoreInterface[models.PromiseToPay]) *PromiseRepository {
	return &PromiseRepository{repo: repo}
}

// List returns promises earliest due date first.
func (pr *PromiseRepository) List(ctx context.Context, filter models.PromiseFilter) ([]models.PromiseToPay, error) {
	q := query.New().
		Eq("status", filter.Status).
		Eq("loan_id", filter.LoanID).
		SortAsc("promised_date").
		Page(filter.Skip, filter.Limit)

	promises, err := pr.repo.Find(ctx, q.Filter(), q.FindOptions())
	if err != nil {
		logger.CtxError(ctx, log_messages.ErrorFindingDocuments, err,
			slog.String("collection", consts.PromisesToPayCollection),
			slog.String("status", filter.Status),
		)
		return nil, repository.TranslateError(err, resource)
	}

	logger.CtxDebug(ctx, "Fetched promises", slog.Int("count", len(promises)))
	return promises, nil
}

func (pr *PromiseRepository) GetByID(ctx context.Context, id string) (*models.PromiseToPay, error) {
	promise, err := pr.repo.FindOne(ctx, bson.M{"_id": id}, options.FindOne())
	if err != nil {
		err = repository.TranslateError(err, resource)
		if apperrors.IsNotFound(err) {
			logger.CtxWarn(ctx, log_messages.DocumentNotFound,
				slog.String("collection", consts.PromisesToPayCollection),
				slog.String("promise_id", id),
			)
			return nil, err
		}
		logger.CtxError(ctx, "Error finding promise", err, slog.String("promise_id", id))
		return nil, err
	}
	return &promise, nil
}

func (pr *PromiseRepository) Create(ctx context.Context, promise models.PromiseToPay) (*models.PromiseToPay, error) {
	if _, err := pr.repo.Create(ctx, promise); err != nil {
		logger.CtxError(ctx, log_messages.ErrorInsertingDocument, err,
			slog.String("collection", consts.PromisesToPayCollection),
			slog.String("loan_id", promise.LoanID),
		)
		return nil, repository.TranslateError(err, resource)
	}

	logger.CtxInfo(ctx, "Promise to pay recorded",
		slog.String("promise_id", promise.ID),
		slog.String("loan_id", promise.LoanID),
		slog.Float64("promised_amount", promise.PromisedAmount),
		slog.Time("promised_date", promise.PromisedDate),
	)
	return &promise, nil
}

// UpdateStatus overwrites the status unconditionally; any status may follow any other.
func (pr *PromiseRepository) UpdateStatus(ctx context.Context, id string, status models.PromiseStatus, at time.Time) (*models.PromiseToPay, error) {
	result, err := pr.repo.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"status": status, "updated_at": at})
	if err != nil {
		logger.CtxError(ctx, log_messages.ErrorUpdatingDocument, err, slog.String("promise_id", id))
		return nil, repository.TranslateError(err, resource)
	}
	if result.MatchedCount == 0 {
		logger.CtxWarn(ctx, log_messages.DocumentNotFound,
			slog.String("collection", consts.PromisesToPayCollection),
			slog.String("promise_id", id),
		)
		return nil, apperrors.NotFound(resource)
	}

	logger.CtxInfo(ctx, "Promise status updated", slog.String("promise_id", id), slog.String("status", string(status)))
	return pr.GetByID(ctx, id)
}

// CountDueBetween counts promises in status whose promised date falls in [from, to).
func (pr *PromiseRepository) CountDueBetween(ctx context.Context, status models.PromiseStatus, from, to time.Time) (int64, error) {
	filter := query.New().
		Eq("status", string(status)).
		Between("promised_date", from, to).
		Filter()

	count, err := pr.repo.CountDocuments(ctx, filter)
	if err != nil {
		logger.CtxError(ctx, log_messages.ErrorCountingDocuments, err, slog.String("collection", consts.PromisesToPayCollection))
		return 0, repository.TranslateError(err, resource)
	}
	return count, nil
}

func (pr *PromiseRepository) InsertMany(ctx context.Context, promises []models.PromiseToPay) (int, error) {
	n, err := pr.repo.CreateMany(ctx, promises)
	if err != nil {
		logger.CtxError(ctx, log_messages.ErrorInsertingDocument, err,
			slog.String("collection", consts.PromisesToPayCollection),
			slog.Int("inserted", n),
		)
		return n, repository.TranslateError(err, resource)
	}
	return n, nil
}
