package calls

import (
	"context"
	"log/slog"
	"time"

	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/consts"
	mongodb "github.com/FidelOdongoTech/Stima-demo02/internal/pkg/db/mongo"
	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/log_messages"
	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/logger"
	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/store/models"
	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/store/query"
	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/store/repository"
	"github.com/FidelOdongoTech/Stima-demo02/internal/service/interfaces"
)

const resource = "Call log"

type CallLogRepository struct {
	repo interfaces.StoreInterface[models.CallLog]
}

func NewCallLogRepository(client *mongodb.MongoClient) *CallLogRepository {
	collection := client.Database.Collection(consts.CallLogsCollection)
	return NewCallLogRepositoryWithInterface(repository.NewMongoRepository[models.CallLog](collection))
}

func NewCallLogRepositoryWithInterface(repo interfaces.StoreInterface[models.CallLog]) *CallLogRepository {
	return &CallLogRepository{repo: repo}
}

// List returns calls newest first.
func (cr *CallLogRepository) List(ctx context.Context, filter models.CallLogFilter) ([]models.CallLog, error) {
	q := query.New().
		Eq("loan_id", filter.LoanID).
		SortDesc("call_start_time").
		Page(filter.Skip, filter.Limit)

	calls, err := cr.repo.Find(ctx, q.Filter(), q.FindOptions())
	if err != nil {
		logger.CtxError(ctx, log_messages.ErrorFindingDocuments, err,
			slog.String("collection", consts.CallLogsCollection),
			slog.String("loan_id", filter.LoanID),
		)
		return nil, repository.TranslateError(err, resource)
	}

	logger.CtxDebug(ctx, "Fetched call logs", slog.Int("count", len(calls)))
	return calls, nil
}

func (cr *CallLogRepository) Create(ctx context.Context, call models.CallLog) (*models.CallLog, error) {
	if _, err := cr.repo.Create(ctx, call); err != nil {
		logger.CtxError(ctx, log_messages.ErrorInsertingDocument, err,
			slog.String("collection", consts.CallLogsCollection),
			slog.String("loan_id", call.LoanID),
		)
		return nil, repository.TranslateError(err, resource)
	}

	logger.CtxInfo(ctx, "Call logged",
		slog.String("call_id", call.ID),
		slog.String("loan_id", call.LoanID),
		slog.String("call_status", string(call.CallStatus)),
		slog.String("agent_id", call.AgentID),
	)
	return &call, nil
}

// CountStartedBetween counts calls whose start time falls in [from, to).
func (cr *CallLogRepository) CountStartedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	filter := query.New().Between("call_start_time", from, to).Filter()
	count, err := cr.repo.CountDocuments(ctx, filter)
	if err != nil {
		logger.CtxError(ctx, log_messages.ErrorCountingDocuments, err, slog.String("collection", consts.CallLogsCollection))
		return 0, repository.TranslateError(err, resource)
	}
	return count, nil
}

func (cr *CallLogRepository) InsertMany(ctx context.Context, calls []models.CallLog) (int, error) {
	n, err := cr.repo.CreateMany(ctx, calls)
	if err != nil {
		logger.CtxError(ctx, log_messages.ErrorInsertingDocument, err,
			slog.String("collection", consts.CallLogsCollection),
			slog.Int("inserted", n),
		)
		return n, repository.TranslateError(err, resource)
	}
	return n, nil
}
