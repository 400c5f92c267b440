package loans

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
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const resource = "Loan"

type LoanRepository struct {
	repo      interfaces.StoreInterface[models.LoanAccount]
	members   interfaces.MemberIDResolver
	searchCap int64
	now       func() time.Time
	newID     func() string
}

func NewLoanRepository(client *mongodb.MongoClient, members interfaces.MemberIDResolver, searchCap int64) *LoanRepository {
	collection := client.Database.Collection(consts.LoanAccountsCollection)
	return NewLoanRepositoryWithInterface(repository.NewMongoRepository[models.LoanAccount](collection), members, searchCap)
}

func NewLoanRepositoryWithInterface(
	repo interfaces.StoreInterface[models.LoanAccount],
	members interfaces.MemberIDResolver,
	searchCap int64,
) *LoanRepository {
	if searchCap <= 0 {
		searchCap = consts.DefaultMemberSearchCap
	}
	return &LoanRepository{
		repo:      repo,
		members:   members,
		searchCap: searchCap,
		now:       func() time.Time { return time.Now().UTC() },
		newID:     uuid.NewString,
	}
}

// List filters by status verbatim. A member search is resolved to member ids
// first; when nothing matches, the loan collection is never queried.
func (lr *LoanRepository) List(ctx context.Context, filter models.LoanFilter) ([]models.LoanAccount, error) {
	q := query.New().
		Eq("status", filter.Status).
		Page(filter.Skip, filter.Limit)

	if filter.MemberSearch != "" {
		ids, err := lr.members.FindIDsBySearch(ctx, filter.MemberSearch, lr.searchCap)
		if err != nil {
			return nil, err
		}
		if len(ids) == 0 {
			logger.CtxDebug(ctx, "No members match loan search", slog.String("member_search", filter.MemberSearch))
			return []models.LoanAccount{}, nil
		}
		q.In("member_id", ids)
	}

	loans, err := lr.repo.Find(ctx, q.Filter(), q.FindOptions())
	if err != nil {
		logger.CtxError(ctx, log_messages.ErrorFindingDocuments, err,
			slog.String("collection", consts.LoanAccountsCollection),
			slog.String("status", filter.Status),
		)
		return nil, repository.TranslateError(err, resource)
	}

	logger.CtxDebug(ctx, "Fetched loans", slog.Int("count", len(loans)))
	return loans, nil
}

func (lr *LoanRepository) GetByID(ctx context.Context, id string) (*models.LoanAccount, error) {
	loan, err := lr.repo.FindOne(ctx, bson.M{"_id": id}, options.FindOne())
	if err != nil {
		err = repository.TranslateError(err, resource)
		if apperrors.IsNotFound(err) {
			logger.CtxWarn(ctx, "No loan found for id", slog.String("loan_id", id))
			return nil, err
		}
		logger.CtxError(ctx, "Error finding loan by id", err, slog.String("loan_id", id))
		return nil, err
	}

	logger.CtxDebug(ctx, "Fetched loan by id", slog.String("loan_id", id))
	return &loan, nil
}

func (lr *LoanRepository) ListByMember(ctx context.Context, memberID string) ([]models.LoanAccount, error) {
	opts := options.Find().SetSort(bson.D{{Key: "disbursement_date", Value: -1}})
	loans, err := lr.repo.Find(ctx, bson.M{"member_id": memberID}, opts)
	if err != nil {
		logger.CtxError(ctx, "Error fetching loans for member", err, slog.String("member_id", memberID))
		return nil, repository.TranslateError(err, resource)
	}

	logger.CtxDebug(ctx, "Fetched loans by member", slog.String("member_id", memberID), slog.Int("count", len(loans)))
	return loans, nil
}

func (lr *LoanRepository) Create(ctx context.Context, in models.LoanAccountCreate) (*models.LoanAccount, error) {
	loan := models.NewLoanAccount(in, lr.newID(), lr.now())

	if _, err := lr.repo.Create(ctx, loan); err != nil {
		err = repository.TranslateError(err, resource)
		logger.CtxError(ctx, log_messages.ErrorInsertingDocument, err,
			slog.String("collection", consts.LoanAccountsCollection),
			slog.String("loan_number", in.LoanNumber),
		)
		return nil, err
	}

	logger.CtxInfo(ctx, "Loan created",
		slog.String("loan_id", loan.ID),
		slog.String("member_id", loan.MemberID),
		slog.Time("maturity_date", loan.MaturityDate),
	)
	return &loan, nil
}

func (lr *LoanRepository) Update(ctx context.Context, id string, in models.LoanAccountUpdate) (*models.LoanAccount, error) {
	fields := in.Fields()
	if len(fields) == 0 {
		return lr.GetByID(ctx, id)
	}
	fields["updated_at"] = lr.now()

	if err := lr.updateOne(ctx, id, fields); err != nil {
		return nil, err
	}
	return lr.GetByID(ctx, id)
}

func (lr *LoanRepository) UpdateOutstandingBalance(ctx context.Context, id string, balance float64, at time.Time) error {
	return lr.updateOne(ctx, id, bson.M{"outstanding_balance": balance, "updated_at": at})
}

func (lr *LoanRepository) updateOne(ctx context.Context, id string, fields bson.M) error {
	result, err := lr.repo.UpdateOne(ctx, bson.M{"_id": id}, fields)
	if err != nil {
		logger.CtxError(ctx, log_messages.ErrorUpdatingDocument, err, slog.String("loan_id", id))
		return repository.TranslateError(err, resource)
	}
	if result.MatchedCount == 0 {
		logger.CtxWarn(ctx, log_messages.DocumentNotFound, slog.String("loan_id", id))
		return apperrors.NotFound(resource)
	}
	return nil
}

func (lr *LoanRepository) PortfolioTotals(ctx context.Context) (models.PortfolioTotals, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "total_outstanding", Value: bson.D{{Key: "$sum", Value: "$outstanding_balance"}}},
			{Key: "total_arrears", Value: bson.D{{Key: "$sum", Value: "$arrears_amount"}}},
		}}},
	}

	var rows []models.PortfolioTotals
	if err := lr.repo.AggregateAll(ctx, pipeline, &rows); err != nil {
		logger.CtxError(ctx, log_messages.ErrorAggregatingDocuments, err, slog.String("collection", consts.LoanAccountsCollection))
		return models.PortfolioTotals{}, repository.TranslateError(err, resource)
	}
	if len(rows) == 0 {
		return models.PortfolioTotals{}, nil
	}
	return rows[0], nil
}

// Count counts loans, optionally restricted to one status.
func (lr *LoanRepository) Count(ctx context.Context, status models.LoanStatus) (int64, error) {
	filter := query.New().Eq("status", string(status)).Filter()
	count, err := lr.repo.CountDocuments(ctx, filter)
	if err != nil {
		logger.CtxError(ctx, log_messages.ErrorCountingDocuments, err,
			slog.String("collection", consts.LoanAccountsCollection),
			slog.String("status", string(status)),
		)
		return 0, repository.TranslateError(err, resource)
	}
	return count, nil
}

func (lr *LoanRepository) InsertMany(ctx context.Context, loans []models.LoanAccount) (int, error) {
	n, err := lr.repo.CreateMany(ctx, loans)
	if err != nil {
		logger.CtxError(ctx, log_messages.ErrorInsertingDocument, err,
			slog.String("collection", consts.LoanAccountsCollection),
			slog.Int("inserted", n),
		)
		return n, repository.TranslateError(err, resource)
	}
	return n, nil
}
