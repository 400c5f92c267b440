package assignments

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

const resource = "Assignment"

type AssignmentRepository struct {
	repo interfaces.StoreInterface[models.PartnerAssignment]
	now  func() time.Time
}

func NewAssignmentRepository(client *mongodb.MongoClient) *AssignmentRepository {
	collection := client.Database.Collection(consts.PartnerAssignmentsCollection)
	return NewAssignmentRepositoryWithInterface(repository.NewMongoRepository[models.PartnerAssignment](collection))
}

func NewAssignmentRepositoryWithInterface(repo interfaces.StoreInterface[models.PartnerAssignment]) *AssignmentRepository {
	return &AssignmentRepository{
		repo: repo,
		now:  func() time.Time { return time.Now().UTC() },
	}
}

// List returns assignments newest first.
func (ar *AssignmentRepository) List(ctx context.Context, filter models.PartnerAssignmentFilter) ([]models.PartnerAssignment, error) {
	q := query.New().
		Eq("status", filter.Status).
		Eq("partner_id", filter.PartnerID).
		Eq("loan_id", filter.LoanID).
		SortDesc("assigned_date").
		Page(filter.Skip, filter.Limit)

	assignments, err := ar.repo.Find(ctx, q.Filter(), q.FindOptions())
	if err != nil {
		logger.CtxError(ctx, log_messages.ErrorFindingDocuments, err,
			slog.String("collection", consts.PartnerAssignmentsCollection),
			slog.String("partner_id", filter.PartnerID),
		)
		return nil, repository.TranslateError(err, resource)
	}
	return assignments, nil
}

func (ar *AssignmentRepository) GetByID(ctx context.Context, id string) (*models.PartnerAssignment, error) {
	assignment, err := ar.repo.FindOne(ctx, bson.M{"_id": id}, options.FindOne())
	if err != nil {
		err = repository.TranslateError(err, resource)
		if apperrors.IsNotFound(err) {
			logger.CtxWarn(ctx, log_messages.DocumentNotFound,
				slog.String("collection", consts.PartnerAssignmentsCollection),
				slog.String("assignment_id", id),
			)
			return nil, err
		}
		logger.CtxError(ctx, "Error finding assignment", err, slog.String("assignment_id", id))
		return nil, err
	}
	return &assignment, nil
}

func (ar *AssignmentRepository) Create(ctx context.Context, assignment models.PartnerAssignment) (*models.PartnerAssignment, error) {
	if _, err := ar.repo.Create(ctx, assignment); err != nil {
		logger.CtxError(ctx, log_messages.ErrorInsertingDocument, err,
			slog.String("collection", consts.PartnerAssignmentsCollection),
			slog.String("loan_id", assignment.LoanID),
		)
		return nil, repository.TranslateError(err, resource)
	}

	logger.CtxInfo(ctx, "Loan assigned to partner",
		slog.String("assignment_id", assignment.ID),
		slog.String("loan_id", assignment.LoanID),
		slog.String("partner_id", assignment.PartnerID),
	)
	return &assignment, nil
}

// Update applies fields and stamps updated_at. An empty field set just reads the assignment.
func (ar *AssignmentRepository) Update(ctx context.Context, id string, fields bson.M) (*models.PartnerAssignment, error) {
	if len(fields) == 0 {
		return ar.GetByID(ctx, id)
	}
	fields["updated_at"] = ar.now()

	result, err := ar.repo.UpdateOne(ctx, bson.M{"_id": id}, fields)
	if err != nil {
		logger.CtxError(ctx, log_messages.ErrorUpdatingDocument, err, slog.String("assignment_id", id))
		return nil, repository.TranslateError(err, resource)
	}
	if result.MatchedCount == 0 {
		logger.CtxWarn(ctx, log_messages.DocumentNotFound,
			slog.String("collection", consts.PartnerAssignmentsCollection),
			slog.String("assignment_id", id),
		)
		return nil, apperrors.NotFound(resource)
	}
	return ar.GetByID(ctx, id)
}

func (ar *AssignmentRepository) CountByStatus(ctx context.Context, status models.AssignmentStatus) (int64, error) {
	count, err := ar.repo.CountDocuments(ctx, query.New().Eq("status", string(status)).Filter())
	if err != nil {
		logger.CtxError(ctx, log_messages.ErrorCountingDocuments, err, slog.String("collection", consts.PartnerAssignmentsCollection))
		return 0, repository.TranslateError(err, resource)
	}
	return count, nil
}

func (ar *AssignmentRepository) InsertMany(ctx context.Context, assignments []models.PartnerAssignment) (int, error) {
	n, err := ar.repo.CreateMany(ctx, assignments)
	if err != nil {
		logger.CtxError(ctx, log_messages.ErrorInsertingDocument, err,
			slog.String("collection", consts.PartnerAssignmentsCollection),
			slog.Int("inserted", n),
		)
		return n, repository.TranslateError(err, resource)
	}
	return n, nil
}
