package autodial

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
	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/store/repository"
	"github.com/FidelOdongoTech/Stima-demo02/internal/service/interfaces"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	ReadyMessage    = "Ready to dial. Click 'Start Call' to begin."
	NoLoansMessage  = "No loans available for auto dial"
	recentCallsPath = "recent_calls"
)

type candidateDoc struct {
	models.LoanAccount `bson:",inline"`
	Member             models.Member `bson:"member"`
}

type AutoDialService struct {
	loans    interfaces.Aggregator
	cooldown time.Duration
	now      func() time.Time
}

func NewAutoDialService(loans interfaces.Aggregator) *AutoDialService {
	return &AutoDialService{
		loans:    loans,
		cooldown: consts.AutoDialCooldown,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func NewAutoDialServiceFromClient(client *mongodb.MongoClient) *AutoDialService {
	collection := client.Database.Collection(consts.LoanAccountsCollection)
	return NewAutoDialService(repository.NewMongoRepository[models.LoanAccount](collection))
}

// Next picks one non-performing loan with no call in the cooldown window.
// Which eligible loan comes back is unspecified.
func (s *AutoDialService) Next(ctx context.Context) (*models.AutoDialCandidate, error) {
	var docs []candidateDoc
	if err := s.loans.AggregateAll(ctx, s.pipeline(), &docs); err != nil {
		logger.CtxError(ctx, log_messages.ErrorAggregatingDocuments, err, slog.String("collection", consts.LoanAccountsCollection))
		return nil, repository.TranslateError(err, "Loan")
	}
	if len(docs) == 0 {
		logger.CtxInfo(ctx, NoLoansMessage)
		return nil, &apperrors.AppError{Kind: apperrors.KindNotFound, Message: NoLoansMessage}
	}

	doc := docs[0]
	logger.CtxInfo(ctx, "Auto-dial candidate selected",
		slog.String("loan_id", doc.ID),
		slog.String("member_id", doc.Member.ID),
	)
	return &models.AutoDialCandidate{
		Loan:        doc.LoanAccount,
		Member:      doc.Member,
		PhoneNumber: doc.Member.PhoneNumber,
		Message:     ReadyMessage,
	}, nil
}

func (s *AutoDialService) pipeline() mongo.Pipeline {
	cutoff := s.now().Add(-s.cooldown)
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "status", Value: models.LoanStatusNonPerforming}}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: consts.CallLogsCollection},
			{Key: "localField", Value: "_id"},
			{Key: "foreignField", Value: "loan_id"},
			{Key: "as", Value: recentCallsPath},
		}}},
		{{Key: "$match", Value: bson.D{{Key: recentCallsPath, Value: bson.D{{Key: "$not", Value: bson.D{
			{Key: "$elemMatch", Value: bson.D{{Key: "call_start_time", Value: bson.D{{Key: "$gte", Value: cutoff}}}}},
		}}}}}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: consts.MembersCollection},
			{Key: "localField", Value: "member_id"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "member"},
		}}},
		{{Key: "$unwind", Value: "$member"}},
		{{Key: "$project", Value: bson.D{{Key: recentCallsPath, Value: 0}}}},
		{{Key: "$limit", Value: 1}},
	}
}
