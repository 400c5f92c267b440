package members

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

const resource = "Member"

var (
	listSearchFields = []string{"first_name", "last_name", "member_number", "phone_number"}
	idSearchFields   = []string{"first_name", "last_name", "member_number"}
)

type MemberRepository struct {
	repo  interfaces.StoreInterface[models.Member]
	now   func() time.Time
	newID func() string
}

func NewMemberRepository(client *mongodb.MongoClient) *MemberRepository {
	collection := client.Database.Collection(consts.MembersCollection)
	return NewMemberRepositoryWithInterface(repository.NewMongoRepository[models.Member](collection))
}

func NewMemberRepositoryWithInterface(repo interfaces.StoreInterface[models.Member]) *MemberRepository {
	return &MemberRepository{
		repo:  repo,
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}
}

func (mr *MemberRepository) List(ctx context.Context, filter models.MemberFilter) ([]models.Member, error) {
	q := query.New().
		Search(filter.Search, listSearchFields...).
		Page(filter.Skip, filter.Limit)

	members, err := mr.repo.Find(ctx, q.Filter(), q.FindOptions())
	if err != nil {
		logger.CtxError(ctx, log_messages.ErrorFindingDocuments, err,
			slog.String("collection", consts.MembersCollection),
			slog.String("search", filter.Search),
		)
		return nil, repository.TranslateError(err, resource)
	}

	logger.CtxDebug(ctx, "Fetched members", slog.Int("count", len(members)))
	return members, nil
}

func (mr *MemberRepository) GetByID(ctx context.Context, id string) (*models.Member, error) {
	return mr.findOne(ctx, bson.M{"_id": id}, slog.String("member_id", id))
}

func (mr *MemberRepository) GetByNumber(ctx context.Context, memberNumber string) (*models.Member, error) {
	return mr.findOne(ctx, bson.M{"member_number": memberNumber}, slog.String("member_number", memberNumber))
}

func (mr *MemberRepository) findOne(ctx context.Context, filter bson.M, attr slog.Attr) (*models.Member, error) {
	member, err := mr.repo.FindOne(ctx, filter, options.FindOne())
	if err != nil {
		err = repository.TranslateError(err, resource)
		if apperrors.IsNotFound(err) {
			logger.CtxWarn(ctx, log_messages.DocumentNotFound, slog.String("collection", consts.MembersCollection), attr)
			return nil, err
		}
		logger.CtxError(ctx, "Error finding member", err, attr)
		return nil, err
	}

	logger.CtxDebug(ctx, "Fetched member", attr)
	return &member, nil
}

// Create assigns the id and registration date. A duplicate member_number
// surfaces as a Conflict from the unique index.
func (mr *MemberRepository) Create(ctx context.Context, in models.MemberCreate) (*models.Member, error) {
	member := models.NewMember(in, mr.newID(), mr.now())

	if _, err := mr.repo.Create(ctx, member); err != nil {
		err = repository.TranslateError(err, resource)
		logger.CtxError(ctx, log_messages.ErrorInsertingDocument, err,
			slog.String("collection", consts.MembersCollection),
			slog.String("member_number", in.MemberNumber),
		)
		return nil, err
	}

	logger.CtxInfo(ctx, "Member created", slog.String("member_id", member.ID), slog.String("member_number", member.MemberNumber))
	return &member, nil
}

func (mr *MemberRepository) Update(ctx context.Context, id string, in models.MemberUpdate) (*models.Member, error) {
	fields := in.Fields()
	if len(fields) == 0 {
		return mr.GetByID(ctx, id)
	}
	fields["updated_at"] = mr.now()

	result, err := mr.repo.UpdateOne(ctx, bson.M{"_id": id}, fields)
	if err != nil {
		logger.CtxError(ctx, log_messages.ErrorUpdatingDocument, err, slog.String("member_id", id))
		return nil, repository.TranslateError(err, resource)
	}
	if result.MatchedCount == 0 {
		logger.CtxWarn(ctx, log_messages.DocumentNotFound, slog.String("member_id", id))
		return nil, apperrors.NotFound(resource)
	}

	return mr.GetByID(ctx, id)
}

// Delete reports whether a member was removed.
func (mr *MemberRepository) Delete(ctx context.Context, id string) (bool, error) {
	deleted, err := mr.repo.Delete(ctx, bson.M{"_id": id})
	if err != nil {
		logger.CtxError(ctx, log_messages.ErrorDeletingDocument, err, slog.String("member_id", id))
		return false, repository.TranslateError(err, resource)
	}

	logger.CtxInfo(ctx, "Member delete processed", slog.String("member_id", id), slog.Int64("deleted", deleted))
	return deleted > 0, nil
}

func (mr *MemberRepository) Count(ctx context.Context) (int64, error) {
	count, err := mr.repo.CountDocuments(ctx, bson.M{})
	if err != nil {
		logger.CtxError(ctx, log_messages.ErrorCountingDocuments, err, slog.String("collection", consts.MembersCollection))
		return 0, repository.TranslateError(err, resource)
	}
	return count, nil
}

// FindIDsBySearch returns at most limit ids of members whose name or member
// number contains term.
func (mr *MemberRepository) FindIDsBySearch(ctx context.Context, term string, limit int64) ([]string, error) {
	q := query.New().Search(term, idSearchFields...)
	opts := options.Find().
		SetProjection(bson.M{"_id": 1}).
		SetLimit(limit)

	members, err := mr.repo.Find(ctx, q.Filter(), opts)
	if err != nil {
		logger.CtxError(ctx, log_messages.ErrorFindingDocuments, err,
			slog.String("collection", consts.MembersCollection),
			slog.String("search", term),
		)
		return nil, repository.TranslateError(err, resource)
	}

	ids := make([]string, 0, len(members))
	for _, m := range members {
		ids = append(ids, m.ID)
	}

	logger.CtxDebug(ctx, "Resolved member ids for search", slog.String("search", term), slog.Int("count", len(ids)))
	return ids, nil
}

func (mr *MemberRepository) InsertMany(ctx context.Context, members []models.Member) (int, error) {
	n, err := mr.repo.CreateMany(ctx, members)
	if err != nil {
		logger.CtxError(ctx, log_messages.ErrorInsertingDocument, err,
			slog.String("collection", consts.MembersCollection),
			slog.Int("inserted", n),
		)
		return n, repository.TranslateError(err, resource)
	}
	return n, nil
}
