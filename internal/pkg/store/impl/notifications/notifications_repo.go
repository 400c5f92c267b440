package notifications

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

const (
	resource     = "Notification"
	defaultLimit = 20
)

type NotificationRepository struct {
	repo interfaces.StoreInterface[models.Notification]
}

func NewNotificationRepository(client *mongodb.MongoClient) *NotificationRepository {
	collection := client.Database.Collection(consts.NotificationsCollection)
	return NewNotificationRepositoryWithInterface(repository.NewMongoRepository[models.Notification](collection))
}

func NewNotificationRepositoryWithInterface(repo interfaces.StoreInterface[models.Notification]) *NotificationRepository {
	return &NotificationRepository{repo: repo}
}

// List returns notifications newest first, 20 per page unless a limit is given.
func (nr *NotificationRepository) List(ctx context.Context, filter models.NotificationFilter) ([]models.Notification, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultLimit
	}

	q := query.New().
		Eq("recipient_id", filter.RecipientID).
		SortDesc("sent_at").
		Page(filter.Skip, limit)
	if filter.UnreadOnly {
		q.Is("is_read", false)
	}

	notifications, err := nr.repo.Find(ctx, q.Filter(), q.FindOptions())
	if err != nil {
		logger.CtxError(ctx, log_messages.ErrorFindingDocuments, err,
			slog.String("collection", consts.NotificationsCollection),
			slog.Bool("unread_only", filter.UnreadOnly),
		)
		return nil, repository.TranslateError(err, resource)
	}
	return notifications, nil
}

func (nr *NotificationRepository) Create(ctx context.Context, notification models.Notification) (*models.Notification, error) {
	if _, err := nr.repo.Create(ctx, notification); err != nil {
		logger.CtxError(ctx, log_messages.ErrorInsertingDocument, err,
			slog.String("collection", consts.NotificationsCollection),
			slog.String("recipient_id", notification.RecipientID),
		)
		return nil, repository.TranslateError(err, resource)
	}

	logger.CtxInfo(ctx, "Notification created",
		slog.String("notification_id", notification.ID),
		slog.String("recipient_type", notification.RecipientType),
		slog.String("notification_type", notification.NotificationType),
	)
	return &notification, nil
}

// MarkAsRead is idempotent apart from refreshing read_at.
func (nr *NotificationRepository) MarkAsRead(ctx context.Context, id string, at time.Time) (*models.Notification, error) {
	result, err := nr.repo.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"is_read": true, "read_at": at})
	if err != nil {
		logger.CtxError(ctx, log_messages.ErrorUpdatingDocument, err, slog.String("notification_id", id))
		return nil, repository.TranslateError(err, resource)
	}
	if result.MatchedCount == 0 {
		logger.CtxWarn(ctx, log_messages.DocumentNotFound,
			slog.String("collection", consts.NotificationsCollection),
			slog.String("notification_id", id),
		)
		return nil, apperrors.NotFound(resource)
	}

	notification, err := nr.repo.FindOne(ctx, bson.M{"_id": id}, options.FindOne())
	if err != nil {
		return nil, repository.TranslateError(err, resource)
	}
	return &notification, nil
}

func (nr *NotificationRepository) InsertMany(ctx context.Context, notifications []models.Notification) (int, error) {
	n, err := nr.repo.CreateMany(ctx, notifications)
	if err != nil {
		logger.CtxError(ctx, log_messages.ErrorInsertingDocument, err,
			slog.String("collection", consts.NotificationsCollection),
			slog.Int("inserted", n),
		)
		return n, repository.TranslateError(err, resource)
	}
	return n, nil
}
