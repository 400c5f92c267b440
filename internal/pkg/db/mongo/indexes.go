package mongo

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/consts"
	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/log_messages"
	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func collectionIndexes() map[string][]mongo.IndexModel {
	return map[string][]mongo.IndexModel{
		consts.MembersCollection: {
			{
				Keys:    bson.D{{Key: "member_number", Value: 1}},
				Options: options.Index().SetUnique(true).SetName("uniq_member_number"),
			},
			{Keys: bson.D{{Key: "branch", Value: 1}}},
		},
		consts.LoanAccountsCollection: {
			{Keys: bson.D{{Key: "member_id", Value: 1}}},
			{Keys: bson.D{{Key: "status", Value: 1}, {Key: "branch", Value: 1}}},
		},
		consts.CallLogsCollection: {
			{Keys: bson.D{{Key: "loan_id", Value: 1}, {Key: "call_start_time", Value: -1}}},
			{Keys: bson.D{{Key: "call_start_time", Value: -1}}},
		},
		consts.PromisesToPayCollection: {
			{Keys: bson.D{{Key: "status", Value: 1}, {Key: "promise_date", Value: 1}}},
			{Keys: bson.D{{Key: "loan_id", Value: 1}}},
		},
		consts.PartnerAssignmentsCollection: {
			{Keys: bson.D{{Key: "partner_id", Value: 1}, {Key: "status", Value: 1}}},
		},
		consts.NotificationsCollection: {
			{Keys: bson.D{{Key: "is_read", Value: 1}, {Key: "created_at", Value: -1}}},
		},
	}
}

// EnsureIndexes creates the indexes the service relies on. The unique
// member_number index backs the duplicate-member conflict response.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	for _, name := range indexedCollections {
		models := collectionIndexes()[name]
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
			logger.CtxError(ctx, log_messages.ErrorCreatingIndexes, err, slog.String("collection", name))
			return fmt.Errorf("create indexes on %s: %w", name, err)
		}
	}
	logger.CtxInfo(ctx, "MongoDB indexes ensured", slog.Int("collections", len(indexedCollections)))
	return nil
}

// creation order
var indexedCollections = []string{
	consts.MembersCollection,
	consts.LoanAccountsCollection,
	consts.CallLogsCollection,
	consts.PromisesToPayCollection,
	consts.PartnerAssignmentsCollection,
	consts.NotificationsCollection,
}
