package cleanup

import (
	"context"

	mongodb "github.com/FidelOdongoTech/Stima-demo02/internal/pkg/db/mongo"
	redisdb "github.com/FidelOdongoTech/Stima-demo02/internal/pkg/db/redis"
	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/logger"
)

// CleanupResources runs closers in order, then disconnects Redis and MongoDB.
// Nil clients are skipped.
func CleanupResources(ctx context.Context, mongoClient *mongodb.MongoClient, redisClient *redisdb.RedisClient, closers ...func()) {
	for _, closeFn := range closers {
		if closeFn != nil {
			closeFn()
		}
	}
	if redisClient != nil && redisClient.Client != nil {
		if err := redisdb.Disconnect(redisClient.Client); err != nil {
			logger.CtxError(ctx, "Failed to disconnect from Redis", err)
		}
	}
	if mongoClient != nil && mongoClient.Client != nil {
		if err := mongodb.Disconnect(mongoClient.Client); err != nil {
			logger.CtxError(ctx, "Failed to disconnect from MongoDB", err)
		}
	}
}
