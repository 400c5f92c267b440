package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/FidelOdongoTech/Stima-demo02/internal/app/router"
	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/cleanup"
	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/config"
	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/consts"
	mongodb "github.com/FidelOdongoTech/Stima-demo02/internal/pkg/db/mongo"
	redisdb "github.com/FidelOdongoTech/Stima-demo02/internal/pkg/db/redis"
	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/gcs"
	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/kafka"
	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/log_messages"
	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/logger"
	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/otel"
	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/pubsub"
	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/seed"
	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/store/repository"
	"github.com/FidelOdongoTech/Stima-demo02/internal/service/events"
	"github.com/FidelOdongoTech/Stima-demo02/internal/service/interfaces"

	gcppubsub "cloud.google.com/go/pubsub"
)

func main() {

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Init("info")

	cfg, err := config.LoadFromConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logger.Init(cfg.Logging.LogLevel)

	otelShutdown, err := otel.Setup(ctx, cfg.Otel)
	if err != nil {
		logger.CtxError(ctx, "Failed to set up OpenTelemetry", err)
	}

	// Connect to MongoDB
	mongoClient, err := mongodb.ConnectToMongoDB(ctx, cfg.Mongo)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	if err := mongodb.EnsureIndexes(ctx, mongoClient.Database); err != nil {
		logger.CtxError(ctx, log_messages.ErrorCreatingIndexes, err)
	}

	// Redis backs the ProFIX sync records only
	var redisClient *redisdb.RedisClient
	var cache interfaces.RedisStoreOperations
	if cfg.Redis.Enabled() {
		redisClient, err = redisdb.ConnectToRedis(ctx, cfg.Redis, nil)
		if err != nil {
			logger.CtxError(ctx, "Failed to connect to Redis, sync records disabled", err)
		} else {
			cache = repository.NewRedisStoreAdapter(redisClient.Client)
		}
	}

	var producer interfaces.KafkaProducerInterface
	if cfg.Kafka.Enabled() {
		kafkaProducer, err := kafka.NewKafkaProducer(cfg.Kafka)
		if err != nil {
			logger.CtxError(ctx, "Failed to create Kafka producer, collection events disabled", err)
		} else {
			producer = kafkaProducer
		}
	}

	var publisher interfaces.PubSubPublisherInterface
	if cfg.PubSub.Enabled() {
		pubsubClient, err := initPubSubClient(ctx, cfg.PubSub.ProjectID, cfg.PubSub.NotificationTopic)
		if err != nil {
			logger.CtxError(ctx, "Failed to create Pub/Sub client, notification delivery disabled", err)
		} else {
			publisher = pubsubClient
		}
	}

	var gcsClient *gcs.GCSClient
	var uploader interfaces.ObjectUploaderInterface
	if cfg.GCS.Enabled() {
		gcsClient, err = gcs.NewGCSClient(ctx, cfg.GCS)
		if err != nil {
			logger.CtxError(ctx, "Failed to create GCS client, report export disabled", err)
		} else {
			uploader = gcsClient
		}
	}

	dispatcher := events.NewDispatcher(producer, publisher)
	logger.Debug("Event dispatcher created",
		slog.Bool("kafka", producer != nil),
		slog.Bool("pubsub", publisher != nil),
	)
	deps := router.NewDependencies(cfg, mongoClient, cache, uploader, dispatcher)

	if cfg.Seed.OnStartup {
		summary, err := seed.NewGenerator(deps.Members, deps.Loans, deps.Partners).Run(ctx, cfg.Seed.Members)
		if err != nil {
			logger.CtxError(ctx, log_messages.ErrorSeedingData, err)
		} else {
			logger.CtxInfo(ctx, "Seed finished",
				slog.Int("members", summary.Members),
				slog.Int("loans", summary.Loans),
				slog.Int("partners", summary.Partners),
				slog.Bool("skipped", summary.Skipped),
			)
		}
	}

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router.SetupRouter(cfg.Server, deps),
	}

	go func() {
		logger.CtxInfo(ctx, consts.ServiceTitle+" listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.CtxError(ctx, "Failed to start server", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.CtxError(shutdownCtx, "Server shutdown failed", err)
	}

	cleanup.CleanupResources(shutdownCtx, mongoClient, redisClient,
		dispatcher.Wait,
		func() {
			if producer != nil {
				producer.Close()
			}
		},
		func() {
			if publisher != nil {
				publisher.Close()
			}
		},
		func() {
			if gcsClient != nil {
				gcsClient.Close(shutdownCtx)
			}
		},
		func() {
			if otelShutdown != nil {
				if err := otelShutdown(shutdownCtx); err != nil {
					logger.CtxError(shutdownCtx, "Failed to shut down OpenTelemetry", err)
				}
			}
		},
	)
}

func initPubSubClient(ctx context.Context, projectID, topic string) (*pubsub.PubSubClient, error) {
	client, err := pubsub.NewPubSubClient(ctx, projectID, topic, gcppubsub.NewClient)
	if err != nil {
		return nil, err
	}

	logger.CtxInfo(ctx, "successful pubsub client creation",
		slog.String("pubsub_topic", topic),
	)

	return client, nil
}
