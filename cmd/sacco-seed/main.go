package main

import (
	"context"
	"flag"
	"log"
	"log/slog"

	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/cleanup"
	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/config"
	mongodb "github.com/FidelOdongoTech/Stima-demo02/internal/pkg/db/mongo"
	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/log_messages"
	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/logger"
	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/seed"
	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/store/impl/loans"
	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/store/impl/members"
	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/store/impl/partners"
)

// sacco-seed fills an empty database with generated members, loans and partners.
func main() {
	ctx := context.Background()

	logger.Init("info")

	cfg, err := config.LoadFromConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logger.Init(cfg.Logging.LogLevel)

	count := flag.Int("members", cfg.Seed.Members, "number of members to generate")
	flag.Parse()

	mongoClient, err := mongodb.ConnectToMongoDB(ctx, cfg.Mongo)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer cleanup.CleanupResources(ctx, mongoClient, nil)

	if err := mongodb.EnsureIndexes(ctx, mongoClient.Database); err != nil {
		logger.CtxError(ctx, log_messages.ErrorCreatingIndexes, err)
	}

	memberRepo := members.NewMemberRepository(mongoClient)
	generator := seed.NewGenerator(
		memberRepo,
		loans.NewLoanRepository(mongoClient, memberRepo, cfg.Loans.MemberSearchCap),
		partners.NewPartnerRepository(mongoClient),
	)

	summary, err := generator.Run(ctx, *count)
	if err != nil {
		logger.CtxError(ctx, log_messages.ErrorSeedingData, err)
		return
	}
	if summary.Skipped {
		logger.CtxInfo(ctx, "Members already present, nothing seeded")
		return
	}
	logger.CtxInfo(ctx, "Seed finished",
		slog.Int("members", summary.Members),
		slog.Int("loans", summary.Loans),
		slog.Int("partners", summary.Partners),
	)
}
