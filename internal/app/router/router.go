package router

import (
	"github.com/FidelOdongoTech/Stima-demo02/internal/app/handlers"
	"github.com/FidelOdongoTech/Stima-demo02/internal/app/middleware"
	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/config"
	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/consts"
	mongodb "github.com/FidelOdongoTech/Stima-demo02/internal/pkg/db/mongo"
	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/otel"
	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/store/impl/assignments"
	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/store/impl/calls"
	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/store/impl/loans"
	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/store/impl/members"
	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/store/impl/notifications"
	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/store/impl/partners"
	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/store/impl/promises"
	"github.com/FidelOdongoTech/Stima-demo02/internal/service/autodial"
	"github.com/FidelOdongoTech/Stima-demo02/internal/service/dashboard"
	"github.com/FidelOdongoTech/Stima-demo02/internal/service/interfaces"
	"github.com/FidelOdongoTech/Stima-demo02/internal/service/profix"
	"github.com/FidelOdongoTech/Stima-demo02/internal/service/reports"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// Dependencies are the repositories and services behind the HTTP handlers.
type Dependencies struct {
	Members       interfaces.MemberRepositoryInterface
	Loans         interfaces.LoanRepositoryInterface
	Calls         interfaces.CallLogRepositoryInterface
	Promises      interfaces.PromiseRepositoryInterface
	Partners      interfaces.PartnerRepositoryInterface
	Assignments   interfaces.PartnerAssignmentRepositoryInterface
	Notifications interfaces.NotificationRepositoryInterface
	Dashboard     interfaces.DashboardServiceInterface
	AutoDial      interfaces.AutoDialServiceInterface
	Reports       interfaces.ReportServiceInterface
	Profix        interfaces.ProfixServiceInterface
	Events        interfaces.EventDispatcherInterface
	Database      interfaces.HealthCheckerInterface
}

// NewDependencies builds the Mongo-backed repositories and the services on top of them.
// cache and uploader may be nil interfaces when Redis or GCS are not configured.
func NewDependencies(
	cfg *config.AppConfig,
	client *mongodb.MongoClient,
	cache interfaces.RedisStoreOperations,
	uploader interfaces.ObjectUploaderInterface,
	events interfaces.EventDispatcherInterface,
) Dependencies {
	memberRepo := members.NewMemberRepository(client)
	loanRepo := loans.NewLoanRepository(client, memberRepo, cfg.Loans.MemberSearchCap)
	callRepo := calls.NewCallLogRepository(client)
	promiseRepo := promises.NewPromiseRepository(client)
	partnerRepo := partners.NewPartnerRepository(client)
	assignmentRepo := assignments.NewAssignmentRepository(client)

	return Dependencies{
		Members:       memberRepo,
		Loans:         loanRepo,
		Calls:         callRepo,
		Promises:      promiseRepo,
		Partners:      partnerRepo,
		Assignments:   assignmentRepo,
		Notifications: notifications.NewNotificationRepository(client),
		Dashboard:     dashboard.NewDashboardService(memberRepo, loanRepo, callRepo, promiseRepo, assignmentRepo),
		AutoDial:      autodial.NewAutoDialServiceFromClient(client),
		Reports:       reports.NewReportServiceFromClient(client, uploader),
		Profix:        profix.NewProfixService(loanRepo, cache, events, cfg.Profix),
		Events:        events,
		Database:      client,
	}
}

func SetupRouter(cfg config.ServerConfig, deps Dependencies) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(otelgin.Middleware(consts.ServiceName))
	r.Use(middleware.NewMetricMiddleware(otel.Meter(consts.ServiceName)))
	r.Use(middleware.RequestContext())
	r.Use(middleware.CORS(cfg.CorsAllowedOrigins))

	healthCheckHandler := handlers.NewHealthCheckHandler(deps.Database)
	r.GET("/", healthCheckHandler.Root)
	r.GET("/health", healthCheckHandler.HealthCheck)

	prefix := cfg.APIPrefix
	if prefix == "" {
		prefix = consts.DefaultAPIPrefix
	}
	api := r.Group(prefix)
	api.Use(middleware.BearerAuth())

	memberHandler := handlers.NewMemberHandler(deps.Members)
	api.GET("/members", memberHandler.List)
	api.POST("/members", memberHandler.Create)
	api.GET("/members/number/:member_number", memberHandler.GetByNumber)
	api.GET("/members/:id", memberHandler.Get)
	api.PUT("/members/:id", memberHandler.Update)
	api.DELETE("/members/:id", memberHandler.Delete)

	loanHandler := handlers.NewLoanHandler(deps.Loans, deps.Members)
	api.GET("/loans", loanHandler.List)
	api.POST("/loans", loanHandler.Create)
	api.GET("/loans/portfolio-totals", loanHandler.PortfolioTotals)
	api.GET("/loans/member/:member_id", loanHandler.ListByMember)
	api.GET("/loans/:id", loanHandler.Get)
	api.PUT("/loans/:id", loanHandler.Update)
	api.GET("/loans/:id/member", loanHandler.Member)

	callHandler := handlers.NewCallHandler(deps.Calls, deps.AutoDial, deps.Events)
	api.GET("/calls", callHandler.List)
	api.POST("/calls", callHandler.Create)
	api.GET("/calls/auto-dial", callHandler.AutoDial)

	promiseHandler := handlers.NewPromiseHandler(deps.Promises, deps.Events)
	api.GET("/promises", promiseHandler.List)
	api.POST("/promises", promiseHandler.Create)
	api.GET("/promises/:id", promiseHandler.Get)
	api.PUT("/promises/:id/status", promiseHandler.UpdateStatus)

	partnerHandler := handlers.NewPartnerHandler(deps.Partners)
	api.GET("/partners", partnerHandler.List)
	api.POST("/partners", partnerHandler.Create)
	api.GET("/partners/:id", partnerHandler.Get)

	assignmentHandler := handlers.NewAssignmentHandler(deps.Assignments, deps.Partners, deps.Events)
	api.GET("/partner-assignments", assignmentHandler.List)
	api.POST("/partner-assignments", assignmentHandler.Create)
	api.GET("/partner-assignments/:id", assignmentHandler.Get)
	api.PUT("/partner-assignments/:id", assignmentHandler.Update)

	notificationHandler := handlers.NewNotificationHandler(deps.Notifications, deps.Events)
	api.GET("/notifications", notificationHandler.List)
	api.POST("/notifications", notificationHandler.Create)
	api.PUT("/notifications/:id/read", notificationHandler.MarkAsRead)

	api.GET("/dashboard/stats", handlers.NewDashboardHandler(deps.Dashboard).Stats)

	reportHandler := handlers.NewReportHandler(deps.Reports)
	api.GET("/reports/npl-summary", reportHandler.NPLSummary)
	api.POST("/reports/npl-summary/export", reportHandler.ExportNPLSummary)
	api.GET("/reports/collection-performance", reportHandler.CollectionPerformance)

	profixHandler := handlers.NewProfixHandler(deps.Profix)
	api.GET("/profix/sync/:loan_id", profixHandler.Sync)
	api.GET("/profix/sync/:loan_id/last", profixHandler.LastSync)

	return r
}
