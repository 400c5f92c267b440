package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/config"
	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/store/models"
	"github.com/FidelOdongoTech/Stima-demo02/internal/service/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fixture struct {
	members  *mocks.MemberRepository
	loans    *mocks.LoanRepository
	database *mocks.HealthChecker
	router   *gin.Engine
}

func newFixture(cfg config.ServerConfig) fixture {
	f := fixture{
		members:  new(mocks.MemberRepository),
		loans:    new(mocks.LoanRepository),
		database: new(mocks.HealthChecker),
	}
	f.router = SetupRouter(cfg, Dependencies{
		Members:       f.members,
		Loans:         f.loans,
		Calls:         new(mocks.CallLogRepository),
		Promises:      new(mocks.PromiseRepository),
		Partners:      new(mocks.PartnerRepository),
		Assignments:   new(mocks.AssignmentRepository),
		Notifications: new(mocks.NotificationRepository),
		Dashboard:     new(mocks.DashboardService),
		AutoDial:      new(mocks.AutoDialService),
		Reports:       new(mocks.ReportService),
		Profix:        new(mocks.ProfixService),
		Events:        new(mocks.EventDispatcher),
		Database:      f.database,
	})
	return f
}

func serve(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSetupRouterRoutes(t *testing.T) {
	f := newFixture(config.ServerConfig{APIPrefix: "/api", CorsAllowedOrigins: []string{"http://localhost:3000"}})

	registered := map[string]bool{}
	for _, route := range f.router.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	for _, want := range []string{
		"GET /",
		"GET /health",
		"GET /api/members",
		"POST /api/members",
		"GET /api/members/number/:member_number",
		"GET /api/members/:id",
		"PUT /api/members/:id",
		"DELETE /api/members/:id",
		"GET /api/loans",
		"POST /api/loans",
		"GET /api/loans/portfolio-totals",
		"GET /api/loans/member/:member_id",
		"GET /api/loans/:id",
		"PUT /api/loans/:id",
		"GET /api/loans/:id/member",
		"GET /api/calls",
		"POST /api/calls",
		"GET /api/calls/auto-dial",
		"GET /api/promises",
		"POST /api/promises",
		"GET /api/promises/:id",
		"PUT /api/promises/:id/status",
		"GET /api/partners",
		"POST /api/partners",
		"GET /api/partners/:id",
		"GET /api/partner-assignments",
		"POST /api/partner-assignments",
		"GET /api/partner-assignments/:id",
		"PUT /api/partner-assignments/:id",
		"GET /api/notifications",
		"POST /api/notifications",
		"PUT /api/notifications/:id/read",
		"GET /api/dashboard/stats",
		"GET /api/reports/npl-summary",
		"POST /api/reports/npl-summary/export",
		"GET /api/reports/collection-performance",
		"GET /api/profix/sync/:loan_id",
		"GET /api/profix/sync/:loan_id/last",
	} {
		assert.True(t, registered[want], "missing route %s", want)
	}
}

func TestSetupRouterDefaultsPrefix(t *testing.T) {
	f := newFixture(config.ServerConfig{})
	f.members.On("List", mock.Anything, models.MemberFilter{}).Return([]models.Member{}, nil).Once()

	w := serve(f.router, httptest.NewRequest(http.MethodGet, "/api/members", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	f.members.AssertExpectations(t)
}

func TestSetupRouterReadsAreOpen(t *testing.T) {
	f := newFixture(config.ServerConfig{APIPrefix: "/api"})
	f.loans.On("GetByID", mock.Anything, "l-1").Return(&models.LoanAccount{ID: "l-1"}, nil).Once()

	w := serve(f.router, httptest.NewRequest(http.MethodGet, "/api/loans/l-1", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestSetupRouterWritesNeedToken(t *testing.T) {
	f := newFixture(config.ServerConfig{APIPrefix: "/api"})
	body := `{"member_number":"STM10001"}`

	req := httptest.NewRequest(http.MethodPost, "/api/members", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := serve(f.router, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
	f.members.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSetupRouterHealth(t *testing.T) {
	f := newFixture(config.ServerConfig{APIPrefix: "/api"})
	f.database.On("Ping", mock.Anything).Return(nil).Once()

	w := serve(f.router, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"healthy","database":"connected"}`, w.Body.String())
}

func TestSetupRouterCORSPreflight(t *testing.T) {
	f := newFixture(config.ServerConfig{APIPrefix: "/api", CorsAllowedOrigins: []string{"http://localhost:3000"}})

	req := httptest.NewRequest(http.MethodOptions, "/api/members", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := serve(f.router, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
}
