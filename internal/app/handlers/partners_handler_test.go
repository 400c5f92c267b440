package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/apperrors"
	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/consts"
	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/store/models"
	"github.com/FidelOdongoTech/Stima-demo02/internal/service/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

var keyCollectors = models.ExternalPartner{
	ID:             "pa-1",
	PartnerName:    "Key Collectors Ltd",
	PartnerType:    models.PartnerTypeDebtCollector,
	CommissionRate: 15,
	IsActive:       true,
}

func partnerRouter(partners *mocks.PartnerRepository) *gin.Engine {
	h := NewPartnerHandler(partners)
	r := gin.New()
	r.GET("/partners", h.List)
	r.GET("/partners/:id", h.Get)
	r.POST("/partners", h.Create)
	return r
}

func assignmentRouter(assignments *mocks.AssignmentRepository, partners *mocks.PartnerRepository, events *mocks.EventDispatcher, ids ...string) *gin.Engine {
	h := NewAssignmentHandler(assignments, partners, events)
	h.now = func() time.Time { return fixedNow }
	h.newID = fixedIDs(ids...)

	r := gin.New()
	r.GET("/partner-assignments", h.List)
	r.GET("/partner-assignments/:id", h.Get)
	r.POST("/partner-assignments", h.Create)
	r.PUT("/partner-assignments/:id", h.Update)
	return r
}

func TestPartnerHandlerList(t *testing.T) {
	tests := []struct {
		query      string
		activeOnly bool
		wantStatus int
	}{
		{query: "", activeOnly: true, wantStatus: http.StatusOK},
		{query: "?active_only=false", activeOnly: false, wantStatus: http.StatusOK},
		{query: "?active_only=maybe", wantStatus: http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run("query "+tt.query, func(t *testing.T) {
			partners := new(mocks.PartnerRepository)
			partners.On("List", mock.Anything, tt.activeOnly).Return([]models.ExternalPartner{keyCollectors}, nil).Maybe()

			w := perform(partnerRouter(partners), http.MethodGet, "/partners"+tt.query, nil)

			require.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Contains(t, w.Body.String(), `"commission_percentage":"15%"`)
				partners.AssertCalled(t, "List", mock.Anything, tt.activeOnly)
			} else {
				partners.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
			}
		})
	}
}

func TestPartnerHandlerCreate(t *testing.T) {
	in := models.ExternalPartnerCreate{
		PartnerName:    "Lakeside Auctioneers",
		PartnerType:    models.PartnerTypeAuctioneer,
		ContactPerson:  "James Otieno",
		Email:          "ops@lakeside.co.ke",
		PhoneNumber:    "+254733100200",
		CommissionRate: 10,
	}

	partners := new(mocks.PartnerRepository)
	created := models.NewExternalPartner(in, "pa-2", fixedNow)
	partners.On("Create", mock.Anything, in).Return(&created, nil).Once()
	router := partnerRouter(partners)

	w := perform(router, http.MethodPost, "/partners", in)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"is_active":true`)

	bad := in
	bad.CommissionRate = 120
	w = perform(router, http.MethodPost, "/partners", bad)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "commission_rate", decodeError(t, w).Details[0].Field)
	partners.AssertNumberOfCalls(t, "Create", 1)
}

func TestAssignmentHandlerList(t *testing.T) {
	assignments := new(mocks.AssignmentRepository)
	assignments.On("List", mock.Anything, models.PartnerAssignmentFilter{Status: "in_progress", PartnerID: "pa-1"}).
		Return([]models.PartnerAssignment{{ID: "as-1", ExpectedRecoveryAmount: 1000, ActualRecoveryAmount: 250}}, nil).Once()

	w := perform(assignmentRouter(assignments, nil, nil), http.MethodGet, "/partner-assignments?status=in_progress&partner_id=pa-1", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"recovery_percentage":25`)
}

func TestAssignmentHandlerCreate(t *testing.T) {
	in := models.PartnerAssignmentCreate{LoanID: "l-1", PartnerID: "pa-1", ExpectedRecoveryAmount: 80000}

	t.Run("assigned", func(t *testing.T) {
		assignments := new(mocks.AssignmentRepository)
		partners := new(mocks.PartnerRepository)
		events := new(mocks.EventDispatcher)
		want := models.NewPartnerAssignment(in, "as-1", fixedNow)
		partners.On("GetByID", mock.Anything, "pa-1").Return(&keyCollectors, nil).Once()
		assignments.On("Create", mock.Anything, want).Return(&want, nil).Once()
		events.On("CollectionEvent", mock.Anything, consts.EventPartnerAssigned, "as-1", "l-1", &want).Once()

		w := perform(assignmentRouter(assignments, partners, events, "as-1"), http.MethodPost, "/partner-assignments", in)

		require.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"assigned"`)
		assignments.AssertExpectations(t)
		events.AssertExpectations(t)
	})

	t.Run("inactive partner", func(t *testing.T) {
		assignments := new(mocks.AssignmentRepository)
		partners := new(mocks.PartnerRepository)
		inactive := keyCollectors
		inactive.IsActive = false
		partners.On("GetByID", mock.Anything, "pa-1").Return(&inactive, nil).Once()

		w := perform(assignmentRouter(assignments, partners, nil, "as-1"), http.MethodPost, "/partner-assignments", in)

		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
		details := decodeError(t, w).Details
		require.Len(t, details, 1)
		assert.Equal(t, "partner_id", details[0].Field)
		assert.Equal(t, "active", details[0].Tag)
		assignments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("unknown partner", func(t *testing.T) {
		assignments := new(mocks.AssignmentRepository)
		partners := new(mocks.PartnerRepository)
		partners.On("GetByID", mock.Anything, "pa-1").Return(nil, apperrors.NotFound("Partner")).Once()

		w := perform(assignmentRouter(assignments, partners, nil, "as-1"), http.MethodPost, "/partner-assignments", in)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assignments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestAssignmentHandlerUpdate(t *testing.T) {
	t.Run("recomputes commission", func(t *testing.T) {
		assignments := new(mocks.AssignmentRepository)
		partners := new(mocks.PartnerRepository)
		events := new(mocks.EventDispatcher)
		current := &models.PartnerAssignment{ID: "as-1", LoanID: "l-1", PartnerID: "pa-1", ExpectedRecoveryAmount: 80000}
		updated := &models.PartnerAssignment{
			ID:                     "as-1",
			LoanID:                 "l-1",
			PartnerID:              "pa-1",
			ExpectedRecoveryAmount: 80000,
			ActualRecoveryAmount:   40000,
			CommissionAmount:       6000,
			Status:                 models.AssignmentStatusInProgress,
		}
		assignments.On("GetByID", mock.Anything, "as-1").Return(current, nil).Once()
		partners.On("GetByID", mock.Anything, "pa-1").Return(&keyCollectors, nil).Once()
		assignments.On("Update", mock.Anything, "as-1", bson.M{
			"status":                 models.AssignmentStatusInProgress,
			"actual_recovery_amount": 40000.0,
			"commission_amount":      6000.0,
		}).Return(updated, nil).Once()
		events.On("CollectionEvent", mock.Anything, consts.EventAssignmentUpdated, "as-1", "l-1", updated).Once()

		w := perform(assignmentRouter(assignments, partners, events), http.MethodPut, "/partner-assignments/as-1",
			`{"status":"in_progress","actual_recovery_amount":40000}`)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"commission_amount":6000`)
		assert.Contains(t, w.Body.String(), `"recovery_percentage":50`)
		assignments.AssertExpectations(t)
		events.AssertExpectations(t)
	})

	t.Run("missing assignment", func(t *testing.T) {
		assignments := new(mocks.AssignmentRepository)
		partners := new(mocks.PartnerRepository)
		assignments.On("GetByID", mock.Anything, "as-404").Return(nil, apperrors.NotFound("Assignment")).Once()

		w := perform(assignmentRouter(assignments, partners, nil), http.MethodPut, "/partner-assignments/as-404", `{"notes":"Visited"}`)

		assert.Equal(t, http.StatusNotFound, w.Code)
		partners.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("unknown status", func(t *testing.T) {
		assignments := new(mocks.AssignmentRepository)

		w := perform(assignmentRouter(assignments, nil, nil), http.MethodPut, "/partner-assignments/as-1", `{"status":"closed"}`)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assignments.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})
}
