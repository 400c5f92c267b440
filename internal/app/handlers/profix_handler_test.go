package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/apperrors"
	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/store/models"
	"github.com/FidelOdongoTech/Stima-demo02/internal/service/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func profixRouter(profix *mocks.ProfixService) *gin.Engine {
	h := NewProfixHandler(profix)
	r := gin.New()
	r.GET("/profix/sync/:loan_id", h.Sync)
	r.GET("/profix/sync/:loan_id/last", h.LastSync)
	return r
}

func TestProfixHandlerSync(t *testing.T) {
	profix := new(mocks.ProfixService)
	profix.On("Sync", mock.Anything, "l-1").Return(&models.ProfixSyncResult{
		Success:         true,
		Message:         "Loan data synchronized with ProFIX",
		LoanID:          "l-1",
		PreviousBalance: 100000,
		UpdatedBalance:  98250.4,
		SyncTime:        fixedNow,
	}, nil).Once()
	profix.On("Sync", mock.Anything, "l-2").
		Return(nil, apperrors.ExternalService("ProFIX sync failed", errors.New("simulated outage"))).Once()
	router := profixRouter(profix)

	w := perform(router, http.MethodGet, "/profix/sync/l-1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"updated_balance":98250.4`)

	w = perform(router, http.MethodGet, "/profix/sync/l-2", nil)
	require.Equal(t, http.StatusBadGateway, w.Code)
	body := decodeError(t, w)
	assert.Equal(t, "ProFIX sync failed", body.Message)
	assert.NotContains(t, w.Body.String(), "simulated outage")
}

func TestProfixHandlerLastSync(t *testing.T) {
	profix := new(mocks.ProfixService)
	profix.On("LastSync", mock.Anything, "l-1").Return(nil, apperrors.NotFound("Sync record")).Once()

	w := perform(profixRouter(profix), http.MethodGet, "/profix/sync/l-1/last", nil)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Sync record not found", decodeError(t, w).Message)
}
