package profix

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/apperrors"
	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/config"
	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/consts"
	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/store/models"
	"github.com/FidelOdongoTech/Stima-demo02/internal/service/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	fixedNow = time.Date(2024, 4, 2, 9, 0, 0, 0, time.UTC)
	testCfg  = config.ProfixConfig{Variance: 0.05, SyncRecordTTL: 24 * time.Hour}
)

type fixture struct {
	loans   *mocks.LoanRepository
	cache   *mocks.RedisStore
	events  *mocks.EventDispatcher
	service *ProfixService
}

// newFixture feeds draws to the service in order.
func newFixture(cfg config.ProfixConfig, draws ...float64) *fixture {
	f := &fixture{
		loans:  new(mocks.LoanRepository),
		cache:  new(mocks.RedisStore),
		events: new(mocks.EventDispatcher),
	}
	f.service = NewProfixService(f.loans, f.cache, f.events, cfg)
	f.service.now = func() time.Time { return fixedNow }
	f.service.random = func() float64 {
		v := draws[0]
		draws = draws[1:]
		return v
	}
	return f
}

func TestSync(t *testing.T) {
	ctx := context.Background()
	loan := &models.LoanAccount{ID: "l-1", OutstandingBalance: 100000}

	tests := []struct {
		name    string
		draw    float64
		balance float64
		want    float64
	}{
		{name: "lowest factor", draw: 0, balance: 100000, want: 95000},
		{name: "midpoint keeps balance", draw: 0.5, balance: 100000, want: 100000},
		{name: "near highest factor", draw: 0.99, balance: 100000, want: 104900},
		{name: "rounded to cents", draw: 0.25, balance: 1234.567, want: 1203.70},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(testCfg, tt.draw)
			l := *loan
			l.OutstandingBalance = tt.balance
			f.loans.On("GetByID", ctx, "l-1").Return(&l, nil).Once()
			f.loans.On("UpdateOutstandingBalance", ctx, "l-1", tt.want, fixedNow).Return(nil).Once()
			f.cache.On("SetJSON", ctx, "profix:sync:l-1", mock.Anything, 24*time.Hour).Return(nil).Once()
			f.events.On("CollectionEvent", ctx, consts.EventLoanSynced, "l-1", "l-1", mock.Anything).Once()

			got, err := f.service.Sync(ctx, "l-1")
			require.NoError(t, err)
			assert.True(t, got.Success)
			assert.Equal(t, "Loan data synchronized with ProFIX", got.Message)
			assert.Equal(t, tt.balance, got.PreviousBalance)
			assert.InDelta(t, tt.want, got.UpdatedBalance, 1e-9)
			assert.Equal(t, fixedNow, got.SyncTime)
			f.loans.AssertExpectations(t)
			f.cache.AssertExpectations(t)
			f.events.AssertExpectations(t)
		})
	}
}

func TestSyncBalanceStaysWithinVariance(t *testing.T) {
	ctx := context.Background()
	for _, draw := range []float64{0, 0.1, 0.33, 0.5, 0.77, 0.999} {
		f := newFixture(testCfg, draw)
		f.loans.On("GetByID", ctx, "l-1").Return(&models.LoanAccount{ID: "l-1", OutstandingBalance: 50000}, nil)
		f.loans.On("UpdateOutstandingBalance", ctx, "l-1", mock.Anything, fixedNow).Return(nil)
		f.cache.On("SetJSON", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
		f.events.On("CollectionEvent", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)

		got, err := f.service.Sync(ctx, "l-1")
		require.NoError(t, err)
		assert.GreaterOrEqual(t, got.UpdatedBalance, 47500.0)
		assert.LessOrEqual(t, got.UpdatedBalance, 52500.0)
	}
}

func TestSyncErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown loan", func(t *testing.T) {
		f := newFixture(testCfg)
		f.loans.On("GetByID", ctx, "l-404").Return(nil, apperrors.NotFound("Loan")).Once()

		_, err := f.service.Sync(ctx, "l-404")
		assert.True(t, apperrors.IsNotFound(err))
	})

	t.Run("simulated outage", func(t *testing.T) {
		cfg := testCfg
		cfg.FailureRate = 0.2
		f := newFixture(cfg, 0.1)
		f.loans.On("GetByID", ctx, "l-1").Return(&models.LoanAccount{ID: "l-1", OutstandingBalance: 100}, nil).Once()

		_, err := f.service.Sync(ctx, "l-1")
		assert.Equal(t, apperrors.KindExternalService, apperrors.KindOf(err))
		f.loans.AssertNotCalled(t, "UpdateOutstandingBalance", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("cache failure does not fail the sync", func(t *testing.T) {
		f := newFixture(testCfg, 0.5)
		f.loans.On("GetByID", ctx, "l-1").Return(&models.LoanAccount{ID: "l-1", OutstandingBalance: 100}, nil).Once()
		f.loans.On("UpdateOutstandingBalance", ctx, "l-1", 100.0, fixedNow).Return(nil).Once()
		f.cache.On("SetJSON", ctx, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("redis down")).Once()
		f.events.On("CollectionEvent", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Once()

		got, err := f.service.Sync(ctx, "l-1")
		require.NoError(t, err)
		assert.True(t, got.Success)
	})
}

func TestLastSync(t *testing.T) {
	ctx := context.Background()

	t.Run("cached record", func(t *testing.T) {
		f := newFixture(testCfg)
		f.cache.On("GetJSON", ctx, "profix:sync:l-1", mock.Anything).Run(func(args mock.Arguments) {
			*args.Get(2).(*models.ProfixSyncResult) = models.ProfixSyncResult{Success: true, LoanID: "l-1", UpdatedBalance: 99.5}
		}).Return(nil).Once()

		got, err := f.service.LastSync(ctx, "l-1")
		require.NoError(t, err)
		assert.Equal(t, 99.5, got.UpdatedBalance)
	})

	t.Run("never synced", func(t *testing.T) {
		f := newFixture(testCfg)
		f.cache.On("GetJSON", ctx, "profix:sync:l-2", mock.Anything).Return(apperrors.NotFound("Cache entry")).Once()

		_, err := f.service.LastSync(ctx, "l-2")
		assert.True(t, apperrors.IsNotFound(err))
		assert.Equal(t, "Sync record not found", err.Error())
	})

	t.Run("no cache configured", func(t *testing.T) {
		s := NewProfixService(new(mocks.LoanRepository), nil, new(mocks.EventDispatcher), testCfg)
		_, err := s.LastSync(ctx, "l-1")
		assert.Equal(t, apperrors.KindServiceUnavailable, apperrors.KindOf(err))
	})
}
