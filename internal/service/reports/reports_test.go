package reports

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/apperrors"
	mongodb "github.com/FidelOdongoTech/Stima-demo02/internal/pkg/db/mongo"
	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/store/models"
	"github.com/FidelOdongoTech/Stima-demo02/internal/service/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

var fixedNow = time.Date(2024, 4, 2, 9, 30, 0, 0, time.UTC)

type mockAggregator struct {
	mock.Mock
}

func (m *mockAggregator) AggregateAll(ctx context.Context, pipeline interface{}, result interface{}) error {
	return m.Called(ctx, pipeline, result).Error(0)
}

var nplRows = []models.NPLSummaryRow{
	{BranchCode: "002", TotalLoans: 40, TotalOutstanding: 3200000, TotalArrears: 800000, AvgDaysArrears: 75.5},
	{BranchCode: "001", TotalLoans: 25, TotalOutstanding: 1100000.456, TotalArrears: 300000, AvgDaysArrears: 61},
}

func fillNPL(args mock.Arguments) {
	*args.Get(2).(*[]models.NPLSummaryRow) = nplRows
}

func newTestService(loans, promises *mockAggregator, uploader *mocks.ObjectUploader) *ReportService {
	var s *ReportService
	if uploader == nil {
		s = NewReportService(loans, promises, nil)
	} else {
		s = NewReportService(loans, promises, uploader)
	}
	s.now = func() time.Time { return fixedNow }
	return s
}

func TestNPLSummary(t *testing.T) {
	ctx := context.Background()

	t.Run("groups non-performing loans by branch", func(t *testing.T) {
		loans := new(mockAggregator)
		loans.On("AggregateAll", ctx, mock.MatchedBy(func(p mongo.Pipeline) bool {
			return len(p) == 3 &&
				assert.ObjectsAreEqual(bson.D{{Key: "status", Value: models.LoanStatusNonPerforming}}, p[0][0].Value) &&
				assert.ObjectsAreEqual(bson.D{{Key: "total_outstanding", Value: -1}}, p[2][0].Value)
		}), mock.Anything).Run(fillNPL).Return(nil).Once()

		rows, err := newTestService(loans, nil, nil).NPLSummary(ctx)
		require.NoError(t, err)
		assert.Equal(t, nplRows, rows)
		loans.AssertExpectations(t)
	})

	t.Run("no rows is an empty list", func(t *testing.T) {
		loans := new(mockAggregator)
		loans.On("AggregateAll", ctx, mock.Anything, mock.Anything).Return(nil).Once()

		rows, err := newTestService(loans, nil, nil).NPLSummary(ctx)
		require.NoError(t, err)
		assert.NotNil(t, rows)
		assert.Empty(t, rows)
	})
}

func TestCollectionPerformance(t *testing.T) {
	ctx := context.Background()
	since := time.Date(2024, 3, 3, 9, 30, 0, 0, time.UTC)

	promises := new(mockAggregator)
	promises.On("AggregateAll", ctx, mock.MatchedBy(func(p mongo.Pipeline) bool {
		return len(p) == 2 && assert.ObjectsAreEqual(
			bson.D{{Key: "promised_date", Value: bson.D{{Key: "$gte", Value: since}}}},
			p[0][0].Value,
		)
	}), mock.Anything).Run(func(args mock.Arguments) {
		*args.Get(2).(*[]models.CollectionPerformanceRow) = []models.CollectionPerformanceRow{
			{Status: models.PromiseStatusKept, Count: 12, TotalAmount: 240000},
			{Status: models.PromiseStatusBroken, Count: 3, TotalAmount: 45000},
		}
	}).Return(nil).Once()

	rows, err := newTestService(nil, promises, nil).CollectionPerformance(ctx)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
	promises.AssertExpectations(t)
}

func TestExportNPLSummary(t *testing.T) {
	ctx := context.Background()

	t.Run("uploads csv", func(t *testing.T) {
		loans := new(mockAggregator)
		loans.On("AggregateAll", ctx, mock.Anything, mock.Anything).Run(fillNPL).Return(nil).Once()

		var uploaded string
		uploader := new(mocks.ObjectUploader)
		uploader.On("Upload", ctx, "npl_summary_20240402T093000Z.csv", "text/csv", mock.Anything).
			Run(func(args mock.Arguments) {
				b, _ := io.ReadAll(args.Get(3).(io.Reader))
				uploaded = string(b)
			}).
			Return("reports/npl_summary_20240402T093000Z.csv", nil).Once()
		uploader.On("Bucket").Return("sacco-reports")

		export, err := newTestService(loans, nil, uploader).ExportNPLSummary(ctx)
		require.NoError(t, err)
		assert.Equal(t, &models.ReportExport{
			Bucket:     "sacco-reports",
			Object:     "reports/npl_summary_20240402T093000Z.csv",
			Rows:       2,
			ExportedAt: fixedNow,
		}, export)
		assert.Equal(t,
			"branch_code,total_loans,total_outstanding,total_arrears,avg_days_arrears\n"+
				"002,40,3200000.00,800000.00,75.5\n"+
				"001,25,1100000.46,300000.00,61.0\n",
			uploaded,
		)
	})

	t.Run("storage not configured", func(t *testing.T) {
		_, err := newTestService(new(mockAggregator), nil, nil).ExportNPLSummary(ctx)
		assert.Equal(t, apperrors.KindServiceUnavailable, apperrors.KindOf(err))
	})

	t.Run("upload failure", func(t *testing.T) {
		loans := new(mockAggregator)
		loans.On("AggregateAll", ctx, mock.Anything, mock.Anything).Run(fillNPL).Return(nil).Once()
		uploader := new(mocks.ObjectUploader)
		uploader.On("Upload", ctx, mock.Anything, mock.Anything, mock.Anything).Return("", errors.New("precondition failed")).Once()

		_, err := newTestService(loans, nil, uploader).ExportNPLSummary(ctx)
		assert.Equal(t, apperrors.KindExternalService, apperrors.KindOf(err))
	})
}

func TestNewReportServiceFromClient(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("npl summary through the driver", func(mt *mtest.T) {
		s := NewReportServiceFromClient(&mongodb.MongoClient{Database: mt.DB}, nil)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "db.loan_accounts", mtest.FirstBatch,
			bson.D{
				{Key: "_id", Value: "003"},
				{Key: "total_loans", Value: int64(4)},
				{Key: "total_outstanding", Value: 90000.0},
				{Key: "total_arrears", Value: 12000.0},
				{Key: "avg_days_arrears", Value: 45.25},
			},
		))

		rows, err := s.NPLSummary(context.Background())
		require.NoError(mt, err)
		require.Len(mt, rows, 1)
		assert.Equal(mt, "003", rows[0].BranchCode)
		assert.Equal(mt, int64(4), rows[0].TotalLoans)
		assert.Equal(mt, 45.25, rows[0].AvgDaysArrears)
	})
}
