package calls

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/apperrors"
	mongodb "github.com/FidelOdongoTech/Stima-demo02/internal/pkg/db/mongo"
	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/store/models"
	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/store/storetest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func TestList(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		filter     models.CallLogFilter
		wantFilter bson.M
		result     []models.CallLog
		err        error
		wantErr    bool
	}{
		{
			name:       "all calls",
			wantFilter: bson.M{},
			result:     []models.CallLog{{ID: "c-1"}, {ID: "c-2"}},
		},
		{
			name:       "by loan",
			filter:     models.CallLogFilter{LoanID: "l-1"},
			wantFilter: bson.M{"loan_id": "l-1"},
			result:     []models.CallLog{{ID: "c-1", LoanID: "l-1"}},
		},
		{
			name:       "database error",
			wantFilter: bson.M{},
			err:        errors.New("boom"),
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(storetest.MockStore[models.CallLog])
			store.On("Find", ctx, tt.wantFilter, mock.MatchedBy(func(opts []*options.FindOptions) bool {
				return len(opts) == 1 && assert.ObjectsAreEqual(bson.D{{Key: "call_start_time", Value: -1}}, opts[0].Sort)
			})).Return(tt.result, tt.err).Once()

			got, err := NewCallLogRepositoryWithInterface(store).List(ctx, tt.filter)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.result, got)
			store.AssertExpectations(t)
		})
	}
}

func TestCreate(t *testing.T) {
	ctx := context.Background()
	call := models.CallLog{ID: "c-1", LoanID: "l-1", CallStatus: models.CallStatusSuccessful}

	t.Run("success", func(t *testing.T) {
		store := new(storetest.MockStore[models.CallLog])
		store.On("Create", ctx, call).Return(&mongo.InsertOneResult{InsertedID: "c-1"}, nil).Once()

		got, err := NewCallLogRepositoryWithInterface(store).Create(ctx, call)
		require.NoError(t, err)
		assert.Equal(t, "c-1", got.ID)
	})

	t.Run("duplicate id", func(t *testing.T) {
		store := new(storetest.MockStore[models.CallLog])
		dup := mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000, Message: "E11000 duplicate key"}}}
		store.On("Create", ctx, call).Return(nil, dup).Once()

		_, err := NewCallLogRepositoryWithInterface(store).Create(ctx, call)
		assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))
	})
}

func TestCountStartedBetween(t *testing.T) {
	ctx := context.Background()
	from := time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)

	store := new(storetest.MockStore[models.CallLog])
	store.On("CountDocuments", ctx, bson.M{"call_start_time": bson.M{"$gte": from, "$lt": to}}).Return(int64(42), nil).Once()

	got, err := NewCallLogRepositoryWithInterface(store).CountStartedBetween(ctx, from, to)
	require.NoError(t, err)
	assert.Equal(t, int64(42), got)
}

func TestNewCallLogRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("insert many", func(mt *mtest.T) {
		repo := NewCallLogRepository(&mongodb.MongoClient{Database: mt.DB})
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 2}))

		n, err := repo.InsertMany(context.Background(), []models.CallLog{{ID: "c-1"}, {ID: "c-2"}})
		require.NoError(mt, err)
		assert.Equal(mt, 2, n)
	})
}
