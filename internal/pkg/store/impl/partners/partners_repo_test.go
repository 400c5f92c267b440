package partners

import (
	"context"
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
)

func TestList(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		activeOnly bool
		wantFilter bson.M
	}{
		{name: "active only", activeOnly: true, wantFilter: bson.M{"is_active": true}},
		{name: "all partners", activeOnly: false, wantFilter: bson.M{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(storetest.MockStore[models.ExternalPartner])
			store.On("Find", ctx, tt.wantFilter, mock.Anything).
				Return([]models.ExternalPartner{{ID: "pt-1", IsActive: true}}, nil).Once()

			got, err := NewPartnerRepositoryWithInterface(store).List(ctx, tt.activeOnly)
			require.NoError(t, err)
			assert.Len(t, got, 1)
			store.AssertExpectations(t)
		})
	}
}

func TestGetByID(t *testing.T) {
	ctx := context.Background()
	store := new(storetest.MockStore[models.ExternalPartner])
	store.On("FindOne", ctx, bson.M{"_id": "pt-404"}, mock.Anything).
		Return(models.ExternalPartner{}, mongo.ErrNoDocuments).Once()

	_, err := NewPartnerRepositoryWithInterface(store).GetByID(ctx, "pt-404")
	assert.True(t, apperrors.IsNotFound(err))
	assert.Equal(t, "Partner not found", err.Error())
}

func TestCreate(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 4, 2, 9, 0, 0, 0, time.UTC)
	in := models.ExternalPartnerCreate{
		PartnerName:    "Legal Eagles Advocates",
		PartnerType:    models.PartnerTypeLegalFirm,
		ContactPerson:  "Jane Wanjiku",
		Email:          "jane@legaleagles.co.ke",
		PhoneNumber:    "+254700000001",
		CommissionRate: 20,
	}

	store := new(storetest.MockStore[models.ExternalPartner])
	store.On("Create", ctx, mock.MatchedBy(func(p models.ExternalPartner) bool {
		return p.ID == "pt-1" && p.IsActive && p.CreatedAt.Equal(now)
	})).Return(&mongo.InsertOneResult{InsertedID: "pt-1"}, nil).Once()

	repo := NewPartnerRepositoryWithInterface(store)
	repo.now = func() time.Time { return now }
	repo.newID = func() string { return "pt-1" }

	got, err := repo.Create(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, "20%", got.CommissionPercentage())
	store.AssertExpectations(t)
}

func TestNewPartnerRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("list decodes partners", func(mt *mtest.T) {
		repo := NewPartnerRepository(&mongodb.MongoClient{Database: mt.DB})
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "db.external_partners", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: "pt-1"},
			{Key: "partner_name", Value: "Kenya Debt Recovery Ltd"},
			{Key: "commission_rate", Value: 15.0},
			{Key: "is_active", Value: true},
		}))

		got, err := repo.List(context.Background(), true)
		require.NoError(mt, err)
		require.Len(mt, got, 1)
		assert.Equal(mt, "Kenya Debt Recovery Ltd", got[0].PartnerName)
	})
}
