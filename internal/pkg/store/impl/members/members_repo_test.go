package members

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

var fixedNow = time.Date(2024, 4, 2, 9, 0, 0, 0, time.UTC)

func newTestRepo(store *storetest.MockStore[models.Member]) *MemberRepository {
	repo := NewMemberRepositoryWithInterface(store)
	repo.now = func() time.Time { return fixedNow }
	repo.newID = func() string { return "member-1" }
	return repo
}

func TestList(t *testing.T) {
	ctx := context.Background()

	t.Run("search is an OR over four fields", func(t *testing.T) {
		store := new(storetest.MockStore[models.Member])
		store.On("Find", ctx, mock.MatchedBy(func(f bson.M) bool {
			or, ok := f["$or"].(bson.A)
			return ok && len(or) == 4
		}), mock.MatchedBy(func(opts []*options.FindOptions) bool {
			return len(opts) == 1 && *opts[0].Skip == 10 && *opts[0].Limit == 5
		})).Return([]models.Member{{ID: "m-1", LastName: "Kamau"}}, nil).Once()

		got, err := newTestRepo(store).List(ctx, models.MemberFilter{Search: "kamau", Skip: 10, Limit: 5})
		require.NoError(t, err)
		assert.Len(t, got, 1)
		store.AssertExpectations(t)
	})

	t.Run("no search means empty filter", func(t *testing.T) {
		store := new(storetest.MockStore[models.Member])
		store.On("Find", ctx, bson.M{}, mock.Anything).Return([]models.Member{}, nil).Once()

		got, err := newTestRepo(store).List(ctx, models.MemberFilter{})
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("driver error", func(t *testing.T) {
		store := new(storetest.MockStore[models.Member])
		store.On("Find", ctx, mock.Anything, mock.Anything).Return(nil, errors.New("db error")).Once()

		_, err := newTestRepo(store).List(ctx, models.MemberFilter{})
		assert.EqualError(t, err, "db error")
	})
}

func TestGetByID(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		member   models.Member
		err      error
		wantKind apperrors.Kind
	}{
		{name: "found", member: models.Member{ID: "m-1", MemberNumber: "STM10001"}},
		{name: "not found", err: mongo.ErrNoDocuments, wantKind: apperrors.KindNotFound},
		{name: "unexpected error", err: errors.New("db error"), wantKind: apperrors.KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(storetest.MockStore[models.Member])
			store.On("FindOne", ctx, bson.M{"_id": "m-1"}, mock.Anything).Return(tt.member, tt.err).Once()

			got, err := newTestRepo(store).GetByID(ctx, "m-1")
			if tt.err != nil {
				require.Error(t, err)
				assert.Nil(t, got)
				assert.Equal(t, tt.wantKind, apperrors.KindOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "STM10001", got.MemberNumber)
			store.AssertExpectations(t)
		})
	}
}

func TestGetByNumber(t *testing.T) {
	ctx := context.Background()
	store := new(storetest.MockStore[models.Member])
	store.On("FindOne", ctx, bson.M{"member_number": "STM10042"}, mock.Anything).
		Return(models.Member{ID: "m-42", MemberNumber: "STM10042"}, nil).Once()

	got, err := newTestRepo(store).GetByNumber(ctx, "STM10042")
	require.NoError(t, err)
	assert.Equal(t, "m-42", got.ID)
}

func TestCreate(t *testing.T) {
	ctx := context.Background()
	in := models.MemberCreate{MemberNumber: "STM10001", FirstName: "Grace", LastName: "Kamau"}

	t.Run("assigns id and registration date", func(t *testing.T) {
		store := new(storetest.MockStore[models.Member])
		store.On("Create", ctx, mock.MatchedBy(func(m models.Member) bool {
			return m.ID == "member-1" && m.RegistrationDate.Equal(fixedNow) && m.Status == "active"
		})).Return(&mongo.InsertOneResult{InsertedID: "member-1"}, nil).Once()

		got, err := newTestRepo(store).Create(ctx, in)
		require.NoError(t, err)
		assert.Equal(t, "member-1", got.ID)
		assert.Equal(t, fixedNow, got.CreatedAt)
		store.AssertExpectations(t)
	})

	t.Run("duplicate member number is a conflict", func(t *testing.T) {
		store := new(storetest.MockStore[models.Member])
		dup := mongo.WriteException{WriteErrors: mongo.WriteErrors{{Code: 11000, Message: "E11000"}}}
		store.On("Create", ctx, mock.Anything).Return(nil, dup).Once()

		_, err := newTestRepo(store).Create(ctx, in)
		assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))
	})
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	phone := "+254711000000"
	in := models.MemberUpdate{PhoneNumber: &phone}

	t.Run("updates and returns the record", func(t *testing.T) {
		store := new(storetest.MockStore[models.Member])
		store.On("UpdateOne", ctx, bson.M{"_id": "m-1"}, bson.M{"phone_number": phone, "updated_at": fixedNow}).
			Return(&mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil).Once()
		store.On("FindOne", ctx, bson.M{"_id": "m-1"}, mock.Anything).
			Return(models.Member{ID: "m-1", PhoneNumber: phone}, nil).Once()

		got, err := newTestRepo(store).Update(ctx, "m-1", in)
		require.NoError(t, err)
		assert.Equal(t, phone, got.PhoneNumber)
		store.AssertExpectations(t)
	})

	t.Run("unchanged document still counts as found", func(t *testing.T) {
		store := new(storetest.MockStore[models.Member])
		store.On("UpdateOne", ctx, mock.Anything, mock.Anything).
			Return(&mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 0}, nil).Once()
		store.On("FindOne", ctx, mock.Anything, mock.Anything).Return(models.Member{ID: "m-1"}, nil).Once()

		_, err := newTestRepo(store).Update(ctx, "m-1", in)
		assert.NoError(t, err)
	})

	t.Run("missing member", func(t *testing.T) {
		store := new(storetest.MockStore[models.Member])
		store.On("UpdateOne", ctx, mock.Anything, mock.Anything).
			Return(&mongo.UpdateResult{MatchedCount: 0}, nil).Once()

		_, err := newTestRepo(store).Update(ctx, "m-9", in)
		assert.True(t, apperrors.IsNotFound(err))
		store.AssertNotCalled(t, "FindOne", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("empty update is a read", func(t *testing.T) {
		store := new(storetest.MockStore[models.Member])
		store.On("FindOne", ctx, bson.M{"_id": "m-1"}, mock.Anything).Return(models.Member{ID: "m-1"}, nil).Once()

		_, err := newTestRepo(store).Update(ctx, "m-1", models.MemberUpdate{})
		assert.NoError(t, err)
		store.AssertNotCalled(t, "UpdateOne", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()

	store := new(storetest.MockStore[models.Member])
	store.On("Delete", ctx, bson.M{"_id": "m-1"}).Return(int64(1), nil).Once()
	store.On("Delete", ctx, bson.M{"_id": "m-2"}).Return(int64(0), nil).Once()
	repo := newTestRepo(store)

	found, err := repo.Delete(ctx, "m-1")
	require.NoError(t, err)
	assert.True(t, found)

	found, err = repo.Delete(ctx, "m-2")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCount(t *testing.T) {
	ctx := context.Background()
	store := new(storetest.MockStore[models.Member])
	store.On("CountDocuments", ctx, bson.M{}).Return(int64(1000), nil).Once()

	n, err := newTestRepo(store).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), n)
}

func TestFindIDsBySearch(t *testing.T) {
	ctx := context.Background()
	store := new(storetest.MockStore[models.Member])
	store.On("Find", ctx, mock.MatchedBy(func(f bson.M) bool {
		or, ok := f["$or"].(bson.A)
		return ok && len(or) == 3
	}), mock.MatchedBy(func(opts []*options.FindOptions) bool {
		return len(opts) == 1 && *opts[0].Limit == 250
	})).Return([]models.Member{{ID: "m-1"}, {ID: "m-2"}}, nil).Once()

	ids, err := newTestRepo(store).FindIDsBySearch(ctx, "otieno", 250)
	require.NoError(t, err)
	assert.Equal(t, []string{"m-1", "m-2"}, ids)
}

func TestInsertMany(t *testing.T) {
	ctx := context.Background()
	members := []models.Member{{ID: "a"}, {ID: "b"}}
	store := new(storetest.MockStore[models.Member])
	store.On("CreateMany", ctx, members).Return(2, nil).Once()

	n, err := newTestRepo(store).InsertMany(ctx, members)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestNewMemberRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("reads through the members collection", func(mt *mtest.T) {
		repo := NewMemberRepository(&mongodb.MongoClient{Database: mt.DB})
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "db.members", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: "m-1"},
			{Key: "member_number", Value: "STM10001"},
			{Key: "first_name", Value: "Grace"},
			{Key: "last_name", Value: "Kamau"},
		}))

		got, err := repo.GetByID(context.Background(), "m-1")
		require.NoError(mt, err)
		assert.Equal(mt, "Grace Kamau", got.FullName())
	})
}
