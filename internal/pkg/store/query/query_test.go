package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestSearch(t *testing.T) {
	t.Run("or across fields with escaped pattern", func(t *testing.T) {
		f := New().Search("a.b", "first_name", "last_name").Filter()
		assert.Equal(t, bson.A{
			bson.M{"first_name": bson.M{"$regex": `a\.b`, "$options": "i"}},
			bson.M{"last_name": bson.M{"$regex": `a\.b`, "$options": "i"}},
		}, f["$or"])
	})

	t.Run("empty term adds nothing", func(t *testing.T) {
		assert.Empty(t, New().Search("", "first_name").Filter())
	})
}

func TestEqAndIs(t *testing.T) {
	f := New().Eq("status", "pending").Eq("loan_id", "").Is("is_read", false).Filter()
	assert.Equal(t, bson.M{"status": "pending", "is_read": false}, f)
}

func TestIn(t *testing.T) {
	f := New().In("member_id", []string{"a", "b"}).Filter()
	assert.Equal(t, bson.M{"member_id": bson.M{"$in": []string{"a", "b"}}}, f)
}

func TestBetween(t *testing.T) {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)

	assert.Equal(t, bson.M{"call_start_time": bson.M{"$gte": from, "$lt": to}},
		New().Between("call_start_time", from, to).Filter())
	assert.Equal(t, bson.M{"promised_date": bson.M{"$gte": from}},
		New().Between("promised_date", from, time.Time{}).Filter())
	assert.Empty(t, New().Between("x", time.Time{}, time.Time{}).Filter())
}

func TestFindOptions(t *testing.T) {
	opts := New().SortDesc("call_start_time").SortAsc("_id").Page(20, 10).FindOptions()
	require.NotNil(t, opts.Skip)
	require.NotNil(t, opts.Limit)
	assert.Equal(t, int64(20), *opts.Skip)
	assert.Equal(t, int64(10), *opts.Limit)
	assert.Equal(t, bson.D{{Key: "call_start_time", Value: -1}, {Key: "_id", Value: 1}}, opts.Sort)

	plain := New().FindOptions()
	assert.Equal(t, int64(50), *plain.Limit)
	assert.Nil(t, plain.Sort)
}

func TestClampPage(t *testing.T) {
	tests := []struct {
		name                string
		skip, limit         int64
		wantSkip, wantLimit int64
	}{
		{"defaults", 0, 0, 0, 50},
		{"negative skip", -5, 10, 0, 10},
		{"over max", 0, 5000, 0, 1000},
		{"negative limit", 3, -1, 3, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			skip, limit := ClampPage(tt.skip, tt.limit)
			assert.Equal(t, tt.wantSkip, skip)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}

func TestDayWindow(t *testing.T) {
	eat := time.FixedZone("EAT", 3*3600)
	start, end := DayWindow(time.Date(2024, 5, 10, 1, 30, 0, 0, eat))

	assert.Equal(t, time.Date(2024, 5, 9, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC), end)
}
