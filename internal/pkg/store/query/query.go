// Package query turns optional list parameters into mongo filters and find options.
// Options are no-ops when their input is empty.
package query

import (
	"regexp"
	"time"

	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/consts"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Builder struct {
	filter bson.M
	sort   bson.D
	skip   int64
	limit  int64
}

func New() *Builder {
	return &Builder{filter: bson.M{}, limit: consts.DefaultLimit}
}

// Search matches term as a case-insensitive substring of any of fields.
func (b *Builder) Search(term string, fields ...string) *Builder {
	if term == "" || len(fields) == 0 {
		return b
	}
	pattern := regexp.QuoteMeta(term)
	or := make(bson.A, 0, len(fields))
	for _, f := range fields {
		or = append(or, bson.M{f: bson.M{"$regex": pattern, "$options": "i"}})
	}
	b.filter["$or"] = or
	return b
}

// Eq adds an equality match unless value is empty.
func (b *Builder) Eq(field, value string) *Builder {
	if value != "" {
		b.filter[field] = value
	}
	return b
}

// Is adds an equality match on any value, including zero values.
func (b *Builder) Is(field string, value any) *Builder {
	b.filter[field] = value
	return b
}

func (b *Builder) In(field string, values []string) *Builder {
	b.filter[field] = bson.M{"$in": values}
	return b
}

// Between adds the half-open window [from, to). A zero bound is left open.
func (b *Builder) Between(field string, from, to time.Time) *Builder {
	cond := bson.M{}
	if !from.IsZero() {
		cond["$gte"] = from
	}
	if !to.IsZero() {
		cond["$lt"] = to
	}
	if len(cond) > 0 {
		b.filter[field] = cond
	}
	return b
}

func (b *Builder) SortAsc(field string) *Builder {
	b.sort = append(b.sort, bson.E{Key: field, Value: 1})
	return b
}

func (b *Builder) SortDesc(field string) *Builder {
	b.sort = append(b.sort, bson.E{Key: field, Value: -1})
	return b
}

// Page clamps skip to >= 0 and limit to [1, MaxLimit], defaulting a
// non-positive limit to DefaultLimit.
func (b *Builder) Page(skip, limit int64) *Builder {
	b.skip, b.limit = ClampPage(skip, limit)
	return b
}

func (b *Builder) Filter() bson.M {
	return b.filter
}

func (b *Builder) FindOptions() *options.FindOptions {
	opts := options.Find().SetSkip(b.skip).SetLimit(b.limit)
	if len(b.sort) > 0 {
		opts.SetSort(b.sort)
	}
	return opts
}

func ClampPage(skip, limit int64) (int64, int64) {
	if skip < 0 {
		skip = 0
	}
	switch {
	case limit <= 0:
		limit = consts.DefaultLimit
	case limit > consts.MaxLimit:
		limit = consts.MaxLimit
	}
	return skip, limit
}

// DayWindow returns [midnight UTC of t's day, next midnight UTC).
func DayWindow(t time.Time) (time.Time, time.Time) {
	t = t.UTC()
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 0, 1)
}
