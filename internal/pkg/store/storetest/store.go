// Package storetest provides a testify mock of the typed document store.
package storetest

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MockStore[T any] struct {
	mock.Mock
}

func (m *MockStore[T]) Create(ctx context.Context, document interface{}) (*mongo.InsertOneResult, error) {
	args := m.Called(ctx, document)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mongo.InsertOneResult), args.Error(1)
}

func (m *MockStore[T]) CreateMany(ctx context.Context, documents []T) (int, error) {
	args := m.Called(ctx, documents)
	return args.Int(0), args.Error(1)
}

func (m *MockStore[T]) FindOne(ctx context.Context, filter interface{}, opt *options.FindOneOptions) (T, error) {
	args := m.Called(ctx, filter, opt)
	if v, ok := args.Get(0).(T); ok {
		return v, args.Error(1)
	}
	var zero T
	return zero, args.Error(1)
}

func (m *MockStore[T]) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]T, error) {
	args := m.Called(ctx, filter, opts)
	if v, ok := args.Get(0).([]T); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStore[T]) UpdateOne(ctx context.Context, filter interface{}, update interface{}) (*mongo.UpdateResult, error) {
	args := m.Called(ctx, filter, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mongo.UpdateResult), args.Error(1)
}

func (m *MockStore[T]) Delete(ctx context.Context, filter interface{}) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStore[T]) CountDocuments(ctx context.Context, filter interface{}) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// AggregateAll fills result through a .Run hook on the expectation.
func (m *MockStore[T]) AggregateAll(ctx context.Context, pipeline interface{}, result interface{}) error {
	args := m.Called(ctx, pipeline, result)
	return args.Error(0)
}
