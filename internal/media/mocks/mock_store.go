package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) InsertRecord(ctx context.Context, collection string, record any) error {
	args := m.Called(ctx, collection, record)
	return args.Error(0)
}

func (m *MockStore) FindRecords(ctx context.Context, collection string, filter any, results any) error {
	args := m.Called(ctx, collection, filter, results)
	if f, ok := args.Get(0).(func(context.Context, string, any, any) error); ok {
		return f(ctx, collection, filter, results)
	}
	return args.Error(0)
}
