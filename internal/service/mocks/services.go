package mocks

import (
	"context"
	"io"
	"time"

	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/consts"
	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/store/models"

	"github.com/stretchr/testify/mock"
)

type DashboardService struct {
	mock.Mock
}

func (m *DashboardService) Stats(ctx context.Context) (*models.DashboardStats, error) {
	args := m.Called(ctx)
	return typed[*models.DashboardStats](args, 0), args.Error(1)
}

type AutoDialService struct {
	mock.Mock
}

func (m *AutoDialService) Next(ctx context.Context) (*models.AutoDialCandidate, error) {
	args := m.Called(ctx)
	return typed[*models.AutoDialCandidate](args, 0), args.Error(1)
}

type ReportService struct {
	mock.Mock
}

func (m *ReportService) NPLSummary(ctx context.Context) ([]models.NPLSummaryRow, error) {
	args := m.Called(ctx)
	return typed[[]models.NPLSummaryRow](args, 0), args.Error(1)
}

func (m *ReportService) CollectionPerformance(ctx context.Context) ([]models.CollectionPerformanceRow, error) {
	args := m.Called(ctx)
	return typed[[]models.CollectionPerformanceRow](args, 0), args.Error(1)
}

func (m *ReportService) ExportNPLSummary(ctx context.Context) (*models.ReportExport, error) {
	args := m.Called(ctx)
	return typed[*models.ReportExport](args, 0), args.Error(1)
}

type ProfixService struct {
	mock.Mock
}

func (m *ProfixService) Sync(ctx context.Context, loanID string) (*models.ProfixSyncResult, error) {
	args := m.Called(ctx, loanID)
	return typed[*models.ProfixSyncResult](args, 0), args.Error(1)
}

func (m *ProfixService) LastSync(ctx context.Context, loanID string) (*models.ProfixSyncResult, error) {
	args := m.Called(ctx, loanID)
	return typed[*models.ProfixSyncResult](args, 0), args.Error(1)
}

type EventDispatcher struct {
	mock.Mock
}

func (m *EventDispatcher) CollectionEvent(ctx context.Context, eventType consts.EventType, entityID, loanID string, payload any) {
	m.Called(ctx, eventType, entityID, loanID, payload)
}

func (m *EventDispatcher) Notification(ctx context.Context, notification models.Notification) {
	m.Called(ctx, notification)
}

type RedisStore struct {
	mock.Mock
}

func (m *RedisStore) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return m.Called(ctx, key, value, expiration).Error(0)
}

func (m *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	return typed[[]byte](args, 0), args.Error(1)
}

func (m *RedisStore) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func (m *RedisStore) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (m *RedisStore) TTL(ctx context.Context, key string) (time.Duration, error) {
	args := m.Called(ctx, key)
	return typed[time.Duration](args, 0), args.Error(1)
}

func (m *RedisStore) SetJSON(ctx context.Context, key string, value any, expiration time.Duration) error {
	return m.Called(ctx, key, value, expiration).Error(0)
}

func (m *RedisStore) GetJSON(ctx context.Context, key string, dest any) error {
	return m.Called(ctx, key, dest).Error(0)
}

type ObjectUploader struct {
	mock.Mock
}

func (m *ObjectUploader) Upload(ctx context.Context, objectName, contentType string, body io.Reader) (string, error) {
	args := m.Called(ctx, objectName, contentType, body)
	return args.String(0), args.Error(1)
}

func (m *ObjectUploader) Bucket() string {
	return m.Called().String(0)
}

type HealthChecker struct {
	mock.Mock
}

func (m *HealthChecker) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
