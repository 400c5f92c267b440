// Package mocks holds testify mocks of the service interfaces, shared by service and handler tests.
package mocks

import (
	"context"
	"time"

	"github.com/FidelOdongoTech/Stima-demo02/internal/pkg/store/models"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
)

// typed returns args.Get(i) as T, or T's zero value when the mock returned nil.
func typed[T any](args mock.Arguments, i int) T {
	if v, ok := args.Get(i).(T); ok {
		return v
	}
	var zero T
	return zero
}

type MemberRepository struct {
	mock.Mock
}

func (m *MemberRepository) List(ctx context.Context, filter models.MemberFilter) ([]models.Member, error) {
	args := m.Called(ctx, filter)
	return typed[[]models.Member](args, 0), args.Error(1)
}

func (m *MemberRepository) GetByID(ctx context.Context, id string) (*models.Member, error) {
	args := m.Called(ctx, id)
	return typed[*models.Member](args, 0), args.Error(1)
}

func (m *MemberRepository) GetByNumber(ctx context.Context, memberNumber string) (*models.Member, error) {
	args := m.Called(ctx, memberNumber)
	return typed[*models.Member](args, 0), args.Error(1)
}

func (m *MemberRepository) Create(ctx context.Context, in models.MemberCreate) (*models.Member, error) {
	args := m.Called(ctx, in)
	return typed[*models.Member](args, 0), args.Error(1)
}

func (m *MemberRepository) Update(ctx context.Context, id string, in models.MemberUpdate) (*models.Member, error) {
	args := m.Called(ctx, id, in)
	return typed[*models.Member](args, 0), args.Error(1)
}

func (m *MemberRepository) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MemberRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return typed[int64](args, 0), args.Error(1)
}

func (m *MemberRepository) InsertMany(ctx context.Context, members []models.Member) (int, error) {
	args := m.Called(ctx, members)
	return args.Int(0), args.Error(1)
}

func (m *MemberRepository) FindIDsBySearch(ctx context.Context, term string, limit int64) ([]string, error) {
	args := m.Called(ctx, term, limit)
	return typed[[]string](args, 0), args.Error(1)
}

type LoanRepository struct {
	mock.Mock
}

func (m *LoanRepository) List(ctx context.Context, filter models.LoanFilter) ([]models.LoanAccount, error) {
	args := m.Called(ctx, filter)
	return typed[[]models.LoanAccount](args, 0), args.Error(1)
}

func (m *LoanRepository) GetByID(ctx context.Context, id string) (*models.LoanAccount, error) {
	args := m.Called(ctx, id)
	return typed[*models.LoanAccount](args, 0), args.Error(1)
}

func (m *LoanRepository) ListByMember(ctx context.Context, memberID string) ([]models.LoanAccount, error) {
	args := m.Called(ctx, memberID)
	return typed[[]models.LoanAccount](args, 0), args.Error(1)
}

func (m *LoanRepository) Create(ctx context.Context, in models.LoanAccountCreate) (*models.LoanAccount, error) {
	args := m.Called(ctx, in)
	return typed[*models.LoanAccount](args, 0), args.Error(1)
}

func (m *LoanRepository) Update(ctx context.Context, id string, in models.LoanAccountUpdate) (*models.LoanAccount, error) {
	args := m.Called(ctx, id, in)
	return typed[*models.LoanAccount](args, 0), args.Error(1)
}

func (m *LoanRepository) UpdateOutstandingBalance(ctx context.Context, id string, balance float64, at time.Time) error {
	return m.Called(ctx, id, balance, at).Error(0)
}

func (m *LoanRepository) PortfolioTotals(ctx context.Context) (models.PortfolioTotals, error) {
	args := m.Called(ctx)
	return typed[models.PortfolioTotals](args, 0), args.Error(1)
}

func (m *LoanRepository) Count(ctx context.Context, status models.LoanStatus) (int64, error) {
	args := m.Called(ctx, status)
	return typed[int64](args, 0), args.Error(1)
}

func (m *LoanRepository) InsertMany(ctx context.Context, loans []models.LoanAccount) (int, error) {
	args := m.Called(ctx, loans)
	return args.Int(0), args.Error(1)
}

type CallLogRepository struct {
	mock.Mock
}

func (m *CallLogRepository) List(ctx context.Context, filter models.CallLogFilter) ([]models.CallLog, error) {
	args := m.Called(ctx, filter)
	return typed[[]models.CallLog](args, 0), args.Error(1)
}

func (m *CallLogRepository) Create(ctx context.Context, call models.CallLog) (*models.CallLog, error) {
	args := m.Called(ctx, call)
	return typed[*models.CallLog](args, 0), args.Error(1)
}

func (m *CallLogRepository) CountStartedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	args := m.Called(ctx, from, to)
	return typed[int64](args, 0), args.Error(1)
}

func (m *CallLogRepository) InsertMany(ctx context.Context, calls []models.CallLog) (int, error) {
	args := m.Called(ctx, calls)
	return args.Int(0), args.Error(1)
}

type PromiseRepository struct {
	mock.Mock
}

func (m *PromiseRepository) List(ctx context.Context, filter models.PromiseFilter) ([]models.PromiseToPay, error) {
	args := m.Called(ctx, filter)
	return typed[[]models.PromiseToPay](args, 0), args.Error(1)
}

func (m *PromiseRepository) GetByID(ctx context.Context, id string) (*models.PromiseToPay, error) {
	args := m.Called(ctx, id)
	return typed[*models.PromiseToPay](args, 0), args.Error(1)
}

func (m *PromiseRepository) Create(ctx context.Context, promise models.PromiseToPay) (*models.PromiseToPay, error) {
	args := m.Called(ctx, promise)
	return typed[*models.PromiseToPay](args, 0), args.Error(1)
}

func (m *PromiseRepository) UpdateStatus(ctx context.Context, id string, status models.PromiseStatus, at time.Time) (*models.PromiseToPay, error) {
	args := m.Called(ctx, id, status, at)
	return typed[*models.PromiseToPay](args, 0), args.Error(1)
}

func (m *PromiseRepository) CountDueBetween(ctx context.Context, status models.PromiseStatus, from, to time.Time) (int64, error) {
	args := m.Called(ctx, status, from, to)
	return typed[int64](args, 0), args.Error(1)
}

func (m *PromiseRepository) InsertMany(ctx context.Context, promises []models.PromiseToPay) (int, error) {
	args := m.Called(ctx, promises)
	return args.Int(0), args.Error(1)
}

type PartnerRepository struct {
	mock.Mock
}

func (m *PartnerRepository) List(ctx context.Context, activeOnly bool) ([]models.ExternalPartner, error) {
	args := m.Called(ctx, activeOnly)
	return typed[[]models.ExternalPartner](args, 0), args.Error(1)
}

func (m *PartnerRepository) GetByID(ctx context.Context, id string) (*models.ExternalPartner, error) {
	args := m.Called(ctx, id)
	return typed[*models.ExternalPartner](args, 0), args.Error(1)
}

func (m *PartnerRepository) Create(ctx context.Context, in models.ExternalPartnerCreate) (*models.ExternalPartner, error) {
	args := m.Called(ctx, in)
	return typed[*models.ExternalPartner](args, 0), args.Error(1)
}

func (m *PartnerRepository) InsertMany(ctx context.Context, partners []models.ExternalPartner) (int, error) {
	args := m.Called(ctx, partners)
	return args.Int(0), args.Error(1)
}

type AssignmentRepository struct {
	mock.Mock
}

func (m *AssignmentRepository) List(ctx context.Context, filter models.PartnerAssignmentFilter) ([]models.PartnerAssignment, error) {
	args := m.Called(ctx, filter)
	return typed[[]models.PartnerAssignment](args, 0), args.Error(1)
}

func (m *AssignmentRepository) GetByID(ctx context.Context, id string) (*models.PartnerAssignment, error) {
	args := m.Called(ctx, id)
	return typed[*models.PartnerAssignment](args, 0), args.Error(1)
}

func (m *AssignmentRepository) Create(ctx context.Context, assignment models.PartnerAssignment) (*models.PartnerAssignment, error) {
	args := m.Called(ctx, assignment)
	return typed[*models.PartnerAssignment](args, 0), args.Error(1)
}

func (m *AssignmentRepository) Update(ctx context.Context, id string, fields bson.M) (*models.PartnerAssignment, error) {
	args := m.Called(ctx, id, fields)
	return typed[*models.PartnerAssignment](args, 0), args.Error(1)
}

func (m *AssignmentRepository) CountByStatus(ctx context.Context, status models.AssignmentStatus) (int64, error) {
	args := m.Called(ctx, status)
	return typed[int64](args, 0), args.Error(1)
}

func (m *AssignmentRepository) InsertMany(ctx context.Context, assignments []models.PartnerAssignment) (int, error) {
	args := m.Called(ctx, assignments)
	return args.Int(0), args.Error(1)
}

type NotificationRepository struct {
	mock.Mock
}

func (m *NotificationRepository) List(ctx context.Context, filter models.NotificationFilter) ([]models.Notification, error) {
	args := m.Called(ctx, filter)
	return typed[[]models.Notification](args, 0), args.Error(1)
}

func (m *NotificationRepository) Create(ctx context.Context, notification models.Notification) (*models.Notification, error) {
	args := m.Called(ctx, notification)
	return typed[*models.Notification](args, 0), args.Error(1)
}

func (m *NotificationRepository) MarkAsRead(ctx context.Context, id string, at time.Time) (*models.Notification, error) {
	args := m.Called(ctx, id, at)
	return typed[*models.Notification](args, 0), args.Error(1)
}

func (m *NotificationRepository) InsertMany(ctx context.Context, notifications []models.Notification) (int, error) {
	args := m.Called(ctx, notifications)
	return args.Int(0), args.Error(1)
}
