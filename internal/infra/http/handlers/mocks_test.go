package handlers_test

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/xavierca1/leadscore/internal/entity"
)

// MockLeadRepository
type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) List(ctx context.Context) ([]entity.Lead, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) FindByID(ctx context.Context, id int) (*entity.Lead, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) FindByEmail(ctx context.Context, email string) (*entity.Lead, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *MockLeadRepository) IncrementScore(ctx context.Context, id, delta int) (int, error) {
	args := m.Called(ctx, id, delta)
	return args.Int(0), args.Error(1)
}

func (m *MockLeadRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockEventRepository
type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) Create(ctx context.Context, event *entity.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventRepository) ListRecent(ctx context.Context, limit int) ([]entity.Event, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Event), args.Error(1)
}

func (m *MockEventRepository) ListByLead(ctx context.Context, leadID int) ([]entity.Event, error) {
	args := m.Called(ctx, leadID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Event), args.Error(1)
}

// MockRuleRepository
type MockRuleRepository struct {
	mock.Mock
}

func (m *MockRuleRepository) List(ctx context.Context) ([]entity.ScoringRule, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.ScoringRule), args.Error(1)
}

func (m *MockRuleRepository) FindByEventType(ctx context.Context, eventType string) (*entity.ScoringRule, error) {
	args := m.Called(ctx, eventType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ScoringRule), args.Error(1)
}

func (m *MockRuleRepository) Update(ctx context.Context, id int, points *int, isActive *bool) (*entity.ScoringRule, error) {
	args := m.Called(ctx, id, points, isActive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ScoringRule), args.Error(1)
}

func (m *MockRuleRepository) SeedDefaults(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockScoreHistoryRepository
type MockScoreHistoryRepository struct {
	mock.Mock
}

func (m *MockScoreHistoryRepository) Add(ctx context.Context, entry *entity.ScoreHistory) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockScoreHistoryRepository) ListByLead(ctx context.Context, leadID int) ([]entity.ScoreHistory, error) {
	args := m.Called(ctx, leadID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.ScoreHistory), args.Error(1)
}

// MockBroadcaster
type MockBroadcaster struct {
	mock.Mock
}

func (m *MockBroadcaster) Broadcast(kind string, payload any) {
	m.Called(kind, payload)
}
