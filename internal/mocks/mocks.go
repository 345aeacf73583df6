package mocks

import (
	"context"

	"cart-service/internal/domain"
	"cart-service/internal/dto"
	"cart-service/internal/infra/cache"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct {
	mock.Mock
}

type MockCartItemRepository struct {
	mock.Mock
}

type MockMemberRepository struct {
	mock.Mock
}

type MockPublisher struct {
	mock.Mock
}

type MockOrderCache struct {
	mock.Mock
}

// MockTransactor runs fn directly and counts how often a unit of work was opened.
type MockTransactor struct {
	Calls int
}

func (m *MockTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.Calls++
	return fn(ctx)
}

func (m *MockPublisher) Publish(ctx context.Context, topic string, message any) error {
	args := m.Called(ctx, topic, message)
	return args.Error(0)
}

func (m *MockOrderRepository) Save(ctx context.Context, order *domain.Order) (uint64, error) {
	args := m.Called(ctx, order)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id uint64) (*domain.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderRepository) FindAllByMember(ctx context.Context, memberID uint64) ([]*domain.Order, error) {
	args := m.Called(ctx, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Order), args.Error(1)
}

func (m *MockOrderRepository) DeleteByID(ctx context.Context, id uint64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCartItemRepository) FindByIDs(ctx context.Context, ids []uint64) ([]*domain.CartItem, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.CartItem), args.Error(1)
}

func (m *MockCartItemRepository) DeleteByIDs(ctx context.Context, ids []uint64) error {
	args := m.Called(ctx, ids)
	return args.Error(0)
}

func (m *MockMemberRepository) FindByEmail(ctx context.Context, email string) (*domain.Member, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}

func (m *MockOrderCache) GetOrLoad(ctx context.Context, memberID uint64, load cache.LoadFunc) (*dto.OrdersResponse, error) {
	args := m.Called(ctx, memberID)
	if args.Get(0) == nil {
		if args.Error(1) == nil {
			return load(ctx)
		}
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.OrdersResponse), args.Error(1)
}

func (m *MockOrderCache) Invalidate(ctx context.Context, memberID uint64) {
	m.Called(ctx, memberID)
}
