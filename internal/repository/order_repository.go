package repository

import (
	"context"

	"cart-service/internal/domain"
)

type OrderRepository interface {
	Save(ctx context.Context, order *domain.Order) (uint64, error)
	FindByID(ctx context.Context, id uint64) (*domain.Order, error)
	FindAllByMember(ctx context.Context, memberID uint64) ([]*domain.Order, error)
	DeleteByID(ctx context.Context, id uint64) error
}

type CartItemRepository interface {
	FindByIDs(ctx context.Context, ids []uint64) ([]*domain.CartItem, error)
	DeleteByIDs(ctx context.Context, ids []uint64) error
}

type MemberRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.Member, error)
}

// Transactor runs fn in one unit of work. Repositories called with the ctx
// passed to fn join that unit of work.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
