package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cart-service/internal/domain"
	"cart-service/internal/dto"
	rabbit "cart-service/internal/infra/rabbitmq"
	"cart-service/internal/repository"

	"go.uber.org/zap"
)

type OrderService struct {
	orders    repository.OrderRepository
	cartItems repository.CartItemRepository
	tx        repository.Transactor
	publisher rabbit.PublisherInterface
	logger    *zap.Logger
	now       func() time.Time
}

// NewOrderService wires the service. pub may be nil, in which case no events
// are published.
func NewOrderService(
	orders repository.OrderRepository,
	cartItems repository.CartItemRepository,
	tx repository.Transactor,
	pub rabbit.PublisherInterface,
	logger *zap.Logger,
) *OrderService {
	return &OrderService{
		orders:    orders,
		cartItems: cartItems,
		tx:        tx,
		publisher: pub,
		logger:    logger,
		now:       time.Now,
	}
}

// Add checks out the requested cart items. Loading the items, saving the
// order and removing the items from the cart commit together.
func (s *OrderService) Add(ctx context.Context, member domain.Member, req dto.OrderRequest) (*dto.OrderCreatedResponse, error) {
	ids := uniqueIDs(req.CartItemIDs)
	if len(ids) == 0 {
		return nil, domain.ErrEmptyOrder
	}
	if req.DiscountPrice < 0 || req.DeliveryFee < 0 {
		return nil, domain.ErrInvalidPrice
	}

	var order *domain.Order
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		cartItems, err := s.cartItems.FindByIDs(ctx, ids)
		if err != nil {
			return err
		}
		if len(cartItems) != len(ids) {
			return fmt.Errorf("%w: requested %d, found %d", domain.ErrCartItemNotFound, len(ids), len(cartItems))
		}

		lines := make([]domain.OrderItem, 0, len(cartItems))
		for _, ci := range cartItems {
			if err := ci.CheckOwner(member); err != nil {
				return err
			}
			lines = append(lines, ci.Snapshot())
		}

		order, err = s.buildOrder(member, lines, req)
		if err != nil {
			return err
		}

		id, err := s.orders.Save(ctx, order)
		if err != nil {
			return err
		}
		order.ID = id
		return s.cartItems.DeleteByIDs(ctx, ids)
	})
	if err != nil {
		s.logFailure("add order", member, 0, err)
		return nil, err
	}

	s.publish(ctx, domain.EventOrderCreated, domain.OrderCreatedEvent{
		OrderID:    order.ID,
		MemberID:   member.ID,
		TotalPrice: order.TotalPrice,
		CreatedAt:  order.CreatedAt,
	})

	s.logger.Info("order created",
		zap.Uint64("order_id", order.ID),
		zap.Uint64("member_id", member.ID),
		zap.Int64("total_price", order.TotalPrice))

	return dto.NewOrderCreatedResponse(order.ID), nil
}

// buildOrder computes the price breakdown from the snapshots. The client's
// productPrice and totalPrice are optional; when sent they must agree.
func (s *OrderService) buildOrder(member domain.Member, lines []domain.OrderItem, req dto.OrderRequest) (*domain.Order, error) {
	items, err := domain.NewOrderItems(lines)
	if err != nil {
		return nil, err
	}

	productPrice := items.ProductPrice()
	if req.DiscountPrice > productPrice {
		return nil, fmt.Errorf("%w: discount %d exceeds product price %d", domain.ErrInvalidPrice, req.DiscountPrice, productPrice)
	}
	totalPrice := productPrice - req.DiscountPrice + req.DeliveryFee

	if req.ProductPrice != 0 && req.ProductPrice != productPrice {
		return nil, fmt.Errorf("%w: product price %d, expected %d", domain.ErrPriceMismatch, req.ProductPrice, productPrice)
	}
	if req.TotalPrice != 0 && req.TotalPrice != totalPrice {
		return nil, fmt.Errorf("%w: total price %d, expected %d", domain.ErrPriceMismatch, req.TotalPrice, totalPrice)
	}

	return &domain.Order{
		Member:        member,
		OrderItems:    items,
		ProductPrice:  productPrice,
		DiscountPrice: req.DiscountPrice,
		DeliveryFee:   req.DeliveryFee,
		TotalPrice:    totalPrice,
		CreatedAt:     s.now(),
	}, nil
}

func (s *OrderService) FindByID(ctx context.Context, member domain.Member, orderID uint64) (*dto.OrderResponse, error) {
	order, err := s.loadOwned(ctx, member, orderID)
	if err != nil {
		s.logFailure("find order", member, orderID, err)
		return nil, err
	}
	return dto.NewOrderResponse(order), nil
}

// FindAll needs no ownership filter, the query is scoped by member id.
func (s *OrderService) FindAll(ctx context.Context, member domain.Member) (*dto.OrdersResponse, error) {
	orders, err := s.orders.FindAllByMember(ctx, member.ID)
	if err != nil {
		s.logFailure("find orders", member, 0, err)
		return nil, err
	}
	return dto.NewOrdersResponse(orders), nil
}

func (s *OrderService) Remove(ctx context.Context, member domain.Member, orderID uint64) error {
	if _, err := s.loadOwned(ctx, member, orderID); err != nil {
		s.logFailure("remove order", member, orderID, err)
		return err
	}

	if err := s.orders.DeleteByID(ctx, orderID); err != nil {
		s.logFailure("remove order", member, orderID, err)
		return err
	}

	s.publish(ctx, domain.EventOrderDeleted, domain.OrderDeletedEvent{OrderID: orderID, MemberID: member.ID})
	s.logger.Info("order removed", zap.Uint64("order_id", orderID), zap.Uint64("member_id", member.ID))
	return nil
}

// loadOwned reads the stored order and checks it belongs to member. The owner
// always comes from storage, never from the request.
func (s *OrderService) loadOwned(ctx context.Context, member domain.Member, orderID uint64) (*domain.Order, error) {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := order.CheckOwner(member); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *OrderService) publish(ctx context.Context, pattern string, evt any) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, pattern, evt); err != nil {
		s.logger.Error("failed to publish event", zap.String("pattern", pattern), zap.Error(err))
	}
}

func (s *OrderService) logFailure(op string, member domain.Member, orderID uint64, err error) {
	fields := []zap.Field{
		zap.String("op", op),
		zap.Uint64("member_id", member.ID),
		zap.Error(err),
	}
	if orderID != 0 {
		fields = append(fields, zap.Uint64("order_id", orderID))
	}
	if errors.Is(err, domain.ErrPersistence) {
		s.logger.Error("order operation failed", fields...)
		return
	}
	s.logger.Warn("order operation rejected", fields...)
}

func uniqueIDs(ids []uint64) []uint64 {
	seen := make(map[uint64]struct{}, len(ids))
	out := make([]uint64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
