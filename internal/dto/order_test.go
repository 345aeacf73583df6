package dto

import (
	"testing"
	"time"

	"cart-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderResponse(t *testing.T) {
	items, err := domain.NewOrderItems([]domain.OrderItem{
		{ID: 1, ProductName: "Shirt", ProductPrice: 10000, ProductImageURL: "http://img/shirt.png", Quantity: 2},
	})
	require.NoError(t, err)

	createdAt := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	order := &domain.Order{
		ID:            5,
		Member:        domain.Member{ID: 1},
		OrderItems:    items,
		ProductPrice:  20000,
		DiscountPrice: 2000,
		DeliveryFee:   3000,
		TotalPrice:    21000,
		CreatedAt:     createdAt,
	}

	resp := NewOrderResponse(order)
	assert.Equal(t, uint64(5), resp.OrderID)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, OrderItemResponse{ProductName: "Shirt", ProductPrice: 10000, ProductImageURL: "http://img/shirt.png", Quantity: 2}, resp.Items[0])
	assert.Equal(t, int64(21000), resp.TotalPrice)
	assert.True(t, createdAt.Equal(resp.CreatedAt))

	list := NewOrdersResponse([]*domain.Order{order, order})
	assert.Len(t, list.Orders, 2)

	empty := NewOrdersResponse(nil)
	assert.NotNil(t, empty.Orders)
	assert.Empty(t, empty.Orders)
}
