package dto

import (
	"time"

	"cart-service/internal/domain"
)

type OrderRequest struct {
	CartItemIDs   []uint64 `json:"cartItemIds" binding:"required,min=1"`
	ProductPrice  int64    `json:"productPrice" binding:"min=0"`
	DiscountPrice int64    `json:"discountPrice" binding:"min=0"`
	DeliveryFee   int64    `json:"deliveryFee" binding:"min=0"`
	TotalPrice    int64    `json:"totalPrice" binding:"min=0"`
}

type OrderItemResponse struct {
	ProductName     string `json:"productName"`
	ProductPrice    int    `json:"productPrice"`
	ProductImageURL string `json:"productImageUrl"`
	Quantity        int    `json:"quantity"`
}

type OrderCreatedResponse struct {
	OrderID uint64 `json:"orderId"`
}

type OrderResponse struct {
	OrderID       uint64              `json:"orderId"`
	Items         []OrderItemResponse `json:"items"`
	ProductPrice  int64               `json:"productPrice"`
	DiscountPrice int64               `json:"discountPrice"`
	DeliveryFee   int64               `json:"deliveryFee"`
	TotalPrice    int64               `json:"totalPrice"`
	CreatedAt     time.Time           `json:"createdAt"`
}

type OrdersResponse struct {
	Orders []OrderResponse `json:"orders"`
}

func NewOrderCreatedResponse(orderID uint64) *OrderCreatedResponse {
	return &OrderCreatedResponse{OrderID: orderID}
}

func NewOrderResponse(order *domain.Order) *OrderResponse {
	items := order.OrderItems.Items()
	out := make([]OrderItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, OrderItemResponse{
			ProductName:     it.ProductName,
			ProductPrice:    it.ProductPrice,
			ProductImageURL: it.ProductImageURL,
			Quantity:        it.Quantity,
		})
	}
	return &OrderResponse{
		OrderID:       order.ID,
		Items:         out,
		ProductPrice:  order.ProductPrice,
		DiscountPrice: order.DiscountPrice,
		DeliveryFee:   order.DeliveryFee,
		TotalPrice:    order.TotalPrice,
		CreatedAt:     order.CreatedAt,
	}
}

func NewOrdersResponse(orders []*domain.Order) *OrdersResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, *NewOrderResponse(o))
	}
	return &OrdersResponse{Orders: out}
}
