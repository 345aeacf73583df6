package services

import (
	"fmt"
	"time"

	"cart-service/internal/domain"
)

func CreateMockMember(id uint64) domain.Member {
	return domain.Member{ID: id, Email: fmt.Sprintf("member%d@example.com", id)}
}

func CreateMockCartItem(id uint64, owner domain.Member, name string, price, qty int) *domain.CartItem {
	return &domain.CartItem{
		ID:       id,
		Quantity: qty,
		Product:  domain.Product{ID: id * 100, Name: name, Price: price, ImageURL: "http://img/" + name + ".png"},
		Member:   owner,
	}
}

func CreateMockOrder(id uint64, owner domain.Member, lines ...domain.OrderItem) *domain.Order {
	items, err := domain.NewOrderItems(lines)
	if err != nil {
		panic(err)
	}
	return &domain.Order{
		ID:           id,
		Member:       owner,
		OrderItems:   items,
		ProductPrice: items.ProductPrice(),
		TotalPrice:   items.ProductPrice(),
		CreatedAt:    time.Now(),
	}
}

const (
	TestOrderID      = uint64(1)
	TestProductName  = "Shirt"
	TestProductPrice = 10000
	TestProductQty   = 2
)
