package domain

import "time"

const (
	EventOrderCreated = "order.created"
	EventOrderDeleted = "order.deleted"
)

type OrderCreatedEvent struct {
	OrderID    uint64    `json:"orderId"`
	MemberID   uint64    `json:"memberId"`
	TotalPrice int64     `json:"totalPrice"`
	CreatedAt  time.Time `json:"createdAt"`
}

type OrderDeletedEvent struct {
	OrderID  uint64 `json:"orderId"`
	MemberID uint64 `json:"memberId"`
}
