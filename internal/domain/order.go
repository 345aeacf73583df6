package domain

import "time"

// OrderItem is a copy of a product taken when the order was placed. It does
// not reference the catalog.
type OrderItem struct {
	ID              uint64
	ProductName     string
	ProductPrice    int
	ProductImageURL string
	Quantity        int
}

func (i OrderItem) LineTotal() int64 {
	return int64(i.ProductPrice) * int64(i.Quantity)
}

// OrderItems keeps insertion order and always holds at least one item.
type OrderItems struct {
	items []OrderItem
}

func NewOrderItems(items []OrderItem) (OrderItems, error) {
	if len(items) == 0 {
		return OrderItems{}, ErrEmptyOrder
	}
	for _, it := range items {
		if it.Quantity < 1 {
			return OrderItems{}, ErrInvalidQuantity
		}
	}
	out := make([]OrderItem, len(items))
	copy(out, items)
	return OrderItems{items: out}, nil
}

func (o OrderItems) Items() []OrderItem {
	out := make([]OrderItem, len(o.items))
	copy(out, o.items)
	return out
}

func (o OrderItems) Len() int {
	return len(o.items)
}

// ProductPrice is the sum of line totals before any discount.
func (o OrderItems) ProductPrice() int64 {
	var sum int64
	for _, it := range o.items {
		sum += it.LineTotal()
	}
	return sum
}

type Order struct {
	ID            uint64
	Member        Member
	OrderItems    OrderItems
	ProductPrice  int64
	DiscountPrice int64
	DeliveryFee   int64
	TotalPrice    int64
	CreatedAt     time.Time
}

func (o *Order) CheckOwner(requester Member) error {
	if !o.Member.Same(requester) {
		return &IllegalMemberError{
			Resource:    "order",
			ResourceID:  o.ID,
			OwnerID:     o.Member.ID,
			RequesterID: requester.ID,
		}
	}
	return nil
}
