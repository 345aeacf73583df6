package domain

// CartItem is a product placed in a member's cart. Only the owning member may
// change or remove it.
type CartItem struct {
	ID       uint64
	Quantity int
	Product  Product
	Member   Member
}

func NewCartItem(member Member, product Product) *CartItem {
	return &CartItem{Quantity: 1, Product: product, Member: member}
}

func (c *CartItem) CheckOwner(requester Member) error {
	if !c.Member.Same(requester) {
		return &IllegalMemberError{
			Resource:    "cart item",
			ResourceID:  c.ID,
			OwnerID:     c.Member.ID,
			RequesterID: requester.ID,
		}
	}
	return nil
}

// ChangeQuantity replaces the stored quantity. Callers validate n >= 1.
func (c *CartItem) ChangeQuantity(n int) {
	c.Quantity = n
}

// Snapshot copies the product as it is now into an order line.
func (c *CartItem) Snapshot() OrderItem {
	return OrderItem{
		ProductName:     c.Product.Name,
		ProductPrice:    c.Product.Price,
		ProductImageURL: c.Product.ImageURL,
		Quantity:        c.Quantity,
	}
}
