package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCartItem_CheckOwner(t *testing.T) {
	owner := Member{ID: 1, Email: "a@a.com"}
	item := &CartItem{ID: 7, Quantity: 2, Product: Product{ID: 3, Name: "Shirt", Price: 10000}, Member: owner}

	assert.NoError(t, item.CheckOwner(Member{ID: 1}))

	err := item.CheckOwner(Member{ID: 2, Email: "b@b.com"})
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrIllegalMember))

	var illegal *IllegalMemberError
	assert.True(t, errors.As(err, &illegal))
	assert.Equal(t, uint64(7), illegal.ResourceID)
	assert.Equal(t, uint64(1), illegal.OwnerID)
	assert.Equal(t, uint64(2), illegal.RequesterID)
}

func TestCartItem_ChangeQuantityAndSnapshot(t *testing.T) {
	item := NewCartItem(Member{ID: 1}, Product{ID: 3, Name: "Shirt", Price: 10000, ImageURL: "http://img/shirt.png"})
	assert.Equal(t, 1, item.Quantity)

	item.ChangeQuantity(2)
	snap := item.Snapshot()

	item.Product.Price = 99999
	item.Product.Name = "Renamed"

	assert.Equal(t, "Shirt", snap.ProductName)
	assert.Equal(t, 10000, snap.ProductPrice)
	assert.Equal(t, "http://img/shirt.png", snap.ProductImageURL)
	assert.Equal(t, 2, snap.Quantity)
	assert.Equal(t, int64(20000), snap.LineTotal())
}
