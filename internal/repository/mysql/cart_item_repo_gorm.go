package mysql

import (
	"context"

	"cart-service/internal/domain"
	"cart-service/internal/repository"

	"gorm.io/gorm"
)

type cartItemRepo struct {
	db *gorm.DB
}

func NewCartItemRepository(db *gorm.DB) repository.CartItemRepository {
	return &cartItemRepo{db: db}
}

// FindByIDs returns the cart items that exist among ids, in the order the ids
// were given. Missing ids are skipped.
func (r *cartItemRepo) FindByIDs(ctx context.Context, ids []uint64) ([]*domain.CartItem, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var rows []CartItemModel
	if err := conn(ctx, r.db).Preload("Member").Preload("Product").Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, &domain.PersistenceError{Op: "find cart items", Err: err}
	}

	byID := make(map[uint64]CartItemModel, len(rows))
	for _, row := range rows {
		byID[row.ID] = row
	}

	out := make([]*domain.CartItem, 0, len(rows))
	for _, id := range ids {
		row, ok := byID[id]
		if !ok {
			continue
		}
		delete(byID, id)
		out = append(out, &domain.CartItem{
			ID:       row.ID,
			Quantity: row.Quantity,
			Product: domain.Product{
				ID:       row.Product.ID,
				Name:     row.Product.Name,
				Price:    row.Product.Price,
				ImageURL: row.Product.ImageURL,
			},
			Member: domain.Member{ID: row.Member.ID, Email: row.Member.Email},
		})
	}
	return out, nil
}

func (r *cartItemRepo) DeleteByIDs(ctx context.Context, ids []uint64) error {
	if len(ids) == 0 {
		return nil
	}
	if err := conn(ctx, r.db).Where("id IN ?", ids).Delete(&CartItemModel{}).Error; err != nil {
		return &domain.PersistenceError{Op: "delete cart items", Err: err}
	}
	return nil
}
