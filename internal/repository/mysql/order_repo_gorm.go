package mysql

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"cart-service/internal/domain"
	"cart-service/internal/repository"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const findOrderSQL = `SELECT orders.id AS order_id, orders.member_id AS member_id, member.email AS member_email,
	orders.product_price AS product_price, orders.discount_price AS discount_price,
	orders.delivery_fee AS delivery_fee, orders.total_price AS total_price, orders.created_at AS created_at,
	order_item.id AS item_id, order_item.product_name AS item_product_name,
	order_item.product_price AS item_product_price, order_item.product_image_url AS item_product_image_url,
	order_item.product_quantity AS item_quantity
FROM orders
INNER JOIN member ON orders.member_id = member.id
INNER JOIN order_item ON orders.id = order_item.order_id
WHERE orders.id = ?
ORDER BY order_item.id`

// orderRow is one row of findOrderSQL: the order header repeated next to a
// single order item.
type orderRow struct {
	OrderID             uint64    `gorm:"column:order_id"`
	MemberID            uint64    `gorm:"column:member_id"`
	MemberEmail         string    `gorm:"column:member_email"`
	ProductPrice        int64     `gorm:"column:product_price"`
	DiscountPrice       int64     `gorm:"column:discount_price"`
	DeliveryFee         int64     `gorm:"column:delivery_fee"`
	TotalPrice          int64     `gorm:"column:total_price"`
	CreatedAt           time.Time `gorm:"column:created_at"`
	ItemID              uint64    `gorm:"column:item_id"`
	ItemProductName     string    `gorm:"column:item_product_name"`
	ItemProductPrice    int       `gorm:"column:item_product_price"`
	ItemProductImageURL string    `gorm:"column:item_product_image_url"`
	ItemQuantity        int       `gorm:"column:item_quantity"`
}

func (r orderRow) header() *domain.Order {
	return &domain.Order{
		ID:            r.OrderID,
		Member:        domain.Member{ID: r.MemberID, Email: r.MemberEmail},
		ProductPrice:  r.ProductPrice,
		DiscountPrice: r.DiscountPrice,
		DeliveryFee:   r.DeliveryFee,
		TotalPrice:    r.TotalPrice,
		CreatedAt:     r.CreatedAt,
	}
}

func (r orderRow) item() domain.OrderItem {
	return domain.OrderItem{
		ID:              r.ItemID,
		ProductName:     r.ItemProductName,
		ProductPrice:    r.ItemProductPrice,
		ProductImageURL: r.ItemProductImageURL,
		Quantity:        r.ItemQuantity,
	}
}

type orderRepo struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewOrderRepository(db *gorm.DB, logger *zap.Logger) repository.OrderRepository {
	return &orderRepo{db: db, logger: logger}
}

// Save writes the header and then its items in one transaction. Items need
// the generated header id.
func (r *orderRepo) Save(ctx context.Context, order *domain.Order) (uint64, error) {
	header := OrderModel{
		MemberID:      order.Member.ID,
		ProductPrice:  order.ProductPrice,
		DiscountPrice: order.DiscountPrice,
		DeliveryFee:   order.DeliveryFee,
		TotalPrice:    order.TotalPrice,
		CreatedAt:     order.CreatedAt,
	}

	err := conn(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(&header).Error; err != nil {
			return err
		}
		if header.ID == 0 {
			return errors.New("failed to assign order ID")
		}

		lines := order.OrderItems.Items()
		items := make([]OrderItemModel, 0, len(lines))
		for _, it := range lines {
			items = append(items, OrderItemModel{
				OrderID:         header.ID,
				ProductName:     it.ProductName,
				ProductPrice:    it.ProductPrice,
				ProductImageURL: it.ProductImageURL,
				Quantity:        it.Quantity,
			})
		}
		return tx.Create(&items).Error
	})
	if err != nil {
		r.logger.Error("save order failed", zap.Uint64("member_id", order.Member.ID), zap.Error(err))
		return 0, &domain.PersistenceError{Op: "save order", Err: err}
	}

	order.ID = header.ID
	r.logger.Debug("order saved", zap.Uint64("order_id", header.ID), zap.Int("items", order.OrderItems.Len()))
	return header.ID, nil
}

func (r *orderRepo) FindByID(ctx context.Context, id uint64) (*domain.Order, error) {
	db := conn(ctx, r.db)
	rows, err := db.Raw(findOrderSQL, id).Rows()
	if err != nil {
		return nil, &domain.PersistenceError{Op: "find order", Err: err}
	}
	defer rows.Close()

	orders, err := foldOrderRows(db, rows)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, domain.ErrOrderNotFound
	}
	return orders[0], nil
}

// foldOrderRows groups joined rows by order id. Header fields come from the
// first row seen for an id; every row contributes one item in row order.
// Rows of one order do not need to be contiguous.
func foldOrderRows(db *gorm.DB, rows *sql.Rows) ([]*domain.Order, error) {
	type group struct {
		order *domain.Order
		items []domain.OrderItem
	}
	groups := map[uint64]*group{}
	var ids []uint64

	for rows.Next() {
		var row orderRow
		if err := db.ScanRows(rows, &row); err != nil {
			return nil, &domain.PersistenceError{Op: "scan order row", Err: err}
		}
		g, ok := groups[row.OrderID]
		if !ok {
			g = &group{order: row.header()}
			groups[row.OrderID] = g
			ids = append(ids, row.OrderID)
		}
		g.items = append(g.items, row.item())
	}
	if err := rows.Err(); err != nil {
		return nil, &domain.PersistenceError{Op: "read order rows", Err: err}
	}

	out := make([]*domain.Order, 0, len(ids))
	for _, id := range ids {
		g := groups[id]
		items, err := domain.NewOrderItems(g.items)
		if err != nil {
			return nil, err
		}
		g.order.OrderItems = items
		out = append(out, g.order)
	}
	return out, nil
}

// FindAllByMember loads each of the member's orders with its own joined query.
func (r *orderRepo) FindAllByMember(ctx context.Context, memberID uint64) ([]*domain.Order, error) {
	var ids []uint64
	if err := conn(ctx, r.db).Model(&OrderModel{}).Where("member_id = ?", memberID).Order("id").Pluck("id", &ids).Error; err != nil {
		return nil, &domain.PersistenceError{Op: "find order ids", Err: err}
	}

	orders := make([]*domain.Order, 0, len(ids))
	for _, id := range ids {
		o, err := r.FindByID(ctx, id)
		if errors.Is(err, domain.ErrOrderNotFound) {
			// deleted after the id scan
			continue
		}
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

// DeleteByID removes the items and then the header. The schema also cascades,
// so either path leaves no orphaned item rows.
func (r *orderRepo) DeleteByID(ctx context.Context, id uint64) error {
	var affected int64
	err := conn(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&OrderItemModel{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&OrderModel{}, id)
		affected = res.RowsAffected
		return res.Error
	})
	if err != nil {
		r.logger.Error("delete order failed", zap.Uint64("order_id", id), zap.Error(err))
		return &domain.PersistenceError{Op: "delete order", Err: err}
	}
	if affected == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}
