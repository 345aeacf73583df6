package mysql

import "time"

// Persistence models. Table and column names are part of the storage contract
// shared with other services reading this database.

type MemberModel struct {
	ID       uint64 `gorm:"primaryKey;autoIncrement"`
	Email    string `gorm:"type:varchar(255);not null;uniqueIndex"`
	Password string `gorm:"type:varchar(255);not null"`
}

func (MemberModel) TableName() string { return "member" }

type ProductModel struct {
	ID       uint64 `gorm:"primaryKey;autoIncrement"`
	Name     string `gorm:"type:varchar(255);not null"`
	Price    int    `gorm:"not null"`
	ImageURL string `gorm:"column:image_url;type:varchar(1024)"`
}

func (ProductModel) TableName() string { return "product" }

type CartItemModel struct {
	ID        uint64       `gorm:"primaryKey;autoIncrement"`
	MemberID  uint64       `gorm:"not null;index"`
	Member    MemberModel  `gorm:"foreignKey:MemberID;constraint:OnDelete:CASCADE"`
	ProductID uint64       `gorm:"not null;index"`
	Product   ProductModel `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Quantity  int          `gorm:"not null;default:1"`
}

func (CartItemModel) TableName() string { return "cart_item" }

// OrderModel is the order header row. Items cascade on delete at the schema
// level; DeleteByID also removes them explicitly.
type OrderModel struct {
	ID            uint64           `gorm:"primaryKey;autoIncrement"`
	MemberID      uint64           `gorm:"not null;index"`
	Member        MemberModel      `gorm:"foreignKey:MemberID"`
	Items         []OrderItemModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	ProductPrice  int64            `gorm:"not null"`
	DiscountPrice int64            `gorm:"not null"`
	DeliveryFee   int64            `gorm:"not null"`
	TotalPrice    int64            `gorm:"not null"`
	CreatedAt     time.Time        `gorm:"not null"`
}

func (OrderModel) TableName() string { return "orders" }

// OrderItemModel has no product foreign key: rows are snapshots.
type OrderItemModel struct {
	ID              uint64 `gorm:"primaryKey;autoIncrement"`
	OrderID         uint64 `gorm:"not null;index"`
	ProductName     string `gorm:"type:varchar(255);not null"`
	ProductPrice    int    `gorm:"not null"`
	ProductImageURL string `gorm:"column:product_image_url;type:varchar(1024)"`
	Quantity        int    `gorm:"column:product_quantity;not null"`
}

func (OrderItemModel) TableName() string { return "order_item" }

// Models lists every table in migration order.
func Models() []any {
	return []any{&MemberModel{}, &ProductModel{}, &CartItemModel{}, &OrderModel{}, &OrderItemModel{}}
}
