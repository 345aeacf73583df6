package mysql

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:?_foreign_keys=on"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// one connection so every query sees the same in-memory database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(Models()...))
	return db
}

func createMember(t *testing.T, db *gorm.DB, email string) MemberModel {
	t.Helper()
	m := MemberModel{Email: email, Password: "secret"}
	require.NoError(t, db.Create(&m).Error)
	return m
}

func createProduct(t *testing.T, db *gorm.DB, name string, price int, imageURL string) ProductModel {
	t.Helper()
	p := ProductModel{Name: name, Price: price, ImageURL: imageURL}
	require.NoError(t, db.Create(&p).Error)
	return p
}

func createCartItem(t *testing.T, db *gorm.DB, memberID, productID uint64, qty int) CartItemModel {
	t.Helper()
	c := CartItemModel{MemberID: memberID, ProductID: productID, Quantity: qty}
	require.NoError(t, db.Omit("Member", "Product").Create(&c).Error)
	return c
}

func newTestOrderRepo(db *gorm.DB) *orderRepo {
	return &orderRepo{db: db, logger: zap.NewNop()}
}
