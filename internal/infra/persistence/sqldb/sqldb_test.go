package sqldb

import (
	"path/filepath"
	"testing"
	"time"

	"isdn/internal/domain/entity"
	"isdn/internal/infra/persistence/model"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a throwaway SQLite database with the production schema.
// A single connection mirrors the runtime pool settings, so concurrency
// tests exercise the same serialization the service sees.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, Migrate(db))

	return db
}

func createTestProduct(t *testing.T, db *gorm.DB, name string, price float64) uuid.UUID {
	t.Helper()

	productM := &model.ProductModel{
		ID:       uuid.New(),
		Name:     name,
		Category: string(entity.CategoryPackagedFood),
		Price:    price,
	}
	require.NoError(t, db.Create(productM).Error)

	return productM.ID
}

func createTestCustomer(t *testing.T, db *gorm.DB, name, email string, region entity.Region) uuid.UUID {
	t.Helper()

	regionStr := string(region)
	userM := &model.UserModel{
		ID:       uuid.New(),
		Name:     name,
		Email:    email,
		Password: "not-a-real-hash",
		Role:     string(entity.RoleCustomer),
		Region:   &regionStr,
	}
	require.NoError(t, db.Create(userM).Error)

	return userM.ID
}

func createTestOrder(t *testing.T, db *gorm.DB, customerID uuid.UUID, region entity.Region, status entity.OrderStatus, total float64) uuid.UUID {
	t.Helper()

	orderM := &model.OrderModel{
		ID:          uuid.New(),
		CustomerID:  customerID,
		OrderDate:   time.Now(),
		TotalAmount: total,
		Status:      string(status),
		Region:      string(region),
	}
	require.NoError(t, db.Create(orderM).Error)

	return orderM.ID
}
