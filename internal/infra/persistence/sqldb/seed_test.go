package sqldb

import (
	"testing"

	"isdn/config"
	"isdn/internal/infra/persistence/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedTestConfig() *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{BcryptCost: 4}, // Minimum cost keeps the test fast.
	}

	return cfg
}

func TestSeed_PopulatesEmptyDatabase(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, Seed(db, seedTestConfig()))

	var users, products, records int64
	require.NoError(t, db.Model(&model.UserModel{}).Count(&users).Error)
	require.NoError(t, db.Model(&model.ProductModel{}).Count(&products).Error)
	require.NoError(t, db.Model(&model.InventoryModel{}).Count(&records).Error)

	assert.Equal(t, int64(4), users)
	assert.Equal(t, int64(5), products)
	// One stock record per product per region.
	assert.Equal(t, int64(25), records)
}

func TestSeed_IsIdempotent(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, Seed(db, seedTestConfig()))
	require.NoError(t, Seed(db, seedTestConfig()))

	var users int64
	require.NoError(t, db.Model(&model.UserModel{}).Count(&users).Error)
	assert.Equal(t, int64(4), users)
}
