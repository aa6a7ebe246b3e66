package implementation

import (
	"context"
	"os"
	"testing"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"medequip-support-be/pkg/database"
)

// Integration tests run against a migrated and seeded database. They are
// skipped unless DB_CONNECTION_STRING is set (run cmd/migrate first).
func connectTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	_ = godotenv.Load("../../../.env")
	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("DB_CONNECTION_STRING not set, skipping integration test")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	require.NoError(t, err)
	return db
}

func TestClientRepositoryFindByCredentials(t *testing.T) {
	db := connectTestDB(t)
	repo := NewClientRepository(db)
	ctx := context.Background()

	t.Run("known demo client", func(t *testing.T) {
		identity, err := repo.FindByCredentials(ctx, "contact@cityhospital.com", "ME-10001")
		require.NoError(t, err)
		require.NotNil(t, identity)
		assert.Equal(t, "City General Hospital", identity.Name)
		assert.Equal(t, "ME-10001", identity.ClientID)
	})

	t.Run("credentials must match the same record", func(t *testing.T) {
		identity, err := repo.FindByCredentials(ctx, "contact@cityhospital.com", "ME-10002")
		require.NoError(t, err)
		assert.Nil(t, identity)
	})
}

func TestQueryExecutorReturnsRowMaps(t *testing.T) {
	db := connectTestDB(t)
	executor := NewQueryExecutor(db)

	rows, err := executor.Execute(context.Background(),
		"SELECT o.order_id, s.delivery_status FROM orders o JOIN shipments s ON s.order_id = o.order_id WHERE o.order_id = ? AND o.client_id = ?",
		"ORD-2024-0001", "ME-10001",
	)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "ORD-2024-0001", rows[0]["order_id"])
	assert.Equal(t, "In Transit", rows[0]["delivery_status"])
}
