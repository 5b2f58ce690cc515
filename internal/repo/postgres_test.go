package repo_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tractorcare/order-service/internal/entities"
	"github.com/tractorcare/order-service/internal/postgres"
	"github.com/tractorcare/order-service/internal/repo"
	"github.com/tractorcare/order-service/pkg/trm"
)

func getDB(t *testing.T) *sqlx.DB {
	dsn := os.Getenv("POSTGRES_TEST_DSN")
	if dsn == "" {
		t.Skip("POSTGRES_TEST_DSN not set")
	}

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		t.Skipf("Postgres not available: %v", err)
	}
	require.NoError(t, postgres.MigrateUp(context.Background(), db))
	return db
}

func TestPostgresRepo_OrderRoundTrip(t *testing.T) {
	db := getDB(t)
	defer db.Close()

	ctx := context.Background()
	r := repo.NewPostgresRepo(db)
	tx := trm.NewManager(db)

	customerID := "test-" + uuid.NewString()
	require.NoError(t, r.SaveCustomer(ctx, entities.Customer{ID: customerID, Name: "Test farm", UpdatedAt: t0}))

	exists, err := r.CustomerExists(ctx, customerID)
	require.NoError(t, err)
	assert.True(t, exists)

	partID := "P-" + uuid.NewString()
	require.NoError(t, r.SaveCatalogItem(ctx, entities.CatalogItem{
		ID: partID, Type: entities.ItemTypePart, Name: "Filter", UnitPrice: decimal.RequireFromString("19.99"), Status: entities.CatalogStatusAvailable,
	}))
	item, err := r.ResolveCatalogItem(ctx, partID, entities.ItemTypePart)
	require.NoError(t, err)
	assert.True(t, item.UnitPrice.Equal(decimal.RequireFromString("19.99")))

	o := entities.NewDraftOrder(uuid.NewString(), customerID, &entities.Tractor{Name: "MTZ", Model: "82"}, t0)
	require.NoError(t, r.CreateOrder(ctx, o))

	err = tx.Do(ctx, func(ctx context.Context) error {
		loaded, err := r.GetOrderForUpdate(ctx, o.ID)
		if err != nil {
			return err
		}
		if err := loaded.AddItem(partID, entities.ItemTypePart, 3, func(string, entities.ItemType) (entities.CatalogItem, error) {
			return item, nil
		}); err != nil {
			return err
		}
		if _, err := loaded.AdjustDiscount(partID, 5); err != nil {
			return err
		}
		loaded.Version++
		return r.UpdateOrder(ctx, loaded, loaded.Version-1)
	})
	require.NoError(t, err)

	got, err := r.GetOrder(ctx, o.ID)
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, 3, got.Items[0].Quantity)
	assert.Equal(t, 2, got.Version)
	assert.True(t, got.Total.Equal(decimal.RequireFromString("56.9715")))
	require.NotNil(t, got.Tractor)
	assert.Equal(t, "MTZ", got.Tractor.Name)

	assert.ErrorIs(t, r.UpdateOrder(ctx, got, 1), entities.ErrVersionConflict)

	version, err := r.OrderVersion(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, version)

	list, err := r.ListOrders(ctx, entities.OrderFilter{CustomerID: customerID, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, r.DeleteOrder(ctx, o.ID))
	_, err = r.GetOrder(ctx, o.ID)
	assert.ErrorIs(t, err, entities.ErrOrderNotFound)
}

func TestPostgresRepo_NestedTxRollback(t *testing.T) {
	db := getDB(t)
	defer db.Close()

	ctx := context.Background()
	r := repo.NewPostgresRepo(db)
	tx := trm.NewManager(db)

	customerID := "test-" + uuid.NewString()
	require.NoError(t, r.SaveCustomer(ctx, entities.Customer{ID: customerID, Name: "Test farm", UpdatedAt: t0}))

	errAbort := errors.New("abort")
	orderID := uuid.NewString()
	err := tx.Do(ctx, func(ctx context.Context) error {
		outer := trm.ExtractTx(ctx)
		return tx.Do(ctx, func(ctx context.Context) error {
			assert.Same(t, outer, trm.ExtractTx(ctx))
			if err := r.CreateOrder(ctx, entities.NewDraftOrder(orderID, customerID, nil, t0)); err != nil {
				return err
			}
			return errAbort
		})
	})
	assert.ErrorIs(t, err, errAbort)

	_, err = r.GetOrder(ctx, orderID)
	assert.ErrorIs(t, err, entities.ErrOrderNotFound)
}

func TestPostgresRepo_ReadSnapshotIgnoresConcurrentCommit(t *testing.T) {
	db := getDB(t)
	defer db.Close()

	ctx := context.Background()
	r := repo.NewPostgresRepo(db)
	tx := trm.NewManager(db)

	customerID := "test-" + uuid.NewString()
	require.NoError(t, r.SaveCustomer(ctx, entities.Customer{ID: customerID, Name: "Test farm", UpdatedAt: t0}))

	partID := "P-" + uuid.NewString()
	part := entities.CatalogItem{
		ID: partID, Type: entities.ItemTypePart, Name: "Belt", UnitPrice: decimal.RequireFromString("12.50"), Status: entities.CatalogStatusAvailable,
	}
	require.NoError(t, r.SaveCatalogItem(ctx, part))

	o := entities.NewDraftOrder(uuid.NewString(), customerID, nil, t0)
	require.NoError(t, r.CreateOrder(ctx, o))

	addPart := func() error {
		return tx.Do(context.Background(), func(ctx context.Context) error {
			loaded, err := r.GetOrderForUpdate(ctx, o.ID)
			if err != nil {
				return err
			}
			if err := loaded.AddItem(partID, entities.ItemTypePart, 2, func(string, entities.ItemType) (entities.CatalogItem, error) {
				return part, nil
			}); err != nil {
				return err
			}
			if _, err := loaded.ApplyOrderDiscount(decimal.RequireFromString("5")); err != nil {
				return err
			}
			loaded.Version++
			return r.UpdateOrder(ctx, loaded, loaded.Version-1)
		})
	}

	err := trm.ReadSnapshot(ctx, db, func(ctx context.Context) error {
		before, err := r.GetOrder(ctx, o.ID)
		require.NoError(t, err)

		require.NoError(t, addPart())

		after, err := r.GetOrder(ctx, o.ID)
		require.NoError(t, err)
		assert.Equal(t, before.Version, after.Version)
		assert.Empty(t, after.Items)
		assert.True(t, after.OrderDiscount.IsZero())

		list, err := r.ListOrders(ctx, entities.OrderFilter{CustomerID: customerID, Limit: 10})
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Empty(t, list[0].Items)
		return nil
	})
	require.NoError(t, err)

	got, err := r.GetOrder(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Version)
	require.Len(t, got.Items, 1)
	assert.True(t, got.Total.Equal(decimal.RequireFromString("20")))
}
