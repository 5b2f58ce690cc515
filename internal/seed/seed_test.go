package seed_test

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tractorcare/order-service/internal/entities"
	"github.com/tractorcare/order-service/internal/repo"
	"github.com/tractorcare/order-service/internal/seed"
)

const sample = `
customers:
  - id: C1
    name: Green Acres
    phone: "+79991234567"
catalog:
  - id: P1
    type: part
    name: Oil filter
    price: "100.00"
  - id: P2
    type: part
    name: Hydraulic pump
    price: "420.50"
    status: OUT_OF_STOCK
  - id: S1
    type: service
    name: Engine diagnostics
    price: 75.25
`

func TestLoadAndApply(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	f, err := seed.Load(path)
	require.NoError(t, err)
	assert.Len(t, f.Customers, 1)
	assert.Len(t, f.Catalog, 3)

	ctx := context.Background()
	store := repo.NewMemoryRepo()
	require.NoError(t, seed.Apply(ctx, slog.New(slog.NewTextHandler(io.Discard, nil)), store, f))

	ok, err := store.CustomerExists(ctx, "C1")
	require.NoError(t, err)
	assert.True(t, ok)

	p1, err := store.ResolveCatalogItem(ctx, "P1", entities.ItemTypePart)
	require.NoError(t, err)
	assert.True(t, p1.Available())
	assert.True(t, p1.UnitPrice.Equal(decimal.NewFromInt(100)))

	p2, err := store.ResolveCatalogItem(ctx, "P2", entities.ItemTypePart)
	require.NoError(t, err)
	assert.False(t, p2.Available())

	s1, err := store.ResolveCatalogItem(ctx, "S1", entities.ItemTypeService)
	require.NoError(t, err)
	assert.True(t, s1.UnitPrice.Equal(decimal.RequireFromString("75.25")))
}

func TestParseErrors(t *testing.T) {
	testCases := []struct {
		name string
		data string
	}{
		{name: "broken yaml", data: "customers: [\n"},
		{name: "missing customer id", data: "customers:\n  - name: Farm\n"},
		{name: "unknown item type", data: "catalog:\n  - {id: X, type: tool, name: Wrench, price: '1'}\n"},
		{name: "unknown status", data: "catalog:\n  - {id: X, type: part, name: Wrench, price: '1', status: in-stock}\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := seed.Parse([]byte(tc.data))
			assert.Error(t, err)
		})
	}

	_, err := seed.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestApplyRejectsBadPrice(t *testing.T) {
	f, err := seed.Parse([]byte("catalog:\n  - {id: X, type: part, name: Wrench, price: 'abc'}\n"))
	require.NoError(t, err)

	err = seed.Apply(context.Background(), slog.New(slog.NewTextHandler(io.Discard, nil)), repo.NewMemoryRepo(), f)
	assert.ErrorContains(t, err, "invalid price")
}
