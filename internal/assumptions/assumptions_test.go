package assumptions

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Simplici0/savings/internal/db"
	"github.com/Simplici0/savings/internal/migrations"
	"github.com/Simplici0/savings/internal/savings"
)

func newMigratedStore(t *testing.T) *Store {
	t.Helper()

	database, err := db.Open(filepath.Join(t.TempDir(), "assumptions.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })
	require.NoError(t, migrations.Up(database))

	return NewStore(database)
}

func TestStoreGetBeforeSeedReturnsNotFound(t *testing.T) {
	store := newMigratedStore(t)

	_, err := store.Get(context.Background())
	require.ErrorIs(t, err, ErrNotFound)

	exists, err := store.Exists(context.Background())
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestStorePutThenGetRoundTripsAndUpdates(t *testing.T) {
	ctx := context.Background()
	store := newMigratedStore(t)

	require.NoError(t, store.Put(ctx, savings.DefaultAssumptions()))

	got, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, savings.DefaultAssumptions(), got)

	updated := savings.DefaultAssumptions()
	updated.Delivery.AlternateCostPerOrder = 1.8
	require.NoError(t, store.Put(ctx, updated))

	got, err = store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1.8, got.Delivery.AlternateCostPerOrder)
}

func TestStorePutRejectsInvalidTable(t *testing.T) {
	store := newMigratedStore(t)

	bad := savings.DefaultAssumptions()
	bad.Overhead.MerchantRate = -0.1
	require.Error(t, store.Put(context.Background(), bad))
}

func TestParseOverridesOnlyNamedKeys(t *testing.T) {
	a, err := Parse([]byte(`
storage:
  costPerSqm: 15
overhead:
  merchantRate: 0.25
`))
	require.NoError(t, err)

	defaults := savings.DefaultAssumptions()
	assert.Equal(t, 15.0, a.Storage.CostPerSqm)
	assert.Equal(t, defaults.Storage.MerchantOverheadMultiplier, a.Storage.MerchantOverheadMultiplier)
	assert.Equal(t, 0.25, a.Overhead.MerchantRate)
	assert.Equal(t, defaults.HandlingIn, a.HandlingIn)
}

func TestParseRejectsUnknownKeysAndNegativeRates(t *testing.T) {
	_, err := Parse([]byte("storage:\n  costPerSquareFoot: 3\n"))
	require.Error(t, err)

	_, err = Parse([]byte("delivery:\n  merchantCostPerOrder: -2\n"))
	require.Error(t, err)
}

func TestMarshalIsReadableByParse(t *testing.T) {
	out, err := Marshal(savings.DefaultAssumptions())
	require.NoError(t, err)
	assert.Contains(t, string(out), "costPerSqm: 12")

	a, err := Parse(out)
	require.NoError(t, err)
	assert.Equal(t, savings.DefaultAssumptions(), a)
}

func TestResolvePrecedence(t *testing.T) {
	ctx := context.Background()

	a, origin, err := Resolve(ctx, Source{})
	require.NoError(t, err)
	assert.Equal(t, OriginDefaults, origin)
	assert.Equal(t, savings.DefaultAssumptions(), a)

	store := newMigratedStore(t)
	stored := savings.DefaultAssumptions()
	stored.Storage.CostPerSqm = 9
	require.NoError(t, store.Put(ctx, stored))

	a, origin, err = Resolve(ctx, Source{DB: store.db})
	require.NoError(t, err)
	assert.Equal(t, OriginStore, origin)
	assert.Equal(t, 9.0, a.Storage.CostPerSqm)

	path := filepath.Join(t.TempDir(), "assumptions.yaml")
	require.NoError(t, os.WriteFile(path, []byte("storage:\n  costPerSqm: 14\n"), 0o600))

	a, origin, err = Resolve(ctx, Source{File: path, DB: store.db})
	require.NoError(t, err)
	assert.Equal(t, OriginFile, origin)
	assert.Equal(t, 14.0, a.Storage.CostPerSqm)
}

func TestResolveMissingFileFails(t *testing.T) {
	_, _, err := Resolve(context.Background(), Source{File: filepath.Join(t.TempDir(), "nope.yaml")})
	require.Error(t, err)
}
