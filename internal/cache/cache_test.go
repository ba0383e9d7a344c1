package cache

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mariem-Daha/chefcode1.0/internal/models"
)

func openTestCache(t *testing.T) *Cache {
	t.Helper()
	c, err := Open(filepath.Join(t.TempDir(), "chefcode.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestLoadEmpty(t *testing.T) {
	c := openTestCache(t)

	snap, ok, err := c.Load()
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, snap)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	c := openTestCache(t)

	snap := models.NewSnapshot()
	snap.Inventory = append(snap.Inventory, models.InventoryItem{
		ID: 1, Name: "Farina", Unit: "kg", Quantity: 25, Category: "Dry Goods", Price: 0.80, BatchNumber: "L42",
	})
	snap.Recipes["bread"] = models.Recipe{
		Items: []models.RecipeItem{{Name: "Farina", Qty: 0.5, Unit: "kg"}},
		Yield: &models.Yield{Qty: 1, Unit: "pz"},
	}
	snap.Tasks = append(snap.Tasks, models.ProductionTask{ID: 7, Recipe: "bread", Quantity: 3, Status: models.TaskInProgress})

	require.NoError(t, c.Save(snap))

	loaded, ok, err := c.Load()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, snap.Inventory, loaded.Inventory)
	assert.Equal(t, snap.Recipes, loaded.Recipes)
	assert.Equal(t, snap.Tasks, loaded.Tasks)
}

func TestSaveKeepsOnlyNewest(t *testing.T) {
	c := openTestCache(t)

	first := models.NewSnapshot()
	first.Inventory = append(first.Inventory, models.InventoryItem{Name: "old", Unit: "kg", Quantity: 1})
	require.NoError(t, c.Save(first))

	second := models.NewSnapshot()
	second.Inventory = append(second.Inventory, models.InventoryItem{Name: "new", Unit: "kg", Quantity: 2})
	require.NoError(t, c.Save(second))

	loaded, ok, err := c.Load()
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, loaded.Inventory, 1)
	assert.Equal(t, "new", loaded.Inventory[0].Name)
}
