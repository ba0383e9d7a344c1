package state

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mariem-Daha/chefcode1.0/internal/models"
)

func TestAddOrMergeCompatibleUnits(t *testing.T) {
	s := New()
	s.AddOrMergeInventory(models.InventoryItem{Name: "Farina", Unit: "kg", Quantity: 2, Category: "Dry Goods", Price: 1.20})
	s.AddOrMergeInventory(models.InventoryItem{Name: "farina", Unit: "g", Quantity: 500, Price: 1.20})

	require.Len(t, s.Inventory, 1)
	row := s.Inventory[0]
	assert.Equal(t, 2.5, row.Quantity)
	// merged quantity is expressed in the pre-existing row's unit
	assert.Equal(t, "kg", row.Unit)
	assert.Equal(t, "Dry Goods", row.Category)
}

func TestAddOrMergeDistinctLots(t *testing.T) {
	s := New()
	s.AddOrMergeInventory(models.InventoryItem{Name: "Latte", Unit: "lt", Quantity: 10, Price: 0.90, BatchNumber: "A"})
	s.AddOrMergeInventory(models.InventoryItem{Name: "Latte", Unit: "lt", Quantity: 5, Price: 0.90, BatchNumber: "B"})

	require.Len(t, s.Inventory, 2)
	assert.Equal(t, 10.0, s.Inventory[0].Quantity)
	assert.Equal(t, 5.0, s.Inventory[1].Quantity)
}

func TestAddOrMergeDistinctExpiry(t *testing.T) {
	s := New()
	s.AddOrMergeInventory(models.InventoryItem{Name: "Burro", Unit: "g", Quantity: 250, Price: 2.50, ExpiryDate: "2026-09-01"})
	s.AddOrMergeInventory(models.InventoryItem{Name: "Burro", Unit: "g", Quantity: 250, Price: 2.50, ExpiryDate: "2026-10-01"})

	assert.Len(t, s.Inventory, 2)
}

func TestAddOrMergePriceComparedAtMinorUnit(t *testing.T) {
	s := New()
	// 1.204 and 1.199 both round to 120 cents
	s.AddOrMergeInventory(models.InventoryItem{Name: "Zucchero", Unit: "kg", Quantity: 1, Price: 1.204})
	s.AddOrMergeInventory(models.InventoryItem{Name: "Zucchero", Unit: "kg", Quantity: 1, Price: 1.199})
	require.Len(t, s.Inventory, 1)
	assert.Equal(t, 2.0, s.Inventory[0].Quantity)

	s.AddOrMergeInventory(models.InventoryItem{Name: "Zucchero", Unit: "kg", Quantity: 1, Price: 1.30})
	assert.Len(t, s.Inventory, 2)
}

func TestAddOrMergeIncompatibleUnitsAppends(t *testing.T) {
	s := New()
	s.AddOrMergeInventory(models.InventoryItem{Name: "Olio", Unit: "lt", Quantity: 3, Category: "Dry Goods", Price: 5})
	s.AddOrMergeInventory(models.InventoryItem{Name: "Olio", Unit: "kg", Quantity: 1, Price: 5})

	// key matched but lt/kg cannot be summed: second row appended instead
	require.Len(t, s.Inventory, 2)
	assert.Equal(t, 3.0, s.Inventory[0].Quantity)
	assert.Equal(t, "lt", s.Inventory[0].Unit)
	assert.Equal(t, 1.0, s.Inventory[1].Quantity)
	assert.Equal(t, "kg", s.Inventory[1].Unit)
	// the new row inherits the matched row's category
	assert.Equal(t, "Dry Goods", s.Inventory[1].Category)
}

func TestAddOrMergeDiacriticsAndCase(t *testing.T) {
	s := New()
	s.AddOrMergeInventory(models.InventoryItem{Name: "Pomodori È", Unit: "kg", Quantity: 1, Price: 2})
	s.AddOrMergeInventory(models.InventoryItem{Name: "pomodori e", Unit: "kg", Quantity: 1, Price: 2})
	assert.Len(t, s.Inventory, 1)
}

func TestAppendDefaultsCategory(t *testing.T) {
	s := New()
	s.AddOrMergeInventory(models.InventoryItem{Name: "Sale", Unit: "kg", Quantity: 1, Price: 0.50})
	require.Len(t, s.Inventory, 1)
	assert.Equal(t, models.DefaultCategory, s.Inventory[0].Category)
}

func TestDeleteInventory(t *testing.T) {
	s := New()
	s.Inventory = []models.InventoryItem{
		{ID: 1, Name: "Farina"},
		{ID: 2, Name: "Latte"},
		{ID: 3, Name: "Burro"},
	}

	assert.True(t, s.DeleteInventory(2))
	require.Len(t, s.Inventory, 2)
	assert.Equal(t, 1, s.Inventory[0].ID)
	assert.Equal(t, 3, s.Inventory[1].ID)

	assert.False(t, s.DeleteInventory(99))
	assert.Len(t, s.Inventory, 2)
}

func TestFindInventoryByNameFirstMatch(t *testing.T) {
	s := New()
	s.Inventory = []models.InventoryItem{
		{ID: 1, Name: "Latte", BatchNumber: "A"},
		{ID: 2, Name: "latte", BatchNumber: "B"},
	}
	row := s.FindInventoryByName("LATTE")
	require.NotNil(t, row)
	assert.Equal(t, 1, row.ID)
}

func TestValidateNewItem(t *testing.T) {
	today := time.Date(2026, 8, 29, 15, 0, 0, 0, time.UTC)

	ok := models.InventoryItem{Name: "Farina", Unit: "kg", Quantity: 1, Price: 1.20, ExpiryDate: "2026-09-01"}
	assert.NoError(t, ValidateNewItem(ok, today))

	// expiry today is still acceptable
	sameDay := ok
	sameDay.ExpiryDate = "2026-08-29"
	assert.NoError(t, ValidateNewItem(sameDay, today))

	tests := []struct {
		name string
		item models.InventoryItem
	}{
		{"missing name", models.InventoryItem{Unit: "kg", Quantity: 1}},
		{"zero quantity", models.InventoryItem{Name: "Farina", Unit: "kg"}},
		{"negative price", models.InventoryItem{Name: "Farina", Unit: "kg", Quantity: 1, Price: -1}},
		{"past expiry", models.InventoryItem{Name: "Farina", Unit: "kg", Quantity: 1, ExpiryDate: "2026-08-28"}},
		{"malformed expiry", models.InventoryItem{Name: "Farina", Unit: "kg", Quantity: 1, ExpiryDate: "28/08/2026"}},
	}
	for _, tt := range tests {
		assert.Error(t, ValidateNewItem(tt.item, today), tt.name)
	}
}
