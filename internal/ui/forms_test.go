package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mariem-Daha/chefcode1.0/internal/models"
)

func TestParseInventoryInput(t *testing.T) {
	item, err := parseInventoryInput("Farina 00, 25, kg, 0.80, Dry Goods, L42, 2026-12-01")
	require.NoError(t, err)
	assert.Equal(t, "Farina 00", item.Name)
	assert.Equal(t, 25.0, item.Quantity)
	assert.Equal(t, "kg", item.Unit)
	assert.Equal(t, 0.80, item.Price)
	assert.Equal(t, "Dry Goods", item.Category)
	assert.Equal(t, "L42", item.BatchNumber)
	assert.Equal(t, "2026-12-01", item.ExpiryDate)

	minimal, err := parseInventoryInput("Latte,10,lt,0.90")
	require.NoError(t, err)
	assert.Empty(t, minimal.Category)
	assert.Empty(t, minimal.BatchNumber)

	_, err = parseInventoryInput("Latte,10,lt")
	assert.Error(t, err)
	_, err = parseInventoryInput("Latte,dieci,lt,0.90")
	assert.Error(t, err)
}

func TestParseRecipeLine(t *testing.T) {
	ing, err := parseRecipeLine("Farina, 0.5, kg")
	require.NoError(t, err)
	assert.Equal(t, models.RecipeItem{Name: "Farina", Qty: 0.5, Unit: "kg"}, ing)

	_, err = parseRecipeLine("Farina, 0.5")
	assert.Error(t, err)
	_, err = parseRecipeLine("Farina, -1, kg")
	assert.Error(t, err)
}

func TestParseYield(t *testing.T) {
	y, err := parseYield("2, kg")
	require.NoError(t, err)
	assert.Equal(t, &models.Yield{Qty: 2, Unit: "kg"}, y)

	_, err = parseYield("2")
	assert.Error(t, err)
}

func TestParseTaskInput(t *testing.T) {
	recipe, qty, assignee, status, err := parseTaskInput("bread, 3, anna, completed")
	require.NoError(t, err)
	assert.Equal(t, "bread", recipe)
	assert.Equal(t, 3.0, qty)
	assert.Equal(t, "anna", assignee)
	assert.Equal(t, models.TaskCompleted, status)

	_, _, _, status, err = parseTaskInput("bread, 2")
	require.NoError(t, err)
	assert.Equal(t, models.TaskTodo, status)

	_, _, _, _, err = parseTaskInput("bread")
	assert.Error(t, err)
}

func TestSplitMeasure(t *testing.T) {
	qty, unit := splitMeasure("320 g")
	assert.Equal(t, "320", qty)
	assert.Equal(t, "g", unit)

	qty, unit = splitMeasure("2")
	assert.Equal(t, "2", qty)
	assert.Equal(t, "pz", unit)

	qty, unit = splitMeasure("")
	assert.Equal(t, "1", qty)
	assert.Equal(t, "pz", unit)

	qty, unit = splitMeasure("1 heaped tbsp")
	assert.Equal(t, "1", qty)
	assert.Equal(t, "heaped tbsp", unit)
}
