package ui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Mariem-Daha/chefcode1.0/internal/models"
)

func splitFields(input string) []string {
	parts := strings.Split(input, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// parseInventoryInput parses the inventory add form:
// name, quantity, unit, price[, category[, batch[, expiry]]]
func parseInventoryInput(input string) (models.InventoryItem, error) {
	parts := splitFields(input)
	if len(parts) < 4 {
		return models.InventoryItem{}, errors.New("format: name, quantity, unit, price[, category[, batch[, expiry]]]")
	}
	qty, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return models.InventoryItem{}, fmt.Errorf("invalid quantity %q", parts[1])
	}
	price, err := strconv.ParseFloat(parts[3], 64)
	if err != nil {
		return models.InventoryItem{}, fmt.Errorf("invalid price %q", parts[3])
	}

	item := models.InventoryItem{
		Name:     parts[0],
		Quantity: qty,
		Unit:     parts[2],
		Price:    price,
	}
	if len(parts) > 4 {
		item.Category = parts[4]
	}
	if len(parts) > 5 {
		item.BatchNumber = parts[5]
	}
	if len(parts) > 6 {
		item.ExpiryDate = parts[6]
	}
	return item, nil
}

// parseRecipeLine parses one ingredient line: name, qty, unit
func parseRecipeLine(input string) (models.RecipeItem, error) {
	parts := splitFields(input)
	if len(parts) < 3 {
		return models.RecipeItem{}, errors.New("format: name, qty, unit")
	}
	qty, err := strconv.ParseFloat(parts[1], 64)
	if err != nil || qty <= 0 {
		return models.RecipeItem{}, fmt.Errorf("invalid quantity %q", parts[1])
	}
	return models.RecipeItem{Name: parts[0], Qty: qty, Unit: parts[2]}, nil
}

// parseYield parses the optional "yield qty, unit" line.
func parseYield(input string) (*models.Yield, error) {
	parts := splitFields(input)
	if len(parts) < 2 {
		return nil, errors.New("format: yield qty, unit")
	}
	qty, err := strconv.ParseFloat(parts[0], 64)
	if err != nil || qty <= 0 {
		return nil, fmt.Errorf("invalid yield quantity %q", parts[0])
	}
	return &models.Yield{Qty: qty, Unit: parts[1]}, nil
}

// parseTaskInput parses the production task form:
// recipe, quantity[, assignee[, completed]]
func parseTaskInput(input string) (recipe string, qty float64, assignee string, status models.TaskStatus, err error) {
	parts := splitFields(input)
	status = models.TaskTodo
	if len(parts) < 2 {
		err = errors.New("format: recipe, quantity[, assignee[, completed]]")
		return
	}
	recipe = parts[0]
	qty, perr := strconv.ParseFloat(parts[1], 64)
	if perr != nil {
		err = fmt.Errorf("invalid quantity %q", parts[1])
		return
	}
	if len(parts) > 2 {
		assignee = parts[2]
	}
	if len(parts) > 3 && strings.EqualFold(parts[3], string(models.TaskCompleted)) {
		status = models.TaskCompleted
	}
	return recipe, qty, assignee, status, nil
}

// splitMeasure splits a free-text measure like "320 g" into its quantity
// and unit parts, defaulting to one piece when either half is missing.
func splitMeasure(measure string) (string, string) {
	fields := strings.Fields(measure)
	if len(fields) == 0 {
		return "1", "pz"
	}
	qty := fields[0]
	unit := strings.Join(fields[1:], " ")
	if unit == "" {
		unit = "pz"
	}
	return qty, unit
}
