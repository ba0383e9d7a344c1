package state

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Mariem-Daha/chefcode1.0/internal/models"
	"github.com/Mariem-Daha/chefcode1.0/internal/normalize"
)

// mergeKey identifies rows that may be combined: same canonical name, same
// price at minor-unit precision, same lot. Rows from different lots stay
// separate even when everything else matches.
type mergeKey struct {
	name       string
	priceCents int64
	batch      string
	expiry     string
}

func keyFor(it models.InventoryItem) mergeKey {
	return mergeKey{
		name:       normalize.Name(it.Name),
		priceCents: int64(math.Round(it.Price * 100)),
		batch:      it.BatchNumber,
		expiry:     it.ExpiryDate,
	}
}

// AddOrMergeInventory folds item into the first existing row whose merge
// key matches. Quantities in non-convertible units are never summed: on a
// key match with incompatible units the candidate still becomes its own
// row. A merged quantity is expressed in the
// pre-existing row's unit, and that row keeps its unit and category.
// The operation never deletes rows and never fails.
func (s *State) AddOrMergeInventory(item models.InventoryItem) {
	key := keyFor(item)
	for i := range s.Inventory {
		row := &s.Inventory[i]
		if keyFor(*row) != key {
			continue
		}
		f, ok := normalize.Factor(item.Unit, row.Unit)
		if !ok {
			if item.Category == "" {
				item.Category = row.Category
			}
			s.appendInventory(item)
			return
		}
		row.Quantity += item.Quantity * f
		s.logger.Debug("inventory row merged",
			zap.String("name", row.Name),
			zap.Float64("quantity", row.Quantity),
			zap.String("unit", row.Unit))
		return
	}
	s.appendInventory(item)
}

func (s *State) appendInventory(item models.InventoryItem) {
	if item.Category == "" {
		item.Category = models.DefaultCategory
	}
	s.Inventory = append(s.Inventory, item)
}

// DeleteInventory removes the row with the given backend identifier and
// reports whether one was removed. No other row is touched.
func (s *State) DeleteInventory(id int) bool {
	for i := range s.Inventory {
		if s.Inventory[i].ID == id {
			s.Inventory = append(s.Inventory[:i], s.Inventory[i+1:]...)
			return true
		}
	}
	return false
}

// FindInventoryByName returns the first row whose canonical name matches,
// in insertion order. When several lots share a name only the first is
// returned; partial draws across lots are not supported.
func (s *State) FindInventoryByName(name string) *models.InventoryItem {
	want := normalize.Name(name)
	for i := range s.Inventory {
		if normalize.Name(s.Inventory[i].Name) == want {
			return &s.Inventory[i]
		}
	}
	return nil
}

// ValidateNewItem rejects a candidate row before any state is mutated.
func ValidateNewItem(item models.InventoryItem, today time.Time) error {
	if strings.TrimSpace(item.Name) == "" {
		return errors.New("item name is required")
	}
	if item.Quantity <= 0 {
		return errors.New("quantity must be positive")
	}
	if item.Price < 0 {
		return errors.New("price cannot be negative")
	}
	if item.ExpiryDate != "" {
		d, err := time.Parse("2006-01-02", item.ExpiryDate)
		if err != nil {
			return fmt.Errorf("invalid expiry date %q, expected YYYY-MM-DD", item.ExpiryDate)
		}
		y, m, day := today.Date()
		if d.Before(time.Date(y, m, day, 0, 0, 0, 0, time.UTC)) {
			return errors.New("expiry date is in the past")
		}
	}
	return nil
}
