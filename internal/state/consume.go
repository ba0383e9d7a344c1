package state

import (
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/Mariem-Daha/chefcode1.0/internal/models"
	"github.com/Mariem-Daha/chefcode1.0/internal/normalize"
)

// ErrRecipeNotFound reports a task referencing a recipe that no longer
// exists. The call mutates nothing in that case.
var ErrRecipeNotFound = errors.New("recipe not found")

// ConsumeResult reports the outcome of drawing down inventory for one
// task. Skipped entries are diagnostic only; a skip is never a hard
// failure and is not persisted anywhere.
type ConsumeResult struct {
	Consumed bool
	Skipped  []string
}

// ConsumeForTask deducts one task's worth of ingredients from inventory.
// Each ingredient draws from the first row matching its canonical name;
// lots are never split. A missing row or a non-convertible unit pair adds
// the ingredient to Skipped and moves on. Deducted quantities clamp at
// zero instead of going negative.
func (s *State) ConsumeForTask(task models.ProductionTask) (ConsumeResult, error) {
	recipe, ok := s.Recipes[task.Recipe]
	if !ok {
		return ConsumeResult{}, fmt.Errorf("%w: %s", ErrRecipeNotFound, task.Recipe)
	}

	batches := task.Quantity
	if batches <= 0 {
		batches = 1
	}

	var res ConsumeResult
	for _, ing := range recipe.Items {
		row := s.FindInventoryByName(ing.Name)
		if row == nil {
			res.Skipped = append(res.Skipped, fmt.Sprintf("%s (not in inventory)", ing.Name))
			continue
		}

		ingUnit := ing.Unit
		if ingUnit == "" {
			ingUnit = row.Unit
		}
		f, ok := normalize.Factor(ingUnit, row.Unit)
		if !ok {
			res.Skipped = append(res.Skipped, fmt.Sprintf("%s (%s->%s not convertible)",
				ing.Name, normalize.Unit(ingUnit), normalize.Unit(row.Unit)))
			continue
		}

		row.Quantity = math.Max(0, row.Quantity-ing.Qty*batches*f)
		res.Consumed = true
	}

	if len(res.Skipped) > 0 {
		s.logger.Warn("ingredients not deducted",
			zap.String("recipe", task.Recipe),
			zap.Strings("skipped", res.Skipped))
	}
	return res, nil
}
