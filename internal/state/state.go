package state

import (
	"go.uber.org/zap"

	"github.com/Mariem-Daha/chefcode1.0/internal/models"
	"github.com/Mariem-Daha/chefcode1.0/internal/util"
)

// State is the authoritative in-memory application state. It is owned by
// the top-level controller and mutated synchronously on the interaction
// goroutine; backend sync happens after a local mutation completes and
// never rolls it back.
type State struct {
	Inventory []models.InventoryItem
	Recipes   map[string]models.Recipe
	Tasks     []models.ProductionTask

	logger *zap.Logger
}

// New returns an empty state.
func New() *State {
	return &State{
		Inventory: []models.InventoryItem{},
		Recipes:   map[string]models.Recipe{},
		Tasks:     []models.ProductionTask{},
		logger:    util.GetLogger(),
	}
}

// Restore replaces the state with the contents of snap. The last fetch to
// arrive wins; there is no merging with local edits.
func (s *State) Restore(snap *models.Snapshot) {
	s.Inventory = append([]models.InventoryItem{}, snap.Inventory...)
	s.Recipes = make(map[string]models.Recipe, len(snap.Recipes))
	for name, r := range snap.Recipes {
		s.Recipes[name] = r
	}
	s.Tasks = append([]models.ProductionTask{}, snap.Tasks...)
}

// Snapshot copies the state into the wire shape used by sync.
func (s *State) Snapshot() *models.Snapshot {
	snap := &models.Snapshot{
		Inventory: append([]models.InventoryItem{}, s.Inventory...),
		Recipes:   make(map[string]models.Recipe, len(s.Recipes)),
		Tasks:     append([]models.ProductionTask{}, s.Tasks...),
	}
	for name, r := range s.Recipes {
		snap.Recipes[name] = r
	}
	return snap
}
