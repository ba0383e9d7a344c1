package models

// Snapshot is the full-state wire shape exchanged with GET /api/data and
// POST /api/sync-data.
type Snapshot struct {
	Inventory []InventoryItem   `json:"inventory"`
	Recipes   map[string]Recipe `json:"recipes"`
	Tasks     []ProductionTask  `json:"tasks"`
}

// NewSnapshot returns an empty snapshot with non-nil collections.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Inventory: []InventoryItem{},
		Recipes:   map[string]Recipe{},
		Tasks:     []ProductionTask{},
	}
}
