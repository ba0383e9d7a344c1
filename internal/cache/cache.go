package cache

import (
	"encoding/json"
	"fmt"

	"github.com/jinzhu/gorm"
	_ "github.com/mattn/go-sqlite3" // SQLite driver

	"github.com/Mariem-Daha/chefcode1.0/internal/models"
)

// Cache persists the last successfully synced backend snapshot so the
// client can start from real data when the backend is unreachable. It is
// a read-through copy, never the source of truth: the next successful
// fetch overwrites it wholesale.
type Cache struct {
	db *gorm.DB
}

// snapshotRecord stores the three collections as JSON text, one row per
// save; Load reads the newest row.
type snapshotRecord struct {
	gorm.Model
	InventoryJSON string `gorm:"type:text"`
	RecipesJSON   string `gorm:"type:text"`
	TasksJSON     string `gorm:"type:text"`
}

// TableName sets the table name for snapshotRecord
func (snapshotRecord) TableName() string {
	return "snapshots"
}

// Open initializes the sqlite-backed cache at path.
func Open(path string) (*Cache, error) {
	db, err := gorm.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open cache: %w", err)
	}
	if err := db.AutoMigrate(&snapshotRecord{}).Error; err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate cache: %w", err)
	}
	return &Cache{db: db}, nil
}

// Close closes the underlying database.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Save stores snap as the newest snapshot and drops older rows.
func (c *Cache) Save(snap *models.Snapshot) error {
	inventory, err := json.Marshal(snap.Inventory)
	if err != nil {
		return err
	}
	recipes, err := json.Marshal(snap.Recipes)
	if err != nil {
		return err
	}
	tasks, err := json.Marshal(snap.Tasks)
	if err != nil {
		return err
	}

	rec := snapshotRecord{
		InventoryJSON: string(inventory),
		RecipesJSON:   string(recipes),
		TasksJSON:     string(tasks),
	}
	if err := c.db.Create(&rec).Error; err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return c.db.Where("id < ?", rec.ID).Delete(&snapshotRecord{}).Error
}

// Load returns the newest stored snapshot. ok is false when the cache is
// empty; a corrupt stored row is an error, not a silent miss.
func (c *Cache) Load() (*models.Snapshot, bool, error) {
	var rec snapshotRecord
	if err := c.db.Order("id desc").First(&rec).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("load snapshot: %w", err)
	}

	snap := models.NewSnapshot()
	if err := json.Unmarshal([]byte(rec.InventoryJSON), &snap.Inventory); err != nil {
		return nil, false, fmt.Errorf("decode cached inventory: %w", err)
	}
	if err := json.Unmarshal([]byte(rec.RecipesJSON), &snap.Recipes); err != nil {
		return nil, false, fmt.Errorf("decode cached recipes: %w", err)
	}
	if err := json.Unmarshal([]byte(rec.TasksJSON), &snap.Tasks); err != nil {
		return nil, false, fmt.Errorf("decode cached tasks: %w", err)
	}
	return snap, true, nil
}
