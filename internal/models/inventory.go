package models

// InventoryItem is one stock row. Rows that differ in batch number or
// expiry date are deliberately kept as separate lots for traceability and
// must never be commingled.
type InventoryItem struct {
	ID          int     `json:"id,omitempty"`
	Name        string  `json:"name"`
	Unit        string  `json:"unit"`
	Quantity    float64 `json:"quantity"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	BatchNumber string  `json:"batch_number,omitempty"`
	ExpiryDate  string  `json:"expiry_date,omitempty"` // ISO date, empty = unspecified
}

// InventoryCategory represents the category of an inventory item
type InventoryCategory string

const (
	// Inventory categories
	CategoryProduce   InventoryCategory = "Produce"
	CategoryDairy     InventoryCategory = "Dairy"
	CategoryMeat      InventoryCategory = "Meat"
	CategoryFish      InventoryCategory = "Fish"
	CategoryDryGoods  InventoryCategory = "Dry Goods"
	CategoryBeverages InventoryCategory = "Beverages"
	CategoryOther     InventoryCategory = "Other"
)

// DefaultCategory is applied when a candidate row arrives without one.
const DefaultCategory = string(CategoryOther)

// InventoryUnit represents a canonical unit of measurement
type InventoryUnit string

const (
	// Weight units
	UnitGram     InventoryUnit = "g"
	UnitKilogram InventoryUnit = "kg"

	// Volume units
	UnitMilliliter InventoryUnit = "ml"
	UnitLiter      InventoryUnit = "lt"

	// Count units
	UnitPiece  InventoryUnit = "pz"
	UnitBottle InventoryUnit = "bt"
)
