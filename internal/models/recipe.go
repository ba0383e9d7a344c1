package models

// RecipeItem is one ingredient line: the quantity needed for a single
// batch of the recipe.
type RecipeItem struct {
	Name string  `json:"name"`
	Qty  float64 `json:"qty"`
	Unit string  `json:"unit"`
}

// Yield describes how much one batch of a recipe produces.
type Yield struct {
	Qty  float64 `json:"qty"`
	Unit string  `json:"unit"`
}

// Recipe is keyed by name in the application state; the name is the unique
// identifier, so renaming is a delete plus recreate.
type Recipe struct {
	Items []RecipeItem `json:"items"`
	Yield *Yield       `json:"yield,omitempty"`
}
