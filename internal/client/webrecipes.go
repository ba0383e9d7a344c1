package client

import (
	"context"
	"errors"
	"net/http"
)

// WebIngredient is a raw ingredient line from an external recipe source.
type WebIngredient struct {
	Name    string `json:"name"`
	Measure string `json:"measure"`
}

// WebRecipe is a recipe returned by the external search pipeline.
type WebRecipe struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Area         string          `json:"area,omitempty"`
	Category     string          `json:"category,omitempty"`
	Instructions string          `json:"instructions,omitempty"`
	Image        string          `json:"image,omitempty"`
	SourceURL    string          `json:"source_url,omitempty"`
	Ingredients  []WebIngredient `json:"ingredients"`
}

type searchRequest struct {
	Query        string   `json:"query"`
	Cuisine      *string  `json:"cuisine"`
	Restrictions []string `json:"restrictions"`
}

// SearchRecipes queries the external recipe database through the backend.
func (c *Client) SearchRecipes(ctx context.Context, query string) ([]WebRecipe, error) {
	var recipes []WebRecipe
	req := searchRequest{Query: query, Restrictions: []string{}}
	if err := c.doJSON(ctx, http.MethodPost, "/api/web-recipes/search_recipes", req, &recipes, true); err != nil {
		return nil, err
	}
	return recipes, nil
}

// MappingIngredient is the quantity/unit split sent for mapping.
type MappingIngredient struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
	Unit     string `json:"unit"`
}

// MappedIngredient pairs a source ingredient with its inventory mapping.
type MappedIngredient struct {
	Original string  `json:"original"`
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	Matched  bool    `json:"matched"`
}

type mapIngredientsRequest struct {
	RecipeID          string              `json:"recipe_id"`
	RecipeIngredients []MappingIngredient `json:"recipe_ingredients"`
}

// MapIngredients asks the backend to map raw web-recipe ingredients onto
// the inventory vocabulary.
func (c *Client) MapIngredients(ctx context.Context, recipeID string, ingredients []MappingIngredient) ([]MappedIngredient, error) {
	var result struct {
		Mappings []MappedIngredient `json:"mappings"`
	}
	req := mapIngredientsRequest{RecipeID: recipeID, RecipeIngredients: ingredients}
	if err := c.doJSON(ctx, http.MethodPost, "/api/web-recipes/map_ingredients", req, &result, true); err != nil {
		return nil, err
	}
	if result.Mappings == nil {
		return nil, &DecodeError{Endpoint: "/api/web-recipes/map_ingredients", Err: errors.New("missing mappings field")}
	}
	return result.Mappings, nil
}

// SaveWebRecipePayload mirrors POST /api/web-recipes/save_recipe.
type SaveWebRecipePayload struct {
	RecipeID          string             `json:"recipe_id"`
	Name              string             `json:"name"`
	Instructions      string             `json:"instructions"`
	Cuisine           string             `json:"cuisine,omitempty"`
	ImageURL          string             `json:"image_url,omitempty"`
	SourceURL         string             `json:"source_url,omitempty"`
	IngredientsRaw    []WebIngredient    `json:"ingredients_raw"`
	IngredientsMapped []MappedIngredient `json:"ingredients_mapped"`
}

// SaveWebRecipe imports a mapped external recipe into the backend.
func (c *Client) SaveWebRecipe(ctx context.Context, payload SaveWebRecipePayload) error {
	var result struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	}
	return c.doJSON(ctx, http.MethodPost, "/api/web-recipes/save_recipe", payload, &result, true)
}
