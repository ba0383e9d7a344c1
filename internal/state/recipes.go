package state

import (
	"errors"
	"sort"
	"strings"

	"github.com/Mariem-Daha/chefcode1.0/internal/models"
)

// SaveRecipe creates or replaces the recipe stored under name.
func (s *State) SaveRecipe(name string, r models.Recipe) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errors.New("recipe name is required")
	}
	if len(r.Items) == 0 {
		return errors.New("recipe needs at least one ingredient")
	}
	s.Recipes[name] = r
	return nil
}

// DeleteRecipe removes the recipe and reports whether it existed.
func (s *State) DeleteRecipe(name string) bool {
	if _, ok := s.Recipes[name]; !ok {
		return false
	}
	delete(s.Recipes, name)
	return true
}

// RecipeNames returns the recipe names in sorted order for display.
func (s *State) RecipeNames() []string {
	names := make([]string, 0, len(s.Recipes))
	for name := range s.Recipes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
