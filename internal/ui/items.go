package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"

	"github.com/Mariem-Daha/chefcode1.0/internal/client"
	"github.com/Mariem-Daha/chefcode1.0/internal/state"
)

// item represents a main-menu entry
type item struct {
	title, desc string
}

// FilterValue implements list.Item interface
func (i item) FilterValue() string { return i.title }

// Title implements list.Item interface
func (i item) Title() string { return i.title }

// Description implements list.Item interface
func (i item) Description() string { return i.desc }

// recipeItem represents a stored recipe in the recipes list
type recipeItem struct {
	name string
	desc string
}

func (i recipeItem) Title() string       { return i.name }
func (i recipeItem) Description() string { return i.desc }
func (i recipeItem) FilterValue() string { return i.name }

// searchItem represents an external recipe in the search results list
type searchItem struct {
	index int
	title string
	desc  string
}

func (i searchItem) Title() string       { return i.title }
func (i searchItem) Description() string { return i.desc }
func (i searchItem) FilterValue() string { return i.title }

// convertRecipesToItems builds the recipes list from the app state.
func convertRecipesToItems(st *state.State) []list.Item {
	names := st.RecipeNames()
	items := make([]list.Item, len(names))
	for i, name := range names {
		r := st.Recipes[name]
		desc := fmt.Sprintf("%d ingredients", len(r.Items))
		if r.Yield != nil {
			desc += fmt.Sprintf(" - yields %g %s", r.Yield.Qty, r.Yield.Unit)
		}
		items[i] = recipeItem{name: name, desc: desc}
	}
	return items
}

// convertSearchResults builds the search results list.
func convertSearchResults(recipes []client.WebRecipe) []list.Item {
	items := make([]list.Item, len(recipes))
	for i, r := range recipes {
		desc := fmt.Sprintf("%d ingredients", len(r.Ingredients))
		if r.Area != "" {
			desc = r.Area + " - " + desc
		}
		items[i] = searchItem{index: i, title: r.Name, desc: desc}
	}
	return items
}
