package ui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/table"

	"github.com/Mariem-Daha/chefcode1.0/internal/client"
	"github.com/Mariem-Daha/chefcode1.0/internal/models"
	"github.com/Mariem-Daha/chefcode1.0/internal/state"
)

func formatQty(q float64) string {
	return strconv.FormatFloat(q, 'f', -1, 64)
}

// inventoryRows converts stock rows for the inventory table.
func inventoryRows(st *state.State) []table.Row {
	rows := make([]table.Row, len(st.Inventory))
	for i, it := range st.Inventory {
		rows[i] = table.Row{
			strconv.Itoa(it.ID),
			it.Name,
			formatQty(it.Quantity),
			it.Unit,
			it.Category,
			fmt.Sprintf("%.2f", it.Price),
			it.BatchNumber,
			it.ExpiryDate,
		}
	}
	return rows
}

// taskRows converts production tasks for the board table.
func taskRows(st *state.State) []table.Row {
	rows := make([]table.Row, len(st.Tasks))
	for i, t := range st.Tasks {
		rows[i] = table.Row{
			strconv.Itoa(t.ID),
			t.Recipe,
			formatQty(t.Quantity),
			t.AssignedTo,
			string(t.Status),
		}
	}
	return rows
}

// ocrReviewView lists the extracted invoice lines for confirmation.
func ocrReviewView(result *client.OCRResult) string {
	view := titleStyle.Render("Invoice Review") + "\n\n"
	supplier := result.Supplier
	if supplier == "" {
		supplier = "Unknown"
	}
	date := result.Date
	if date == "" {
		date = "Unknown"
	}
	view += fmt.Sprintf("Supplier: %s\nDate: %s\n\nItems:\n", supplier, date)
	for i, it := range result.Items {
		view += fmt.Sprintf("%d. %s - %s %s @ %.2f", i+1, it.Name, formatQty(it.Quantity), it.Unit, it.Price)
		if it.Category != "" {
			view += " [" + it.Category + "]"
		}
		view += "\n"
	}
	view += "\nPress 'enter' to import all items, 'esc' to discard"
	return view
}

// recipeDetailView shows one stored recipe.
func recipeDetailView(name string, recipe models.Recipe) string {
	view := titleStyle.Render(name) + "\n\n"
	view += "Ingredients per batch:\n"
	for i, ing := range recipe.Items {
		view += fmt.Sprintf("%d. %s - %s %s\n", i+1, ing.Name, formatQty(ing.Qty), ing.Unit)
	}
	if recipe.Yield != nil {
		view += fmt.Sprintf("\nYield: %s %s\n", formatQty(recipe.Yield.Qty), recipe.Yield.Unit)
	}
	view += "\nPress 'esc' to go back"
	return view
}

// searchDetailView shows one external recipe before import.
func searchDetailView(recipe client.WebRecipe) string {
	view := titleStyle.Render(recipe.Name) + "\n\n"
	if recipe.Area != "" {
		view += fmt.Sprintf("Cuisine: %s\n", recipe.Area)
	}
	if recipe.SourceURL != "" {
		view += fmt.Sprintf("Source: %s\n", recipe.SourceURL)
	}
	view += "\nIngredients:\n"
	for i, ing := range recipe.Ingredients {
		view += fmt.Sprintf("%d. %s (%s)\n", i+1, ing.Name, ing.Measure)
	}
	view += "\nPress 'i' to import, 'esc' to go back"
	return view
}

// mappingView shows how the backend mapped raw ingredients onto the
// inventory vocabulary.
func mappingView(recipe client.WebRecipe, mappings []client.MappedIngredient) string {
	view := titleStyle.Render("Ingredient Mapping: "+recipe.Name) + "\n\n"
	for i, mp := range mappings {
		mark := "matched"
		if !mp.Matched {
			mark = "new item"
		}
		view += fmt.Sprintf("%d. %s -> %s %s of %q (%s)\n", i+1, mp.Original, formatQty(mp.Quantity), mp.Unit, mp.Name, mark)
	}
	view += "\nPress 's' to save the recipe, 'esc' to go back"
	return view
}

// assistantView renders the chat transcript above the command input.
func assistantView(log []chatEntry, input string, pending bool) string {
	view := titleStyle.Render("Assistant") + "\n\n"
	if len(log) == 0 {
		view += "Type a command, e.g. \"add 5 kg of flour at 0.80\".\n"
	}
	for _, entry := range log {
		switch entry.role {
		case "user":
			view += infoStyle.Render("you") + " " + entry.text + "\n"
		default:
			view += successStyle.Render("chef") + " " + entry.text + "\n"
		}
	}
	if pending {
		view += "\n" + warningStyle.Render("Press 'y' to confirm or 'n' to cancel") + "\n"
	}
	view += "\n" + input + "\n\nPress 'esc' to go back"
	return view
}
