package ui

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Mariem-Daha/chefcode1.0/internal/cache"
	"github.com/Mariem-Daha/chefcode1.0/internal/client"
	"github.com/Mariem-Daha/chefcode1.0/internal/models"
)

// fetchData retrieves the full backend state, falling back to the local
// snapshot cache when the backend is unreachable.
func fetchData(api *client.Client, store *cache.Cache) tea.Cmd {
	return func() tea.Msg {
		snap, err := api.FetchData(context.Background())
		if err != nil {
			if store != nil {
				if cached, ok, cerr := store.Load(); cerr == nil && ok {
					return dataMsg{snap: cached, fromCache: true}
				}
			}
			return errorMsg{err: fmt.Sprintf("Error fetching data: %v", err)}
		}
		if store != nil {
			_ = store.Save(snap)
		}
		return dataMsg{snap: snap}
	}
}

// syncData pushes the full local state to the backend. The local mutation
// that triggered it has already happened and is never rolled back.
func syncData(api *client.Client, store *cache.Cache, snap *models.Snapshot) tea.Cmd {
	return func() tea.Msg {
		if err := api.SyncData(context.Background(), snap); err != nil {
			return errorMsg{err: fmt.Sprintf("Sync failed, local changes kept: %v", err)}
		}
		if store != nil {
			_ = store.Save(snap)
		}
		return syncedMsg{}
	}
}

func pushInventory(api *client.Client, item models.InventoryItem) tea.Cmd {
	return func() tea.Msg {
		if err := api.AddInventory(context.Background(), item); err != nil {
			return errorMsg{err: fmt.Sprintf("Error saving %s to backend: %v", item.Name, err)}
		}
		return confirmMsg{message: fmt.Sprintf("%s saved", item.Name)}
	}
}

func pushRecipe(api *client.Client, name string, recipe models.Recipe) tea.Cmd {
	return func() tea.Msg {
		if err := api.SaveRecipe(context.Background(), name, recipe); err != nil {
			return errorMsg{err: fmt.Sprintf("Error saving recipe: %v", err)}
		}
		return confirmMsg{message: fmt.Sprintf("Recipe %q saved", name)}
	}
}

func pushTask(api *client.Client, task models.ProductionTask) tea.Cmd {
	return func() tea.Msg {
		if err := api.AddTask(context.Background(), task); err != nil {
			return errorMsg{err: fmt.Sprintf("Error saving task: %v", err)}
		}
		return confirmMsg{message: fmt.Sprintf("Task #%d created", task.ID)}
	}
}

func deleteInventory(api *client.Client, id int) tea.Cmd {
	return func() tea.Msg {
		if err := api.DeleteInventory(context.Background(), id); err != nil {
			return errorMsg{err: fmt.Sprintf("Error deleting item: %v", err)}
		}
		return confirmMsg{message: "Item deleted"}
	}
}

// uploadInvoice reads the file at path and sends it for OCR extraction.
func uploadInvoice(api *client.Client, path string) tea.Cmd {
	return func() tea.Msg {
		f, err := os.Open(path)
		if err != nil {
			return errorMsg{err: fmt.Sprintf("Cannot open %s: %v", path, err)}
		}
		defer f.Close()

		result, err := api.OCRInvoice(context.Background(), path, f)
		if err != nil {
			if errors.Is(err, client.ErrOCRUnavailable) {
				return errorMsg{err: "OCR service not available. Use Manual Input instead."}
			}
			return errorMsg{err: fmt.Sprintf("OCR processing failed: %v", err)}
		}
		return ocrResultMsg{result: result}
	}
}

func searchRecipes(api *client.Client, query string) tea.Cmd {
	return func() tea.Msg {
		recipes, err := api.SearchRecipes(context.Background(), query)
		if err != nil {
			return errorMsg{err: fmt.Sprintf("Search failed: %v", err)}
		}
		return searchResultsMsg{recipes: recipes}
	}
}

// mapIngredients asks the backend to translate a web recipe's raw
// ingredient measures onto the inventory vocabulary.
func mapIngredients(api *client.Client, recipe client.WebRecipe) tea.Cmd {
	return func() tea.Msg {
		ingredients := make([]client.MappingIngredient, len(recipe.Ingredients))
		for i, ing := range recipe.Ingredients {
			qty, unit := splitMeasure(ing.Measure)
			ingredients[i] = client.MappingIngredient{Name: ing.Name, Quantity: qty, Unit: unit}
		}
		mappings, err := api.MapIngredients(context.Background(), recipe.ID, ingredients)
		if err != nil {
			return errorMsg{err: fmt.Sprintf("Ingredient mapping failed: %v", err)}
		}
		return mappingsMsg{recipe: recipe, mappings: mappings}
	}
}

func saveWebRecipe(api *client.Client, recipe client.WebRecipe, mappings []client.MappedIngredient) tea.Cmd {
	return func() tea.Msg {
		payload := client.SaveWebRecipePayload{
			RecipeID:          recipe.ID,
			Name:              recipe.Name,
			Instructions:      recipe.Instructions,
			Cuisine:           recipe.Area,
			ImageURL:          recipe.Image,
			SourceURL:         recipe.SourceURL,
			IngredientsRaw:    recipe.Ingredients,
			IngredientsMapped: mappings,
		}
		if err := api.SaveWebRecipe(context.Background(), payload); err != nil {
			return errorMsg{err: fmt.Sprintf("Failed to import recipe: %v", err)}
		}
		return webRecipeSavedMsg{name: recipe.Name}
	}
}

func sendCommand(api *client.Client, command string, conversation map[string]interface{}) tea.Cmd {
	return func() tea.Msg {
		result, err := api.Command(context.Background(), command, conversation)
		if err != nil {
			return errorMsg{err: fmt.Sprintf("Assistant unavailable: %v", err)}
		}
		return assistantMsg{result: result}
	}
}

// askChat sends a free-form question instead of an actionable command.
func askChat(api *client.Client, prompt string) tea.Cmd {
	return func() tea.Msg {
		reply, err := api.Chat(context.Background(), prompt, "en")
		if err != nil {
			return errorMsg{err: fmt.Sprintf("Chat unavailable: %v", err)}
		}
		return chatMsg{reply: reply}
	}
}

func confirmCommand(api *client.Client, confirmed bool, data map[string]interface{}) tea.Cmd {
	return func() tea.Msg {
		result, err := api.Confirm(context.Background(), confirmed, data)
		if err != nil {
			return errorMsg{err: fmt.Sprintf("Failed to execute action: %v", err)}
		}
		return assistantConfirmedMsg{result: result}
	}
}
