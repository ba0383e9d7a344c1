package ui

import (
	"github.com/Mariem-Daha/chefcode1.0/internal/client"
	"github.com/Mariem-Daha/chefcode1.0/internal/models"
)

// Custom message types for the tea.Model
type dataMsg struct {
	snap      *models.Snapshot
	fromCache bool
}

type errorMsg struct {
	err string
}

type confirmMsg struct {
	message string
}

type syncedMsg struct{}

type ocrResultMsg struct {
	result *client.OCRResult
}

type searchResultsMsg struct {
	recipes []client.WebRecipe
}

type mappingsMsg struct {
	recipe   client.WebRecipe
	mappings []client.MappedIngredient
}

type webRecipeSavedMsg struct {
	name string
}

type assistantMsg struct {
	result *client.CommandResult
}

type chatMsg struct {
	reply *client.ChatReply
}

type assistantConfirmedMsg struct {
	result *client.ConfirmResult
}
