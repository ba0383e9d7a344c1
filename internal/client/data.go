package client

import (
	"context"
	"net/http"

	"github.com/Mariem-Daha/chefcode1.0/internal/models"
)

// FetchData retrieves the full backend state.
func (c *Client) FetchData(ctx context.Context) (*models.Snapshot, error) {
	var snap models.Snapshot
	if err := c.doJSON(ctx, http.MethodGet, "/api/data", nil, &snap, false); err != nil {
		return nil, err
	}
	if snap.Recipes == nil {
		snap.Recipes = map[string]models.Recipe{}
	}
	return &snap, nil
}

// SyncData overwrites the backend state with snap. Last write wins: the
// caller's in-memory state stays authoritative regardless of the outcome.
func (c *Client) SyncData(ctx context.Context, snap *models.Snapshot) error {
	var ack struct {
		Status string `json:"status"`
	}
	return c.doJSON(ctx, http.MethodPost, "/api/sync-data", snap, &ack, true)
}

type actionRequest struct {
	Action string      `json:"action"`
	Data   interface{} `json:"data"`
}

func (c *Client) postAction(ctx context.Context, action string, data interface{}) error {
	var result struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	}
	return c.doJSON(ctx, http.MethodPost, "/api/action", actionRequest{Action: action, Data: data}, &result, true)
}

// AddInventory records one inventory item on the backend.
func (c *Client) AddInventory(ctx context.Context, item models.InventoryItem) error {
	return c.postAction(ctx, "add-inventory", item)
}

// SaveRecipe creates or replaces a recipe on the backend.
func (c *Client) SaveRecipe(ctx context.Context, name string, recipe models.Recipe) error {
	payload := struct {
		Name   string        `json:"name"`
		Recipe models.Recipe `json:"recipe"`
	}{name, recipe}
	return c.postAction(ctx, "save-recipe", payload)
}

// AddTask records a production task on the backend.
func (c *Client) AddTask(ctx context.Context, task models.ProductionTask) error {
	return c.postAction(ctx, "add-task", task)
}

// DeleteInventory removes exactly one inventory row by identifier.
func (c *Client) DeleteInventory(ctx context.Context, id int) error {
	payload := struct {
		ID int `json:"id"`
	}{id}
	return c.doJSON(ctx, http.MethodDelete, "/api/inventory/delete", payload, nil, true)
}
