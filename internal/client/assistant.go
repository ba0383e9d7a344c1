package client

import (
	"context"
	"net/http"
	"strconv"
	"time"
)

// ChatReply is the response from the plain conversational endpoint.
type ChatReply struct {
	Response string `json:"response"`
}

// Chat sends a free-form prompt to the conversational endpoint. The chat
// endpoint is unauthenticated in the current backend.
func (c *Client) Chat(ctx context.Context, prompt, language string) (*ChatReply, error) {
	payload := struct {
		Prompt   string `json:"prompt"`
		Language string `json:"language"`
	}{prompt, language}
	var reply ChatReply
	if err := c.doJSON(ctx, http.MethodPost, "/api/chatgpt-smart", payload, &reply, false); err != nil {
		return nil, err
	}
	return &reply, nil
}

// CommandResult is the interpreted outcome of an assistant command. When
// RequiresConfirmation is set the caller must follow up with Confirm,
// passing ConfirmationData back unchanged.
type CommandResult struct {
	Intent               string                 `json:"intent"`
	Message              string                 `json:"message"`
	RequiresConfirmation bool                   `json:"requires_confirmation"`
	ConfirmationData     map[string]interface{} `json:"confirmation_data,omitempty"`
	SearchResults        bool                   `json:"search_results,omitempty"`
	ActionResult         map[string]interface{} `json:"action_result,omitempty"`
}

type commandRequest struct {
	Command string                 `json:"command"`
	Context map[string]interface{} `json:"context"`
}

// Command submits a natural-language command for interpretation together
// with the rolling conversation context.
func (c *Client) Command(ctx context.Context, command string, conversation map[string]interface{}) (*CommandResult, error) {
	if conversation == nil {
		conversation = map[string]interface{}{}
	}
	var result CommandResult
	req := commandRequest{Command: command, Context: conversation}
	if err := c.doJSON(ctx, http.MethodPost, "/api/ai-assistant/command", req, &result, true); err != nil {
		return nil, err
	}
	return &result, nil
}

// ConfirmResult reports whether a confirmed assistant action was applied.
type ConfirmResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type confirmRequest struct {
	ConfirmationID string                 `json:"confirmation_id"`
	Confirmed      bool                   `json:"confirmed"`
	Data           map[string]interface{} `json:"data"`
}

// Confirm answers a pending confirmation round-trip.
func (c *Client) Confirm(ctx context.Context, confirmed bool, data map[string]interface{}) (*ConfirmResult, error) {
	req := confirmRequest{
		ConfirmationID: strconv.FormatInt(time.Now().UnixMilli(), 10),
		Confirmed:      confirmed,
		Data:           data,
	}
	var result ConfirmResult
	if err := c.doJSON(ctx, http.MethodPost, "/api/ai-assistant/confirm", req, &result, true); err != nil {
		return nil, err
	}
	return &result, nil
}
