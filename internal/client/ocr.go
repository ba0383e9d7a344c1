package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
)

// OCRItem is one invoice line extracted by the backend OCR pipeline. The
// optional lot fields are rarely present on invoices; staff add them by
// hand afterwards for traceability.
type OCRItem struct {
	Name        string  `json:"name"`
	Unit        string  `json:"unit"`
	Quantity    float64 `json:"quantity"`
	Price       float64 `json:"price"`
	Category    string  `json:"category,omitempty"`
	BatchNumber string  `json:"batch_number,omitempty"`
	ExpiryDate  string  `json:"expiry_date,omitempty"`
}

// OCRResult is the extraction outcome for one uploaded invoice.
type OCRResult struct {
	Status   string    `json:"status"`
	Items    []OCRItem `json:"items"`
	Supplier string    `json:"supplier,omitempty"`
	Date     string    `json:"date,omitempty"`
}

// OCRInvoice uploads an invoice image for extraction. HTTP 503 means the
// backend has no OCR credentials and maps to ErrOCRUnavailable so the UI
// can steer the user to manual input.
func (c *Client) OCRInvoice(ctx context.Context, filename string, file io.Reader) (*OCRResult, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filepath.Base(filename))
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("reading invoice file: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/ocr-invoice", &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("X-API-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusServiceUnavailable:
		return nil, ErrOCRUnavailable
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, ErrUnauthorized
	case resp.StatusCode != http.StatusOK:
		return nil, c.apiError("/api/ocr-invoice", resp)
	}

	var result OCRResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, &DecodeError{Endpoint: "/api/ocr-invoice", Err: err}
	}
	if result.Status != "success" {
		return nil, fmt.Errorf("ocr processing failed: %s", result.Status)
	}
	return &result, nil
}
