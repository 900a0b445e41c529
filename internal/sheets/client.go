// Package sheets talks to the spreadsheet-backed remote store that holds the
// customer dataset and the editable contract overlays. The store is a plain
// key-value row service with a fixed request/response contract; everything
// domain-specific stays on this side of the wire.
package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/region-dashboard/app/models"
	"go.uber.org/zap"
)

// Config holds the store endpoint settings.
type Config struct {
	BaseURL       string
	APIKey        string
	SpreadsheetID string
	Timeout       time.Duration
}

// Client is the HTTP client for the row store.
type Client struct {
	baseURL string
	apiKey  string
	sheetID string
	http    *http.Client
	logger  *zap.Logger
}

// Tab names inside the spreadsheet.
const (
	tabCustomers = "customers"
	tabContracts = "contracts"
)

// NewClient creates a store client. Timeout defaults to 10s.
func NewClient(cfg Config, logger *zap.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		sheetID: cfg.SpreadsheetID,
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

type customerRows struct {
	Rows []models.CustomerRecord `json:"rows"`
}

type contractRows struct {
	Rows []models.ContractOverlay `json:"rows"`
}

type contractRow struct {
	Row models.ContractOverlay `json:"row"`
}

// ListCustomers fetches every customer row, in sheet order. Row order matters
// downstream: aggregate insertion order follows it.
func (c *Client) ListCustomers(ctx context.Context) ([]models.CustomerRecord, error) {
	var payload customerRows
	if err := c.do(ctx, http.MethodGet, c.tabURL(tabCustomers, ""), nil, &payload); err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	return payload.Rows, nil
}

// ListContracts fetches every contract overlay row.
func (c *Client) ListContracts(ctx context.Context) ([]models.ContractOverlay, error) {
	var payload contractRows
	if err := c.do(ctx, http.MethodGet, c.tabURL(tabContracts, ""), nil, &payload); err != nil {
		return nil, fmt.Errorf("list contracts: %w", err)
	}
	return payload.Rows, nil
}

// PutContract upserts one contract overlay keyed by customer name.
func (c *Client) PutContract(ctx context.Context, overlay models.ContractOverlay) error {
	body := contractRow{Row: overlay}
	if err := c.do(ctx, http.MethodPut, c.tabURL(tabContracts, overlay.CustomerName), body, nil); err != nil {
		return fmt.Errorf("put contract %q: %w", overlay.CustomerName, err)
	}
	return nil
}

// DeleteContract removes the overlay row for a customer.
func (c *Client) DeleteContract(ctx context.Context, customerName string) error {
	if err := c.do(ctx, http.MethodDelete, c.tabURL(tabContracts, customerName), nil, nil); err != nil {
		return fmt.Errorf("delete contract %q: %w", customerName, err)
	}
	return nil
}

func (c *Client) tabURL(tab, key string) string {
	u := fmt.Sprintf("%s/v1/sheets/%s/tabs/%s/rows", c.baseURL, url.PathEscape(c.sheetID), tab)
	if key != "" {
		u += "/" + url.PathEscape(key)
	}
	return u
}

func (c *Client) do(ctx context.Context, method, rawURL string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	c.logger.Debug("sheet store request",
		zap.String("method", method),
		zap.String("url", rawURL),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return fmt.Errorf("sheet store: %s %s: status %d: %s", method, rawURL, resp.StatusCode, snippet)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
