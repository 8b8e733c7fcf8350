package store

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"portico-hq/portico/pkg/config"
	"portico-hq/portico/pkg/document"
)

// typesQuery enumerates the distinct type tags present in the dataset.
const typesQuery = "array::unique(*[]._type)"

// Client is an HTTP client for a document store's query API. It implements
// document.Fetcher and document.TypeLister and is safe for concurrent use.
type Client struct {
	endpoint string
	dataset  string
	token    string
	client   *http.Client
	logger   *slog.Logger
}

// NewClient creates a store client from the store configuration. The
// endpoint is required.
func NewClient(cfg config.StoreConfig, logger *slog.Logger) (*Client, error) {
	if strings.TrimSpace(cfg.Endpoint) == "" {
		return nil, fmt.Errorf("store endpoint is required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	transport := &http.Transport{
		MaxIdleConns:        cfg.MaxIdleConns,
		MaxIdleConnsPerHost: cfg.MaxIdleConnsPerHost,
		IdleConnTimeout:     cfg.IdleConnTimeout,
	}

	return &Client{
		endpoint: strings.TrimRight(cfg.Endpoint, "/"),
		dataset:  cfg.Dataset,
		token:    cfg.Token,
		client: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: transport,
		},
		logger: logger.With("component", "store"),
	}, nil
}

// queryResponse is the store's query envelope.
type queryResponse struct {
	Result json.RawMessage `json:"result"`
	Ms     float64         `json:"ms"`
}

// Fetch executes a query and returns the matching documents in the order
// the store returned them.
func (c *Client) Fetch(ctx context.Context, query string) ([]*document.Document, error) {
	raw, err := c.query(ctx, query)
	if err != nil {
		return nil, err
	}

	var docs []*document.Document
	if err := json.Unmarshal(raw, &docs); err != nil {
		return nil, document.NewFetchError(query, 0, fmt.Errorf("failed to decode result: %w", err))
	}

	c.logger.Debug("fetched documents", "count", len(docs))
	return docs, nil
}

// Types returns the distinct document type tags present in the dataset.
func (c *Client) Types(ctx context.Context) ([]string, error) {
	raw, err := c.query(ctx, typesQuery)
	if err != nil {
		return nil, err
	}

	var types []string
	if err := json.Unmarshal(raw, &types); err != nil {
		return nil, document.NewFetchError(typesQuery, 0, fmt.Errorf("failed to decode result: %w", err))
	}
	return types, nil
}

// query runs a single query request and returns the raw result payload.
func (c *Client) query(ctx context.Context, query string) (json.RawMessage, error) {
	u := fmt.Sprintf("%s/v1/data/query/%s?query=%s",
		c.endpoint, url.PathEscape(c.dataset), url.QueryEscape(query))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, document.NewFetchError(query, 0, fmt.Errorf("failed to build request: %w", err))
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, document.NewFetchError(query, 0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, document.NewFetchError(query, resp.StatusCode,
			fmt.Errorf("store returned %s: %s", resp.Status, strings.TrimSpace(string(body))))
	}

	var envelope queryResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, document.NewFetchError(query, 0, fmt.Errorf("failed to decode response: %w", err))
	}
	if len(envelope.Result) == 0 {
		return json.RawMessage("null"), nil
	}
	return envelope.Result, nil
}
