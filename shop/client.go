package shop

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/sync/errgroup"

	"emoji-shop/models"
)

// Client talks to the catalog API the way the storefront does.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTP:    &http.Client{Timeout: 10 * time.Second},
	}
}

// FetchProducts lists the catalog. A degraded server response (empty list plus
// an error string) comes back as an empty slice, indistinguishable from a
// legitimately empty store.
func (c *Client) FetchProducts(ctx context.Context) ([]models.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/api/products", nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var body models.ProductListResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}
	if body.Products == nil {
		return []models.Product{}, nil
	}
	return body.Products, nil
}

// FetchProduct gets one record by key; nil when absent.
func (c *Client) FetchProduct(ctx context.Context, key string) (*models.Product, error) {
	u := c.BaseURL + "/api/product?key=" + url.QueryEscape(key)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch product %q: status %d", key, resp.StatusCode)
	}

	var body models.ProductResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}
	return body.Product, nil
}

// SaveProduct upserts one record.
func (c *Client) SaveProduct(ctx context.Context, product models.Product) error {
	data, err := json.Marshal(product)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/api/products", bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("save product %q: status %d", product.ID, resp.StatusCode)
	}
	return nil
}

// Seed writes the whole seed dataset in parallel. Order does not matter and
// there is no dedup check: every write is a keyed overwrite, so a double seed
// from two racing first loads converges to the same state.
func (c *Client) Seed(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, product := range SeedProducts {
		product := product
		g.Go(func() error {
			return c.SaveProduct(gctx, product)
		})
	}
	return g.Wait()
}
