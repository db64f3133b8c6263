package apiclient

import (
	"context"
	"net/http"
	"net/url"

	"github.com/loganlanou/dealerpost/internal/types"
)

func (c *Client) ListProducts(ctx context.Context, page Page) ([]Product, error) {
	products := []Product{}
	if err := c.getJSON(ctx, "/api/products/"+page.query(), &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) GetProduct(ctx context.Context, asin string) (*Product, error) {
	var product Product
	if err := c.getJSON(ctx, "/api/products/"+url.PathEscape(asin), &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) Categories(ctx context.Context) ([]string, error) {
	var resp types.CategoriesResponse
	if err := c.getJSON(ctx, "/api/products/categories/", &resp); err != nil {
		return nil, err
	}
	return resp.Categories, nil
}

// SyncProducts asks the backend to pull the upstream catalog.
func (c *Client) SyncProducts(ctx context.Context) (*SyncResponse, error) {
	var resp SyncResponse
	if err := c.sendJSON(ctx, http.MethodPost, "/api/products/sync", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
