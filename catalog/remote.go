package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"swastik-storefront/models"
)

// Remote is the fetched catalog variant: it consumes the upstream product
// API. Transport failures and non-2xx responses surface as errors at the
// call site with no automatic retry; the view layer turns them into inline
// "error loading" messages.
type Remote struct {
	baseURL string
	client  *http.Client
}

// NewRemote builds a provider against the given API base URL, e.g.
// "https://shop.example.com". A nil client gets a 10s-timeout default.
func NewRemote(baseURL string, client *http.Client) *Remote {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &Remote{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
	}
}

func (r *Remote) Products(ctx context.Context) ([]models.Product, error) {
	return r.fetchList(ctx, "/api/products", nil)
}

// ProductsBy fetches a server-side filtered listing, mirroring
// GET /api/products?type=&category=.
func (r *Remote) ProductsBy(ctx context.Context, productType, category string) ([]models.Product, error) {
	params := url.Values{}
	if productType != "" {
		params.Set("type", productType)
	}
	if category != "" {
		params.Set("category", category)
	}
	return r.fetchList(ctx, "/api/products", params)
}

func (r *Remote) Bestsellers(ctx context.Context) ([]models.Product, error) {
	return r.fetchList(ctx, "/api/bestsellers", nil)
}

func (r *Remote) Search(ctx context.Context, q string, limit int) ([]models.Product, error) {
	params := url.Values{}
	params.Set("q", q)
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}
	return r.fetchList(ctx, "/api/search", params)
}

func (r *Remote) Product(ctx context.Context, id models.ProductID) (models.Product, error) {
	var product models.Product
	status, err := r.get(ctx, "/api/product/"+url.PathEscape(id.String()), nil, &product)
	if err != nil {
		return models.Product{}, err
	}
	if status == http.StatusNotFound {
		return models.Product{}, ErrNotFound
	}
	if status < 200 || status > 299 {
		return models.Product{}, fmt.Errorf("catalog api: unexpected status %d", status)
	}
	return product, nil
}

func (r *Remote) fetchList(ctx context.Context, path string, params url.Values) ([]models.Product, error) {
	var products []models.Product
	status, err := r.get(ctx, path, params, &products)
	if err != nil {
		return nil, err
	}
	if status < 200 || status > 299 {
		return nil, fmt.Errorf("catalog api: unexpected status %d", status)
	}
	return products, nil
}

// get performs the request and decodes a 2xx or 404 body into out, returning
// the status code. Decode is skipped on 404 so callers can map it to
// ErrNotFound themselves.
func (r *Remote) get(ctx context.Context, path string, params url.Values, out any) (int, error) {
	u := r.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return 0, err
	}
	resp, err := r.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("catalog api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return resp.StatusCode, nil
	}
	if resp.StatusCode >= 200 && resp.StatusCode <= 299 {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, fmt.Errorf("catalog api: decode response: %w", err)
		}
	}
	return resp.StatusCode, nil
}
