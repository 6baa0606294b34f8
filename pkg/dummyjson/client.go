package dummyjson

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/time/rate"

	"storefront/pkg/scope"
)

const (
	DefaultBaseURL = "https://dummyjson.com"
	DefaultTimeout = 10 * time.Second

	maxErrorBody = 512
)

// Client is the HTTP client for the catalog collaborator. It issues exactly
// one request per call: no retries, no caching.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

var _ IDummyJSON = (*Client)(nil)

// NewClient creates a catalog client for baseURL.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
}

// WithTimeout overrides the per-request timeout.
func (c *Client) WithTimeout(d time.Duration) *Client {
	if d > 0 {
		c.httpClient.Timeout = d
	}
	return c
}

// WithRateLimit throttles outbound requests to rps per second. Zero disables it.
func (c *Client) WithRateLimit(rps float64) *Client {
	if rps <= 0 {
		c.limiter = nil
		return c
	}
	burst := int(rps)
	if burst < 1 {
		burst = 1
	}
	c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	return c
}

// WithHTTPClient replaces the underlying http.Client.
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	if hc != nil {
		c.httpClient = hc
	}
	return c
}

// ListProducts fetches one page via GET /products or /products/category/{c}.
func (c *Client) ListProducts(ctx context.Context, req ListProductsRequest) (ProductPage, error) {
	const op = "ListProducts"

	path := "/products"
	if req.Category != "" {
		path = "/products/category/" + url.PathEscape(req.Category)
	}
	q := url.Values{}
	q.Set("limit", strconv.Itoa(req.Limit))
	q.Set("skip", strconv.Itoa(req.Skip))

	var env productsEnvelope
	if err := c.get(ctx, op, path, q, &env); err != nil {
		return ProductPage{}, err
	}
	if env.Products == nil {
		return ProductPage{}, &MalformedResponseError{Op: op, Reason: "missing products"}
	}
	if env.Total == nil {
		return ProductPage{}, &MalformedResponseError{Op: op, Reason: "missing total"}
	}
	if *env.Total < 0 {
		return ProductPage{}, &MalformedResponseError{Op: op, Reason: "negative total"}
	}

	return ProductPage{
		Products: *env.Products,
		Total:    *env.Total,
		Skip:     env.Skip,
		Limit:    env.Limit,
	}, nil
}

// ListCategories fetches GET /products/categories. Both the legacy
// string-array form and the object form are accepted.
func (c *Client) ListCategories(ctx context.Context) ([]Category, error) {
	const op = "ListCategories"

	var raw json.RawMessage
	if err := c.get(ctx, op, "/products/categories", nil, &raw); err != nil {
		return nil, err
	}
	if trimmed := bytes.TrimSpace(raw); len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, &MalformedResponseError{Op: op, Reason: "missing categories"}
	}

	var objects []Category
	if err := json.Unmarshal(raw, &objects); err == nil {
		for _, cat := range objects {
			if cat.Slug == "" {
				return nil, &MalformedResponseError{Op: op, Reason: "category without slug"}
			}
		}
		return objects, nil
	}

	var slugs []string
	if err := json.Unmarshal(raw, &slugs); err != nil {
		return nil, &MalformedResponseError{Op: op, Reason: "unexpected categories shape", Err: err}
	}
	cats := make([]Category, len(slugs))
	for i, s := range slugs {
		cats[i] = Category{Slug: s, Name: s}
	}
	return cats, nil
}

// GetProduct fetches GET /products/{id}.
func (c *Client) GetProduct(ctx context.Context, id int) (Product, error) {
	const op = "GetProduct"

	var p Product
	if err := c.get(ctx, op, "/products/"+strconv.Itoa(id), nil, &p); err != nil {
		return Product{}, err
	}
	if p.ID == 0 {
		return Product{}, &MalformedResponseError{Op: op, Reason: "missing id"}
	}
	return p, nil
}

// GetCart fetches GET /carts/{id}.
func (c *Client) GetCart(ctx context.Context, id int) (Cart, error) {
	const op = "GetCart"

	var cart Cart
	if err := c.get(ctx, op, "/carts/"+strconv.Itoa(id), nil, &cart); err != nil {
		return Cart{}, err
	}
	if cart.ID == 0 {
		return Cart{}, &MalformedResponseError{Op: op, Reason: "missing id"}
	}
	return cart, nil
}

// get performs a GET against the collaborator and decodes the JSON body into out.
func (c *Client) get(ctx context.Context, op, path string, query url.Values, out any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return &UnavailableError{Op: op, Err: err}
		}
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return &UnavailableError{Op: op, Err: fmt.Errorf("failed to build request: %w", err)}
	}
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.clientFor(ctx).Do(httpReq)
	if err != nil {
		return &UnavailableError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &UnavailableError{
			Op:         op,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("collaborator error %d: %s", resp.StatusCode, string(raw)),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &MalformedResponseError{Op: op, Reason: "invalid json", Err: err}
	}
	return nil
}

// clientFor returns an http.Client that forwards the caller's token as a
// bearer credential, or the plain client when ctx carries none.
func (c *Client) clientFor(ctx context.Context) *http.Client {
	tok := scope.TokenFromContext(ctx)
	if tok == "" {
		return c.httpClient
	}
	return &http.Client{
		Timeout: c.httpClient.Timeout,
		Transport: &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: tok, TokenType: "Bearer"}),
			Base:   c.httpClient.Transport,
		},
	}
}
