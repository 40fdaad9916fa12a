package openfoodfacts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/nutriscan/backend/internal/domain"
	"golang.org/x/time/rate"
)

// Client handles communication with the OpenFoodFacts API
type Client struct {
	httpClient  *http.Client
	apiKey      string
	baseURL     string
	rateLimiter *rate.Limiter
	debug       bool
}

// NewClient creates a new OpenFoodFacts API client. The API key may be empty;
// OpenFoodFacts needs none, but a configured key is sent as a bearer header.
// requestsPerMinute bounds outbound traffic per the upstream usage policy.
func NewClient(apiKey, baseURL string, timeout time.Duration, requestsPerMinute int) *Client {
	limiter := rate.NewLimiter(rate.Limit(float64(requestsPerMinute)/60.0), 5)

	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		apiKey:      apiKey,
		baseURL:     baseURL,
		rateLimiter: limiter,
	}
}

// SetDebug enables verbose request logging
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

// doRequest executes an HTTP GET request and classifies transport failures
// into the domain error taxonomy: timeout, unreachable, or generic failure.
func (c *Client) doRequest(ctx context.Context, reqURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "NutriScan/1.0")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, classifyTransportError(err)
	}

	return resp, nil
}

// classifyTransportError maps a transport-level error to a sentinel so
// handlers can distinguish "slow" from "unreachable" from "broken".
func classifyTransportError(err error) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return fmt.Errorf("%w: %v", domain.ErrUpstreamTimeout, err)
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return fmt.Errorf("%w: %v", domain.ErrUpstreamUnreachable, err)
	}

	return fmt.Errorf("%w: %v", domain.ErrUpstreamFailure, err)
}

// GetProductByBarcode fetches a single product record by barcode.
// The envelope's status flag, not the HTTP status code, decides whether the
// product exists: status != 1 means not found.
func (c *Client) GetProductByBarcode(ctx context.Context, barcode string) (*domain.Product, error) {
	if c.debug {
		log.Printf("[OFF] GetProductByBarcode called with barcode: %q", barcode)
	}

	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	reqURL := fmt.Sprintf("%s/api/v0/product/%s.json", c.baseURL, url.PathEscape(barcode))

	resp, err := c.doRequest(ctx, reqURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		if c.debug {
			log.Printf("[OFF] API error - Status: %d, Body: %s", resp.StatusCode, string(body))
		}
		return nil, fmt.Errorf("%w: status %d", domain.ErrUpstreamFailure, resp.StatusCode)
	}

	var envelope domain.ProductResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if envelope.Status != 1 {
		if c.debug {
			log.Printf("[OFF] No product for barcode: %q (status %d)", barcode, envelope.Status)
		}
		return nil, domain.ErrProductNotFound
	}

	return &envelope.Product, nil
}

// SearchProducts runs a simple text search and returns the first match.
// Upstream does the ranking; only one result page of size one is requested.
func (c *Client) SearchProducts(ctx context.Context, name string) (*domain.Product, error) {
	if c.debug {
		log.Printf("[OFF] SearchProducts called with name: %q", name)
	}

	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	endpoint := fmt.Sprintf("%s/cgi/search.pl", c.baseURL)
	params := url.Values{}
	params.Add("search_terms", name)
	params.Add("search_simple", "1")
	params.Add("json", "1")
	params.Add("page_size", "1") // only the first match is used

	reqURL := fmt.Sprintf("%s?%s", endpoint, params.Encode())

	resp, err := c.doRequest(ctx, reqURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		if c.debug {
			log.Printf("[OFF] Search error - Status: %d, Body: %s", resp.StatusCode, string(body))
		}
		return nil, fmt.Errorf("%w: status %d", domain.ErrUpstreamFailure, resp.StatusCode)
	}

	var searchResp domain.SearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&searchResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if len(searchResp.Products) == 0 {
		if c.debug {
			log.Printf("[OFF] No products found for name: %q", name)
		}
		return nil, domain.ErrProductNotFound
	}

	return &searchResp.Products[0], nil
}
