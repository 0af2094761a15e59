package shopify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	pkgerrors "github.com/aldercommerce/quotebridge-backend/pkg/errors"
)

const (
	defaultAPIVersion        = "2024-10"
	errorBodyReadLimit int64 = 2048

	accessTokenHeader = "X-Shopify-Access-Token"
)

var (
	errDomainRequired = errors.New("shopify store domain is required")
	errTokenRequired  = errors.New("shopify admin access token is required")
)

// Client wraps the Shopify Admin REST API calls used to create draft orders.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	apiVersion string
}

// Option configures optional client behavior.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithBaseURL overrides the store base URL derived from the domain.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		trimmed := strings.TrimSpace(baseURL)
		if trimmed != "" {
			c.baseURL = trimmed
		}
	}
}

// WithAPIVersion overrides the default Admin API version.
func WithAPIVersion(version string) Option {
	return func(c *Client) {
		trimmed := strings.TrimSpace(version)
		if trimmed != "" {
			c.apiVersion = trimmed
		}
	}
}

// NewClient builds the Shopify client given the store domain and admin token.
func NewClient(domain, token string, opts ...Option) (*Client, error) {
	trimmedDomain := strings.TrimSpace(domain)
	if trimmedDomain == "" {
		return nil, errDomainRequired
	}
	trimmedToken := strings.TrimSpace(token)
	if trimmedToken == "" {
		return nil, errTokenRequired
	}

	client := &Client{
		baseURL:    "https://" + trimmedDomain,
		token:      trimmedToken,
		apiVersion: defaultAPIVersion,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}

	for _, opt := range opts {
		if opt != nil {
			opt(client)
		}
	}

	if client.httpClient == nil {
		client.httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	if client.apiVersion == "" {
		client.apiVersion = defaultAPIVersion
	}

	return client, nil
}

// CreateDraftOrder posts the draft order and returns the created ID and
// invoice URL. Upstream rejections map to a shopify_error carrying the
// upstream status; the upstream body is kept for logging only.
func (c *Client) CreateDraftOrder(ctx context.Context, order DraftOrder) (*DraftOrderResult, error) {
	if c == nil {
		return nil, pkgerrors.New(pkgerrors.CodeServerNotConfigured, "shopify client not configured")
	}

	payload, err := json.Marshal(map[string]DraftOrder{"draft_order": order})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "marshal draft order request")
	}

	url := fmt.Sprintf("%s/admin/api/%s/draft_orders.json", strings.TrimRight(c.baseURL, "/"), c.apiVersion)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "build draft order request")
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set(accessTokenHeader, c.token)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "execute draft order request")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyReadLimit))
		return nil, pkgerrors.New(pkgerrors.CodeShopify, "Failed to create draft order.").
			WithUpstreamStatus(resp.StatusCode).
			WithDetails([]string{strings.TrimSpace(string(msg))})
	}

	var apiResp struct {
		DraftOrder struct {
			ID         int64  `json:"id"`
			InvoiceURL string `json:"invoice_url"`
		} `json:"draft_order"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "decode draft order response")
	}

	return &DraftOrderResult{
		ID:         apiResp.DraftOrder.ID,
		InvoiceURL: apiResp.DraftOrder.InvoiceURL,
	}, nil
}
