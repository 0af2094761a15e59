package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aldercommerce/quotebridge-backend/internal/quotes"
	"github.com/aldercommerce/quotebridge-backend/pkg/config"
	pkgerrors "github.com/aldercommerce/quotebridge-backend/pkg/errors"
)

type stubQuoteService struct {
	create func(ctx context.Context, req *quotes.QuoteRequest) (*quotes.QuoteResult, error)
	calls  int
}

func (s *stubQuoteService) CreateQuote(ctx context.Context, req *quotes.QuoteRequest) (*quotes.QuoteResult, error) {
	s.calls++
	if s.create != nil {
		return s.create(ctx, req)
	}
	return &quotes.QuoteResult{DraftOrderID: 1}, nil
}

func configuredConfig() *config.Config {
	return &config.Config{
		Shopify: config.ShopifyConfig{
			StoreDomain: "demo.myshopify.com",
			AdminToken:  "shpat_test",
		},
	}
}

func postQuote(handler http.HandlerFunc, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/quote", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestCreateQuoteSuccess(t *testing.T) {
	svc := &stubQuoteService{
		create: func(ctx context.Context, req *quotes.QuoteRequest) (*quotes.QuoteResult, error) {
			if req.Customer.Name != "A" {
				t.Fatalf("unexpected request %+v", req)
			}
			return &quotes.QuoteResult{DraftOrderID: 99451, InvoiceURL: "https://demo.myshopify.com/invoices/99451"}, nil
		},
	}
	handler := CreateQuote(configuredConfig(), svc, nil)

	rec := postQuote(handler, `{"customer":{"name":"A","phone":"1","email":"a@b.com","address":"X"},"cart":{"items":[{"variant_id":"V1","quantity":2}]}}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response not JSON: %v", err)
	}
	if body["success"] != true {
		t.Fatalf("unexpected body %v", body)
	}
	if body["draftOrderId"] != float64(99451) {
		t.Fatalf("unexpected draftOrderId %v", body)
	}
	if body["invoiceUrl"] != "https://demo.myshopify.com/invoices/99451" {
		t.Fatalf("unexpected invoiceUrl %v", body)
	}
}

func TestCreateQuoteUnconfigured(t *testing.T) {
	svc := &stubQuoteService{}
	handler := CreateQuote(&config.Config{}, svc, nil)

	rec := postQuote(handler, `{"customer":{"name":"A"}}`)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "server_not_configured") {
		t.Fatalf("unexpected body %s", rec.Body.String())
	}
	if svc.calls != 0 {
		t.Fatalf("service must not be called when unconfigured")
	}
}

func TestCreateQuoteInvalidJSON(t *testing.T) {
	handler := CreateQuote(configuredConfig(), &stubQuoteService{}, nil)

	rec := postQuote(handler, `{"customer":`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "invalid_json") {
		t.Fatalf("unexpected body %s", rec.Body.String())
	}
}

func TestCreateQuoteServiceErrorPassedThrough(t *testing.T) {
	svc := &stubQuoteService{
		create: func(ctx context.Context, req *quotes.QuoteRequest) (*quotes.QuoteResult, error) {
			return nil, pkgerrors.New(pkgerrors.CodeShopify, "Failed to create draft order.").WithUpstreamStatus(422)
		},
	}
	handler := CreateQuote(configuredConfig(), svc, nil)

	rec := postQuote(handler, `{"customer":{"name":"A","phone":"1","email":"a@b.com","address":"X"},"cart":{"items":[{"variant_id":"V1"}]}}`)

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d", rec.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response not JSON: %v", err)
	}
	if body["error"] != "shopify_error" || body["status"] != float64(422) {
		t.Fatalf("unexpected body %v", body)
	}
}

func TestQuotePreflight(t *testing.T) {
	rec := httptest.NewRecorder()
	QuotePreflight()(rec, httptest.NewRequest(http.MethodOptions, "/api/quote", nil))

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("preflight body must be empty, got %s", rec.Body.String())
	}
}
