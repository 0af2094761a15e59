package controllers

import (
	"context"
	"io"
	"net/http"

	"github.com/aldercommerce/quotebridge-backend/api/responses"
	"github.com/aldercommerce/quotebridge-backend/internal/quotes"
	"github.com/aldercommerce/quotebridge-backend/pkg/config"
	pkgerrors "github.com/aldercommerce/quotebridge-backend/pkg/errors"
	"github.com/aldercommerce/quotebridge-backend/pkg/logger"
)

// QuoteService converts a validated submission into a draft order.
type QuoteService interface {
	CreateQuote(ctx context.Context, req *quotes.QuoteRequest) (*quotes.QuoteResult, error)
}

// QuoteResponse is the success envelope returned to the storefront.
type QuoteResponse struct {
	Success      bool   `json:"success"`
	DraftOrderID int64  `json:"draftOrderId,omitempty"`
	InvoiceURL   string `json:"invoiceUrl,omitempty"`
}

// CreateQuote handles the quote-form POST. The configuration guard runs
// before any payload parsing: missing credentials are a deployment error,
// not a request error.
func CreateQuote(cfg *config.Config, svc QuoteService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if !cfg.Shopify.Configured() {
			responses.WriteError(ctx, logg, w,
				pkgerrors.New(pkgerrors.CodeServerNotConfigured, "Shopify credentials are not configured."))
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "read request body"))
			return
		}

		req, err := quotes.Decode(body)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		result, err := svc.CreateQuote(ctx, req)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteJSON(w, http.StatusOK, QuoteResponse{
			Success:      true,
			DraftOrderID: result.DraftOrderID,
			InvoiceURL:   result.InvoiceURL,
		})
	}
}

// QuotePreflight answers CORS preflight with no body; the CORS middleware
// has already attached the policy headers.
func QuotePreflight() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}
}
