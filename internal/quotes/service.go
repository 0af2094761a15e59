package quotes

import (
	"context"

	pkgerrors "github.com/aldercommerce/quotebridge-backend/pkg/errors"
	"github.com/aldercommerce/quotebridge-backend/pkg/logger"
	"github.com/aldercommerce/quotebridge-backend/pkg/shopify"
)

const noValidLineItemsDetail = "No valid line items were provided."

// DraftOrderCreator is the outbound platform call the service depends on.
type DraftOrderCreator interface {
	CreateDraftOrder(ctx context.Context, order shopify.DraftOrder) (*shopify.DraftOrderResult, error)
}

// QuoteResult carries the identifiers surfaced back to the storefront.
type QuoteResult struct {
	DraftOrderID int64
	InvoiceURL   string
}

type Service struct {
	platform DraftOrderCreator
	logg     *logger.Logger
}

func NewService(platform DraftOrderCreator, logg *logger.Logger) *Service {
	return &Service{platform: platform, logg: logg}
}

// CreateQuote validates the submission, maps the cart, and creates the draft
// order upstream. Every failure is terminal; validation problems are
// collected before the outbound call is attempted.
func (s *Service) CreateQuote(ctx context.Context, req *QuoteRequest) (*QuoteResult, error) {
	if details := Validate(req); len(details) > 0 {
		return nil, pkgerrors.New(pkgerrors.CodeInvalidPayload, "invalid payload").WithDetails(details)
	}

	lineItems := MapLineItems(req.Cart.Items)
	if len(lineItems) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeInvalidPayload, "invalid payload").
			WithDetails([]string{noValidLineItemsDetail})
	}

	if s.platform == nil {
		return nil, pkgerrors.New(pkgerrors.CodeServerNotConfigured, "draft order platform not configured")
	}

	order := BuildDraftOrder(req, lineItems)
	if s.logg != nil {
		ctx = s.logg.WithFields(ctx, map[string]any{
			"line_items": len(order.LineItems),
			"source":     order.NoteAttributes[0].Value,
		})
		s.logg.Info(ctx, "quote.draft_order.create")
	}

	result, err := s.platform.CreateDraftOrder(ctx, order)
	if err != nil {
		return nil, err
	}

	return &QuoteResult{
		DraftOrderID: result.ID,
		InvoiceURL:   result.InvoiceURL,
	}, nil
}
