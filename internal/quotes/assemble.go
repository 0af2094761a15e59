package quotes

import (
	"fmt"
	"strings"

	"github.com/aldercommerce/quotebridge-backend/pkg/shopify"
)

const (
	draftOrderTags = "quote-request"
	defaultSource  = "request-quote-form"
	noteSeparator  = " | "
	attrSource     = "request_source"
	attrComment    = "request_comment"
	attrCartNote   = "cart_note"
)

// BuildDraftOrder assembles the outbound payload from a validated request.
// Note segments and note attributes follow a fixed order so repeated
// submissions of the same form produce identical payloads.
func BuildDraftOrder(req *QuoteRequest, lineItems []shopify.LineItem) shopify.DraftOrder {
	customer := req.Customer

	noteParts := []string{fmt.Sprintf("Quote request from %s", customer.Name)}
	if customer.Phone != "" {
		noteParts = append(noteParts, "Phone: "+customer.Phone)
	}
	if customer.Email != "" {
		noteParts = append(noteParts, "Email: "+customer.Email)
	}
	if customer.Comment != "" {
		noteParts = append(noteParts, "Comment: "+customer.Comment)
	}

	address := shopify.Address{
		Name:     customer.Name,
		Address1: customer.Address,
		Phone:    customer.Phone,
	}

	source := req.Context.Source
	if source == "" {
		source = defaultSource
	}
	attributes := []shopify.NoteAttribute{
		{Name: attrSource, Value: source},
		{Name: attrComment, Value: customer.Comment},
	}
	if req.Cart.Note != "" {
		attributes = append(attributes, shopify.NoteAttribute{Name: attrCartNote, Value: req.Cart.Note})
	}

	return shopify.DraftOrder{
		Tags:            draftOrderTags,
		Email:           customer.Email,
		Note:            strings.Join(noteParts, noteSeparator),
		ShippingAddress: address,
		BillingAddress:  address,
		NoteAttributes:  attributes,
		LineItems:       lineItems,
	}
}
