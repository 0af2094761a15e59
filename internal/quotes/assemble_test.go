package quotes

import (
	"testing"

	"github.com/aldercommerce/quotebridge-backend/pkg/shopify"
)

func TestBuildDraftOrderFullNote(t *testing.T) {
	req := &QuoteRequest{
		Customer: Customer{
			Name:    "Ada",
			Phone:   "555-0101",
			Email:   "ada@example.com",
			Address: "1 Main St",
			Comment: "Call before noon",
		},
	}

	order := BuildDraftOrder(req, nil)

	want := "Quote request from Ada | Phone: 555-0101 | Email: ada@example.com | Comment: Call before noon"
	if order.Note != want {
		t.Fatalf("note = %q, want %q", order.Note, want)
	}
	if order.Tags != "quote-request" {
		t.Fatalf("tags = %q", order.Tags)
	}
	if order.Email != "ada@example.com" {
		t.Fatalf("email = %q", order.Email)
	}
}

func TestBuildDraftOrderNoteSkipsAbsentParts(t *testing.T) {
	req := &QuoteRequest{Customer: Customer{Name: "Ada", Address: "1 Main St"}}

	order := BuildDraftOrder(req, nil)
	if order.Note != "Quote request from Ada" {
		t.Fatalf("note = %q", order.Note)
	}
}

func TestBuildDraftOrderAddresses(t *testing.T) {
	req := &QuoteRequest{
		Customer: Customer{Name: "Ada", Phone: "555-0101", Address: "1 Main St"},
	}

	order := BuildDraftOrder(req, nil)

	want := shopify.Address{Name: "Ada", Address1: "1 Main St", Phone: "555-0101"}
	if order.ShippingAddress != want {
		t.Fatalf("shipping address = %+v", order.ShippingAddress)
	}
	if order.BillingAddress != want {
		t.Fatalf("billing address must equal shipping: %+v", order.BillingAddress)
	}
}

func TestBuildDraftOrderNoteAttributes(t *testing.T) {
	req := &QuoteRequest{
		Customer: Customer{Name: "Ada", Comment: "gift"},
		Cart:     Cart{Note: "wrap separately"},
		Context:  FormContext{Source: "pdp-widget"},
	}

	order := BuildDraftOrder(req, nil)

	if len(order.NoteAttributes) != 3 {
		t.Fatalf("unexpected attributes %+v", order.NoteAttributes)
	}
	if order.NoteAttributes[0] != (shopify.NoteAttribute{Name: "request_source", Value: "pdp-widget"}) {
		t.Fatalf("unexpected source attribute %+v", order.NoteAttributes[0])
	}
	if order.NoteAttributes[1] != (shopify.NoteAttribute{Name: "request_comment", Value: "gift"}) {
		t.Fatalf("unexpected comment attribute %+v", order.NoteAttributes[1])
	}
	if order.NoteAttributes[2] != (shopify.NoteAttribute{Name: "cart_note", Value: "wrap separately"}) {
		t.Fatalf("unexpected cart note attribute %+v", order.NoteAttributes[2])
	}
}

func TestBuildDraftOrderAttributeDefaults(t *testing.T) {
	req := &QuoteRequest{Customer: Customer{Name: "Ada"}}

	order := BuildDraftOrder(req, nil)

	if len(order.NoteAttributes) != 2 {
		t.Fatalf("cart_note must be absent: %+v", order.NoteAttributes)
	}
	if order.NoteAttributes[0].Value != "request-quote-form" {
		t.Fatalf("source default missing: %+v", order.NoteAttributes[0])
	}
	if order.NoteAttributes[1].Value != "" {
		t.Fatalf("comment should default to empty string: %+v", order.NoteAttributes[1])
	}
}

func TestBuildDraftOrderKeepsLineItems(t *testing.T) {
	items := []shopify.LineItem{{VariantID: "V1", Quantity: 2}, {Title: "Custom", Quantity: 1}}
	order := BuildDraftOrder(&QuoteRequest{Customer: Customer{Name: "Ada"}}, items)
	if len(order.LineItems) != 2 || order.LineItems[0].VariantID != "V1" {
		t.Fatalf("line items not preserved: %+v", order.LineItems)
	}
}
