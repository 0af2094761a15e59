package shopify

// DraftOrder is the outbound draft-order payload for the Admin REST API.
// Field order and contents are produced deterministically by the assembler.
type DraftOrder struct {
	Tags            string          `json:"tags"`
	Email           string          `json:"email"`
	Note            string          `json:"note"`
	ShippingAddress Address         `json:"shipping_address"`
	BillingAddress  Address         `json:"billing_address"`
	NoteAttributes  []NoteAttribute `json:"note_attributes"`
	LineItems       []LineItem      `json:"line_items"`
}

type Address struct {
	Name     string `json:"name"`
	Address1 string `json:"address1"`
	Phone    string `json:"phone"`
}

type NoteAttribute struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// LineItem is one draft-order line. Exactly one of the three shapes is
// populated: variant reference (VariantID only), product reference
// (ProductID with optional Price/Title), or a fully custom line
// (Title with optional Price).
type LineItem struct {
	VariantID  string     `json:"variant_id,omitempty"`
	ProductID  string     `json:"product_id,omitempty"`
	Title      string     `json:"title,omitempty"`
	Price      string     `json:"price,omitempty"`
	Quantity   int        `json:"quantity"`
	Properties []Property `json:"properties,omitempty"`
}

type Property struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// DraftOrderResult is the subset of the created draft order surfaced to callers.
type DraftOrderResult struct {
	ID         int64
	InvoiceURL string
}
