package quotes

import (
	"bytes"
	"encoding/json"

	pkgerrors "github.com/aldercommerce/quotebridge-backend/pkg/errors"
	"github.com/aldercommerce/quotebridge-backend/pkg/types"
)

// QuoteRequest is the storefront quote-form submission.
type QuoteRequest struct {
	Customer Customer    `json:"customer"`
	Cart     Cart        `json:"cart"`
	Context  FormContext `json:"context"`
}

type Customer struct {
	Name    string `json:"name" validate:"required"`
	Phone   string `json:"phone" validate:"required"`
	Email   string `json:"email" validate:"required"`
	Address string `json:"address" validate:"required"`
	Comment string `json:"comment"`
}

type Cart struct {
	Items []*CartItem `json:"items" validate:"required,min=1"`
	Note  string      `json:"note"`
}

type FormContext struct {
	Source string `json:"source"`
}

// CartItem is one raw cart entry. Themes send IDs and amounts as strings or
// numbers interchangeably, so the scalar fields are permissive. Items are
// pointers so a literal null in the list survives decoding and is dropped
// during mapping instead of failing the request.
type CartItem struct {
	VariantID    types.FlexString `json:"variant_id"`
	ProductID    types.FlexString `json:"product_id"`
	Title        types.FlexString `json:"title"`
	ProductTitle types.FlexString `json:"product_title"`
	Price        types.FlexNumber `json:"price"`
	FinalPrice   types.FlexNumber `json:"final_price"`
	Quantity     types.FlexNumber `json:"quantity"`
	Properties   map[string]any   `json:"properties"`
}

// Decode parses the raw request body. Some storefront integrations send the
// payload double-encoded (a JSON string containing JSON); one level of
// wrapping is unwrapped before decoding.
func Decode(body []byte) (*QuoteRequest, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeInvalidJSON, "request body is empty")
	}
	if trimmed[0] == '"' {
		var unwrapped string
		if err := json.Unmarshal(trimmed, &unwrapped); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInvalidJSON, err, err.Error())
		}
		trimmed = []byte(unwrapped)
	}

	var req QuoteRequest
	if err := json.Unmarshal(trimmed, &req); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInvalidJSON, err, err.Error())
	}
	return &req, nil
}
