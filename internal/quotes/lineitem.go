package quotes

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/aldercommerce/quotebridge-backend/pkg/shopify"
	"github.com/aldercommerce/quotebridge-backend/pkg/types"
)

// LineItemKind classifies a cart item into exactly one draft-order shape.
type LineItemKind int

const (
	// KindVariant references an existing catalog variant; the platform
	// resolves price and title itself, so neither is sent.
	KindVariant LineItemKind = iota
	// KindProduct references a product with an optional override price/title.
	KindProduct
	// KindCustom is a free-form line item built from title and price alone.
	KindCustom
)

const defaultLineItemTitle = "Custom item"

var minorUnitsPerMajor = decimal.NewFromInt(100)

// Classify picks the line-item shape for a raw cart item.
func Classify(item *CartItem) LineItemKind {
	switch {
	case !item.VariantID.Empty():
		return KindVariant
	case !item.ProductID.Empty():
		return KindProduct
	default:
		return KindCustom
	}
}

// MapLineItems converts the raw cart into draft-order line items, preserving
// input order. Null entries are dropped; an all-dropped cart yields an empty
// slice, which the service rejects.
func MapLineItems(items []*CartItem) []shopify.LineItem {
	mapped := make([]shopify.LineItem, 0, len(items))
	for _, item := range items {
		line, ok := MapLineItem(item)
		if !ok {
			continue
		}
		mapped = append(mapped, line)
	}
	return mapped
}

// MapLineItem maps one cart item per its classification. The second return
// is false when the raw item is absent.
func MapLineItem(item *CartItem) (shopify.LineItem, bool) {
	if item == nil {
		return shopify.LineItem{}, false
	}

	line := shopify.LineItem{
		Quantity:   quantityOf(item),
		Properties: mapProperties(item.Properties),
	}

	switch Classify(item) {
	case KindVariant:
		line.VariantID = item.VariantID.String()
	case KindProduct:
		line.ProductID = item.ProductID.String()
		line.Title = titleOf(item)
		if price, ok := minorUnitsPrice(item.FinalPrice, item.Price); ok {
			line.Price = price
		}
	case KindCustom:
		line.Title = titleOf(item)
		if price, ok := minorUnitsPrice(item.Price); ok {
			line.Price = price
		}
	}

	return line, true
}

// quantityOf coerces the raw quantity, silently defaulting absent, invalid,
// or non-positive values to 1.
func quantityOf(item *CartItem) int {
	if !item.Quantity.Valid {
		return 1
	}
	qty := int(item.Quantity.Value.IntPart())
	if qty <= 0 {
		return 1
	}
	return qty
}

func titleOf(item *CartItem) string {
	if !item.ProductTitle.Empty() {
		return item.ProductTitle.String()
	}
	if !item.Title.Empty() {
		return item.Title.String()
	}
	return defaultLineItemTitle
}

// minorUnitsPrice formats the first usable amount as a major-unit price with
// two decimals. Inputs are integer minor-currency amounts (cents); there is
// no currency-locale handling.
func minorUnitsPrice(amounts ...types.FlexNumber) (string, bool) {
	for _, amount := range amounts {
		if amount.Valid {
			return amount.Value.Div(minorUnitsPerMajor).StringFixed(2), true
		}
	}
	return "", false
}

// mapProperties keeps name/value pairs whose values survive text coercion and
// blank filtering. The pair list is sorted by name so payloads are
// deterministic; an empty result is omitted entirely.
func mapProperties(raw map[string]any) []shopify.Property {
	if len(raw) == 0 {
		return nil
	}
	props := make([]shopify.Property, 0, len(raw))
	for name, value := range raw {
		text, ok := propertyText(value)
		if !ok {
			continue
		}
		props = append(props, shopify.Property{Name: name, Value: text})
	}
	if len(props) == 0 {
		return nil
	}
	sort.Slice(props, func(i, j int) bool { return props[i].Name < props[j].Name })
	return props
}

func propertyText(value any) (string, bool) {
	switch v := value.(type) {
	case nil:
		return "", false
	case string:
		trimmed := strings.TrimSpace(v)
		return trimmed, trimmed != ""
	case bool:
		return strconv.FormatBool(v), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case json.Number:
		return v.String(), true
	default:
		text := strings.TrimSpace(fmt.Sprintf("%v", v))
		return text, text != ""
	}
}
