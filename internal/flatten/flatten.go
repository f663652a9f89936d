package flatten

import (
	"github.com/wellywell/ordersheet/internal/types"
)

// Flatten binds one order with one of its items into a flat destination row.
// It is a pure function and never fails: every lookup defaults to the empty
// string when the field is absent, and monetary fields default through both
// levels of the {Amount, CurrencyCode} object. No numeric coercion happens
// here; the sheet decides how to type values on read.
func Flatten(order types.RawOrder, item types.RawOrderItem) types.FlatOrderRecord {

	return types.FlatOrderRecord{
		OrderID:            stringField(order, "AmazonOrderId"),
		PurchaseDate:       stringField(order, "PurchaseDate"),
		OrderStatus:        stringField(order, "OrderStatus"),
		SKU:                stringField(item, "SellerSKU"),
		ASIN:               stringField(item, "ASIN"),
		QuantityOrdered:    rawField(item, "QuantityOrdered"),
		CurrencyCode:       amountCurrency(item, "ItemPrice"),
		SalesChannel:       stringField(order, "SalesChannel"),
		FulfillmentChannel: stringField(order, "FulfillmentChannel"),
		ItemPrice:          amount(item, "ItemPrice"),
		ItemTax:            amount(item, "ItemTax"),
		ShippingPrice:      amount(item, "ShippingPrice"),
		ShippingTax:        amount(item, "ShippingTax"),
		PromotionDiscount:  amount(item, "PromotionDiscount"),
		ShippingDiscount:   amount(item, "ShippingDiscount"),
		CountryCode:        nestedString(order, "ShippingAddress", "CountryCode"),
		IsBusinessOrder:    rawField(order, "IsBusinessOrder"),
		IsGift:             rawField(item, "IsGift"),
		GiftWrapPrice:      amount(item, "GiftWrapPrice"),
		GiftWrapTax:        amount(item, "GiftWrapTax"),
	}
}

// IsGiftItem reports whether the item carries the gift marker. The API sends
// IsGift as the string "true" rather than a JSON bool; both are accepted.
func IsGiftItem(item types.RawOrderItem) bool {
	switch v := item["IsGift"].(type) {
	case string:
		return v == "true"
	case bool:
		return v
	default:
		return false
	}
}

func stringField(m map[string]any, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

// rawField keeps the source representation (bool, string, number) untouched
// so that whatever the API sent ends up in the sheet verbatim.
func rawField(m map[string]any, key string) any {
	if v, ok := m[key]; ok {
		return v
	}
	return ""
}

func nestedString(m map[string]any, outer string, inner string) string {
	nested, ok := m[outer].(map[string]any)
	if !ok {
		return ""
	}
	return stringField(nested, inner)
}

func amount(m map[string]any, key string) string {
	return nestedString(m, key, "Amount")
}

func amountCurrency(m map[string]any, key string) string {
	return nestedString(m, key, "CurrencyCode")
}
