package types

import "time"

// RawOrder is one order as returned by the marketplace API, kept as the raw
// decoded JSON object. It is never stored beyond a single flatten call.
type RawOrder map[string]any

// RawOrderItem is one line item of an order, same representation as RawOrder.
type RawOrderItem map[string]any

// Header lists the destination column names. The order is fixed: existing
// sheets were written with exactly this sequence and reordering breaks them.
// The country code goes into the column historically named ShippingAddress.
var Header = []string{
	"AmazonOrderId",
	"PurchaseDate",
	"OrderStatus",
	"sku",
	"asin",
	"QuantityOrdered",
	"CurrencyCode",
	"SalesChannel",
	"FulfillmentChannel",
	"ItemPrice",
	"ItemTax",
	"ShippingPrice",
	"ShippingTax",
	"PromotionDiscount",
	"ShippingDiscount",
	"ShippingAddress",
	"IsBusinessOrder",
	"IsGift",
	"GiftWrapPrice",
	"GiftWrapTax",
}

// FlatOrderRecord is one destination row, one per (order, order item) pair.
// Monetary amounts stay decimal strings, empty when the source omits them.
// QuantityOrdered, IsBusinessOrder and IsGift keep whatever representation
// the source sent (number, bool or string); the destination types on read.
type FlatOrderRecord struct {
	OrderID            string
	PurchaseDate       string
	OrderStatus        string
	SKU                string
	ASIN               string
	QuantityOrdered    any
	CurrencyCode       string
	SalesChannel       string
	FulfillmentChannel string
	ItemPrice          string
	ItemTax            string
	ShippingPrice      string
	ShippingTax        string
	PromotionDiscount  string
	ShippingDiscount   string
	CountryCode        string
	IsBusinessOrder    any
	IsGift             any
	GiftWrapPrice      string
	GiftWrapTax        string
}

// Row enumerates the record values in Header order.
func (r FlatOrderRecord) Row() []any {
	return []any{
		r.OrderID,
		r.PurchaseDate,
		r.OrderStatus,
		r.SKU,
		r.ASIN,
		r.QuantityOrdered,
		r.CurrencyCode,
		r.SalesChannel,
		r.FulfillmentChannel,
		r.ItemPrice,
		r.ItemTax,
		r.ShippingPrice,
		r.ShippingTax,
		r.PromotionDiscount,
		r.ShippingDiscount,
		r.CountryCode,
		r.IsBusinessOrder,
		r.IsGift,
		r.GiftWrapPrice,
		r.GiftWrapTax,
	}
}

// MarketplaceConfig is one country entry of the registry. The registry is an
// ordered list; the position determines the worksheet index in the sheet.
type MarketplaceConfig struct {
	MarketplaceID string
	CountryCode   string
	WorksheetName string
	RefreshToken  string
}

// DateRange is the [After, Before) window passed to the order listing call.
type DateRange struct {
	After  time.Time
	Before time.Time
}
