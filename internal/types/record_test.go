package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeaderHasTwentyColumns(t *testing.T) {
	assert.Len(t, Header, 20)
}

func TestRowMatchesHeaderOrder(t *testing.T) {

	record := FlatOrderRecord{
		OrderID:            "026-1234567-1234567",
		PurchaseDate:       "2024-03-01T10:00:00Z",
		OrderStatus:        "Shipped",
		SKU:                "SKU-1",
		ASIN:               "B00ABCDEFG",
		QuantityOrdered:    2,
		CurrencyCode:       "EUR",
		SalesChannel:       "Amazon.de",
		FulfillmentChannel: "AFN",
		ItemPrice:          "19.99",
		ItemTax:            "3.80",
		ShippingPrice:      "0.00",
		ShippingTax:        "0.00",
		PromotionDiscount:  "1.00",
		ShippingDiscount:   "0.00",
		CountryCode:        "DE",
		IsBusinessOrder:    false,
		IsGift:             "true",
		GiftWrapPrice:      "2.50",
		GiftWrapTax:        "0.48",
	}

	row := record.Row()

	assert.Len(t, row, len(Header))

	assert.Equal(t, "026-1234567-1234567", row[0])
	assert.Equal(t, "2024-03-01T10:00:00Z", row[1])
	assert.Equal(t, "SKU-1", row[3])
	assert.Equal(t, "B00ABCDEFG", row[4])
	assert.Equal(t, 2, row[5])
	// country code lands in the column named ShippingAddress
	assert.Equal(t, "ShippingAddress", Header[15])
	assert.Equal(t, "DE", row[15])
	assert.Equal(t, false, row[16])
	assert.Equal(t, "true", row[17])
	assert.Equal(t, "0.48", row[19])
}
