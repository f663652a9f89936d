package fetch

import (
	"context"
	"fmt"
	"time"

	logger "github.com/sirupsen/logrus"
	"github.com/wellywell/ordersheet/internal/flatten"
	"github.com/wellywell/ordersheet/internal/spapi"
	"github.com/wellywell/ordersheet/internal/types"
)

// OrderSource lists orders for one marketplace and resolves their items.
type OrderSource interface {
	ListOrders(ctx context.Context, window types.DateRange) ([]types.RawOrder, error)
	GetOrderItems(ctx context.Context, orderID string) (spapi.OrderItemsResult, error)
	GetOrderItemsBuyerInfo(ctx context.Context, orderID string) (map[string]any, error)
}

// ErrItemFetch marks a marketplace run cut short by an item-level error
// payload. Rows collected before the failing order are still returned.
type ErrItemFetch struct {
	OrderID string
	Reason  error
}

func (e *ErrItemFetch) Error() string {
	return fmt.Sprintf("fetching items of order %s failed: %s", e.OrderID, e.Reason)
}

func (e *ErrItemFetch) Unwrap() error {
	return e.Reason
}

// Fetcher pulls the order listing of one marketplace and flattens every
// (order, item) pair in listing order. Processing stops at the first order
// whose item fetch returns an error payload; orders processed before it are
// kept. After each order's items a fixed delay is applied so the upstream
// request quota is respected. No retries beyond that.
type Fetcher struct {
	source OrderSource
	delay  time.Duration
	sleep  func(time.Duration)
}

func NewFetcher(source OrderSource, delay time.Duration) *Fetcher {
	return &Fetcher{
		source: source,
		delay:  delay,
		sleep:  time.Sleep,
	}
}

func (f *Fetcher) Fetch(ctx context.Context, marketplaceID string, window types.DateRange) ([]types.FlatOrderRecord, error) {

	orders, err := f.source.ListOrders(ctx, window)
	if err != nil {
		return nil, fmt.Errorf("listing orders for %s failed %w", marketplaceID, err)
	}
	logger.Infof("Fetched %d orders for %s", len(orders), marketplaceID)

	records := []types.FlatOrderRecord{}

	for _, order := range orders {
		orderID, _ := order["AmazonOrderId"].(string)
		logger.Infof("Fetching order details with id %s", orderID)

		result, err := f.source.GetOrderItems(ctx, orderID)
		if err != nil {
			return records, fmt.Errorf("fetching items of order %s failed %w", orderID, err)
		}
		if result.Err != nil {
			// stop the rest of this marketplace's listing, keep what we have
			logger.Errorf("Order items error for %s: %s", orderID, result.Err)
			return records, fmt.Errorf("%w", &ErrItemFetch{OrderID: orderID, Reason: result.Err})
		}

		for _, item := range result.Items {
			asin, _ := item["ASIN"].(string)
			logger.Infof("Successfully fetched order item with ASIN %s", asin)

			if flatten.IsGiftItem(item) {
				f.logBuyerInfo(ctx, orderID)
			}

			records = append(records, flatten.Flatten(order, item))
		}

		logger.Infof("Applying delay by %s", f.delay)
		f.sleep(f.delay)
	}

	return records, nil
}

// logBuyerInfo fetches the buyer info of a gift order for the log only. The
// response is not merged into the record: the sheet schema is fixed and
// existing sheets depend on its column order.
func (f *Fetcher) logBuyerInfo(ctx context.Context, orderID string) {
	info, err := f.source.GetOrderItemsBuyerInfo(ctx, orderID)
	if err != nil {
		logger.Errorf("Buyer info lookup for %s failed: %s", orderID, err)
		return
	}
	logger.Infof("Gift order %s buyer info: %v", orderID, info)
}
