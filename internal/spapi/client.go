package spapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-resty/resty/v2"
	"github.com/wellywell/ordersheet/internal/token"
	"github.com/wellywell/ordersheet/internal/types"
)

const DefaultEndpoint = "https://sellingpartnerapi-eu.amazon.com"

// MarketplaceIDs maps the configured country codes to Selling Partner API
// marketplace identifiers.
var MarketplaceIDs = map[string]string{
	"BE": "AMEN7PMS3EDWL",
	"SE": "A2NODRKZP88ZB9",
	"NL": "A1805IZSGTT6HS",
	"ES": "A1RKKUPIHCS9HS",
	"IT": "APJ6JRA9NG5V4",
	"FR": "A13V1IB3VIYZZH",
	"DE": "A1PA6795UKMFR9",
	"UK": "A1F83G8C2ARO7P",
}

var (
	ErrUnauthorized = errors.New("request rejected, check credentials")
	ErrUnknown      = errors.New("unknown server error")
)

// ErrThrottle is returned on 429 with the advised wait, when present.
type ErrThrottle struct {
	RetryAfter int
}

func (e *ErrThrottle) Error() string {
	return fmt.Sprintf("too many requests, retry after %d seconds", e.RetryAfter)
}

// APIError is one entry of the errors list the API co-returns with a payload.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// OrderItemsResult normalizes the item endpoint's "payload plus errors list"
// response shape: Err is set when the response carried an errors list even
// though the HTTP call itself succeeded.
type OrderItemsResult struct {
	Items []types.RawOrderItem
	Err   error
}

type ordersResponse struct {
	Payload struct {
		Orders []types.RawOrder `json:"Orders"`
	} `json:"payload"`
	Errors []APIError `json:"errors"`
}

type orderItemsResponse struct {
	Payload struct {
		OrderItems []types.RawOrderItem `json:"OrderItems"`
	} `json:"payload"`
	Errors []APIError `json:"errors"`
}

type buyerInfoResponse struct {
	Payload map[string]any `json:"payload"`
}

// Client calls the Selling Partner orders endpoints for one marketplace.
// Every marketplace has its own refresh token, so one Client is built per
// registry entry around its own token provider.
type Client struct {
	endpoint      string
	marketplaceID string
	tokens        token.Provider
	client        *resty.Client
}

func NewClient(endpoint string, marketplaceID string, tokens token.Provider) *Client {
	return &Client{
		endpoint:      endpoint,
		marketplaceID: marketplaceID,
		tokens:        tokens,
		client:        resty.New(),
	}
}

func (c *Client) ListOrders(ctx context.Context, window types.DateRange) ([]types.RawOrder, error) {

	body, err := c.get(ctx, "/orders/v0/orders", map[string]string{
		"MarketplaceIds": c.marketplaceID,
		"CreatedAfter":   window.After.Format("2006-01-02"),
		"CreatedBefore":  window.Before.Format("2006-01-02"),
	})
	if err != nil {
		return nil, err
	}

	var parsed ordersResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("json parsing error %w", err)
	}
	if len(parsed.Errors) > 0 {
		return nil, fmt.Errorf("listing failed %w", &parsed.Errors[0])
	}

	return parsed.Payload.Orders, nil
}

// GetOrderItems returns the items of one order. An errors list in the
// response body is reported through the result, not the error return, so the
// caller can distinguish a failed call from a rejected order.
func (c *Client) GetOrderItems(ctx context.Context, orderID string) (OrderItemsResult, error) {

	body, err := c.get(ctx, "/orders/v0/orders/"+orderID+"/orderItems", nil)
	if err != nil {
		return OrderItemsResult{}, err
	}

	var parsed orderItemsResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return OrderItemsResult{}, fmt.Errorf("json parsing error %w", err)
	}
	if len(parsed.Errors) > 0 {
		return OrderItemsResult{Err: &parsed.Errors[0]}, nil
	}

	return OrderItemsResult{Items: parsed.Payload.OrderItems}, nil
}

func (c *Client) GetOrderItemsBuyerInfo(ctx context.Context, orderID string) (map[string]any, error) {

	body, err := c.get(ctx, "/orders/v0/orders/"+orderID+"/orderItems/buyerInfo", nil)
	if err != nil {
		return nil, err
	}

	var parsed buyerInfoResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("json parsing error %w", err)
	}

	return parsed.Payload, nil
}

func (c *Client) get(ctx context.Context, path string, query map[string]string) ([]byte, error) {

	accessToken, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get access token %w", err)
	}

	req := c.client.R().
		SetContext(ctx).
		SetHeader("x-amz-access-token", accessToken)
	if query != nil {
		req.SetQueryParams(query)
	}

	resp, err := req.Get(c.endpoint + path)
	if err != nil {
		return nil, err
	}

	switch resp.StatusCode() {
	case http.StatusOK:
		return resp.Body(), nil
	case http.StatusForbidden, http.StatusUnauthorized:
		return nil, fmt.Errorf("%w", ErrUnauthorized)
	case http.StatusTooManyRequests:
		retryAfter, _ := strconv.Atoi(resp.Header().Get("Retry-After"))
		return nil, fmt.Errorf("%w", &ErrThrottle{RetryAfter: retryAfter})
	case http.StatusInternalServerError:
		return nil, fmt.Errorf("%w", ErrUnknown)
	default:
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode())
	}
}
