// Package directory implements the order and courier directory ports as thin
// HTTP clients against the services that own those records. Only existence is
// checked: a HEAD-style GET of the resource, mapped onto the error kinds the
// application layer understands.
package directory

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"
)

const defaultTimeout = 5 * time.Second

// Client resolves record existence against a directory service.
type Client struct {
	baseURL string
	session *http.Client
}

// NewClient creates a directory client for the service at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		session: &http.Client{Timeout: defaultTimeout},
	}
}

// verifyExists issues GET {baseURL}/{resource}/{id} and maps the status code:
// 2xx means the record exists, 404 maps to ObjectNotFound, anything else is a
// transport-level failure.
func (c *Client) verifyExists(ctx context.Context, resource string, id kernel.UUID) error {
	url := fmt.Sprintf("%s/%s/%s", c.baseURL, resource, id.String())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.session.Do(req)
	if err != nil {
		return fmt.Errorf("%s directory: %w", resource, err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return errs.NewObjectNotFoundError(resource, id.String())
	case resp.StatusCode >= 400:
		return fmt.Errorf("%s directory: unexpected status %d", resource, resp.StatusCode)
	}

	return nil
}

// OrderDirectoryClient implements ports.OrderDirectory over HTTP.
type OrderDirectoryClient struct {
	client *Client
}

// NewOrderDirectoryClient creates an order directory client for the order
// service at baseURL.
func NewOrderDirectoryClient(baseURL string) *OrderDirectoryClient {
	return &OrderDirectoryClient{client: NewClient(baseURL)}
}

// VerifyOrderExists checks that the order is known to the order service.
func (c *OrderDirectoryClient) VerifyOrderExists(ctx context.Context, orderID kernel.UUID) error {
	return c.client.verifyExists(ctx, "orders", orderID)
}

// CourierDirectoryClient implements ports.CourierDirectory over HTTP.
type CourierDirectoryClient struct {
	client *Client
}

// NewCourierDirectoryClient creates a courier directory client for the
// courier service at baseURL.
func NewCourierDirectoryClient(baseURL string) *CourierDirectoryClient {
	return &CourierDirectoryClient{client: NewClient(baseURL)}
}

// VerifyCourierExists checks that the courier is known to the courier service.
func (c *CourierDirectoryClient) VerifyCourierExists(ctx context.Context, courierID kernel.UUID) error {
	return c.client.verifyExists(ctx, "couriers", courierID)
}
