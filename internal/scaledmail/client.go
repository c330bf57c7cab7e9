package scaledmail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// StatusError is a non-success response from the vendor. The body is opaque
// text; callers echo the vendor's status code and body verbatim.
type StatusError struct {
	Op     string
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: status %d: %s", e.Op, e.Status, e.Body)
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	orgID      string
}

// NewClient creates a ScaledMail API client. Every call is scoped to the
// configured vendor-side organization ID.
func NewClient(baseURL, apiKey, orgID string) *Client {
	return &Client{
		httpClient: &http.Client{},
		baseURL:    baseURL,
		apiKey:     apiKey,
		orgID:      orgID,
	}
}

// ListPreWarmInboxes fetches the full available inventory, partitioned by
// mail provider. No pagination is offered by the vendor.
func (c *Client) ListPreWarmInboxes(ctx context.Context) (*PreWarmInboxes, error) {
	u := fmt.Sprintf("%s/pre-warm-inboxes?organization_id=%s", c.baseURL, url.QueryEscape(c.orgID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("list pre-warm inboxes request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("list pre-warm inboxes: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return nil, &StatusError{Op: "list pre-warm inboxes", Status: resp.StatusCode, Body: string(body)}
	}

	var inboxes PreWarmInboxes
	if err := json.NewDecoder(resp.Body).Decode(&inboxes); err != nil {
		return nil, fmt.Errorf("decode pre-warm inboxes: %w", err)
	}
	return &inboxes, nil
}

// PurchaseInboxes buys the domains in the order. One outbound request, no
// retries: the call charges money and the vendor has no idempotency key.
func (c *Client) PurchaseInboxes(ctx context.Context, order PurchaseOrder) (json.RawMessage, error) {
	body, err := json.Marshal(order)
	if err != nil {
		return nil, fmt.Errorf("marshal purchase order: %w", err)
	}

	u := fmt.Sprintf("%s/buy-pre-warm-inboxes?organization_id=%s", c.baseURL, url.QueryEscape(c.orgID))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("purchase inboxes request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("purchase inboxes: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, &StatusError{Op: "purchase inboxes", Status: resp.StatusCode, Body: string(respBody)}
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read purchase response: %w", err)
	}
	return json.RawMessage(respBody), nil
}

// MailboxesForDomain returns the vendor's mailbox detail for one domain.
// The response shape is not modeled; it is passed through untouched.
func (c *Client) MailboxesForDomain(ctx context.Context, domainID string) (json.RawMessage, error) {
	u := fmt.Sprintf("%s/mailboxes/%s?organization_id=%s", c.baseURL, url.PathEscape(domainID), url.QueryEscape(c.orgID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("mailboxes request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch mailboxes for domain %s: %w", domainID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return nil, &StatusError{Op: fmt.Sprintf("fetch mailboxes for domain %s", domainID), Status: resp.StatusCode, Body: string(body)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read mailboxes response: %w", err)
	}
	return json.RawMessage(body), nil
}
