// Package gateway asks payment gateways for the current status of transactions and
// refunds whose webhook never arrived.
package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jeffleon2/draftea-payment-callbacks/internal/models"
)

// SourceReconciliation marks events produced by a status query instead of a webhook.
const SourceReconciliation = "reconciliation"

// restClient is the minimal JSON-over-HTTP client shared by the REST gateways.
type restClient struct {
	baseURL string
	headers map[string]string
	http    *http.Client
}

func newRestClient(baseURL string, timeout time.Duration, headers map[string]string) *restClient {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &restClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		headers: headers,
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *restClient) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading %s response: %w", path, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("GET %s returned status %d", path, resp.StatusCode)
	}
	return body, nil
}

// envelope wraps a gateway object in the webhook envelope its normalizer expects.
func envelope(fields map[string]interface{}, objectKey string, object []byte) ([]byte, error) {
	wrapped := make(map[string]interface{}, len(fields)+1)
	for k, v := range fields {
		wrapped[k] = v
	}
	wrapped[objectKey] = json.RawMessage(object)
	return json.Marshal(wrapped)
}

func markReconciled(event *models.PaymentCallbackEvent) *models.PaymentCallbackEvent {
	event.SetMetadata("source", SourceReconciliation)
	return event
}
