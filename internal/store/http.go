package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"orderdeck/internal/models"
)

// orderQuery selects every record of the order kind with its line items
// resolved inline.
const orderQuery = `*[_type == "order"]{
  _id, customerName, email, phone, address, city,
  orderDate, totalAmount,
  items[]->{title, quantity, price},
  status
}`

// HTTPStore talks to the hosted content store over its JSON API:
// a GET query endpoint and a POST mutation endpoint, both scoped to a
// dataset and authenticated with a bearer token.
type HTTPStore struct {
	baseURL string
	dataset string
	token   string
	client  *http.Client
}

// NewHTTPStore returns an HTTPStore for the given endpoint and dataset.
// The timeout bounds each remote call; zero means no client-side timeout.
func NewHTTPStore(baseURL, dataset, token string, timeout time.Duration) *HTTPStore {
	return &HTTPStore{
		baseURL: baseURL,
		dataset: dataset,
		token:   token,
		client:  &http.Client{Timeout: timeout},
	}
}

type queryResponse struct {
	Result []models.Order `json:"result"`
}

type mutateRequest struct {
	TransactionID string     `json:"transactionId"`
	Mutations     []mutation `json:"mutations"`
}

type mutation struct {
	Delete *deleteMutation `json:"delete,omitempty"`
}

type deleteMutation struct {
	ID string `json:"id"`
}

type mutateResponse struct {
	TransactionID string `json:"transactionId"`
	Results       []struct {
		ID        string `json:"id"`
		Operation string `json:"operation"`
	} `json:"results"`
}

// QueryOrders fetches the full order snapshot.
func (s *HTTPStore) QueryOrders(ctx context.Context) ([]models.Order, error) {
	endpoint := fmt.Sprintf("%s/v1/data/query/%s?query=%s",
		s.baseURL, s.dataset, url.QueryEscape(orderQuery))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build query request: %w", err)
	}
	s.authorize(req)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("query request failed: %w", ErrUnavailable)
	}
	defer resp.Body.Close()

	if err := s.statusError(resp.StatusCode); err != nil {
		return nil, fmt.Errorf("query orders: %w", err)
	}

	var qr queryResponse
	if err := json.NewDecoder(resp.Body).Decode(&qr); err != nil {
		return nil, fmt.Errorf("failed to decode query response: %w", err)
	}
	return qr.Result, nil
}

// DeleteOrder submits a single delete mutation for id. The mutation is
// tagged with a fresh transaction id so the store can deduplicate retries
// issued by the operator.
func (s *HTTPStore) DeleteOrder(ctx context.Context, id string) error {
	body := mutateRequest{
		TransactionID: uuid.NewString(),
		Mutations:     []mutation{{Delete: &deleteMutation{ID: id}}},
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode delete mutation: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v1/data/mutate/%s", s.baseURL, s.dataset)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build mutate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	s.authorize(req)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("delete request failed: %w", ErrUnavailable)
	}
	defer resp.Body.Close()

	if err := s.statusError(resp.StatusCode); err != nil {
		return fmt.Errorf("delete order %s: %w", id, err)
	}

	var mr mutateResponse
	if err := json.NewDecoder(resp.Body).Decode(&mr); err != nil {
		return fmt.Errorf("failed to decode mutate response: %w", err)
	}

	// The store answers 200 with an empty result list when nothing matched.
	if len(mr.Results) == 0 {
		return fmt.Errorf("delete order %s: %w", id, ErrNotFound)
	}
	return nil
}

func (s *HTTPStore) authorize(req *http.Request) {
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}
}

func (s *HTTPStore) statusError(code int) error {
	switch {
	case code >= 200 && code < 300:
		return nil
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return ErrUnauthorized
	case code == http.StatusNotFound:
		return ErrNotFound
	case code >= 500:
		return ErrUnavailable
	default:
		return fmt.Errorf("unexpected status %d", code)
	}
}
