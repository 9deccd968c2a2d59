// Package store defines the remote content-store contract the console
// consumes, plus the HTTP implementation that talks to the hosted store.
// The store is the system of record for orders; the console never embeds it.
package store

import (
	"context"
	"errors"

	"orderdeck/internal/models"
)

// Store is the remote query/delete surface.
//
// QueryOrders returns every order with line items resolved inline (joined,
// not as references), in the store's iteration order. DeleteOrder removes
// one record and reports no partial-success signal: any error means the
// remote state is unknown to the caller.
type Store interface {
	QueryOrders(ctx context.Context) ([]models.Order, error)
	DeleteOrder(ctx context.Context, id string) error
}

var (
	// ErrNotFound means the remote store holds no record with the given id.
	ErrNotFound = errors.New("order not found in remote store")
	// ErrUnauthorized means the store rejected the configured token.
	ErrUnauthorized = errors.New("remote store rejected credentials")
	// ErrUnavailable means the store could not be reached or answered 5xx.
	ErrUnavailable = errors.New("remote store unavailable")
)
