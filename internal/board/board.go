// Package board owns the locally visible order collection: loading it from
// the remote store as a full snapshot, and driving confirmed deletions that
// reconcile the local view with the remote outcome. No other component
// mutates the collection.
package board

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"orderdeck/internal/logging"
	"orderdeck/internal/models"
	"orderdeck/internal/store"
	"orderdeck/internal/ui"
)

// Board holds orders in an id-indexed map plus a fetch-order id list, so
// removal by identifier is an explicit O(1) operation and display order is
// always fetch order. Deletes may resolve out of order; the mutex makes each
// mutation independent and safe.
type Board struct {
	store   store.Store
	confirm ui.Confirmer
	notify  ui.Notifier
	log     logging.Logger

	mu   sync.Mutex
	byID map[string]models.Order
	ids  []string
}

func New(st store.Store, confirm ui.Confirmer, notify ui.Notifier, log logging.Logger) *Board {
	return &Board{
		store:   st,
		confirm: confirm,
		notify:  notify,
		log:     log,
		byID:    make(map[string]models.Order),
	}
}

// Load fetches the full order snapshot and replaces the local collection
// wholesale. There is no incremental merge. On store failure the prior
// collection is kept untouched (empty on first load) and the failure is
// diagnostic-logged only; the returned error exists for callers that want
// it and may be ignored.
func (b *Board) Load(ctx context.Context) error {
	orders, err := b.store.QueryOrders(ctx)
	if err != nil {
		b.log.Error(ctx, "failed to load orders", "error", err)
		return fmt.Errorf("load orders: %w", err)
	}

	b.replace(orders)
	b.log.Info(ctx, "orders loaded", "count", len(orders))
	return nil
}

// RequestDelete drives the delete-confirmation protocol for one order:
//
//  1. An id not on the board is surfaced as a warning, not silently ignored.
//  2. The operator must confirm through the modal prompt; declining or
//     dismissing leaves local and remote state untouched.
//  3. Only a confirmed request reaches the remote store. Remote success
//     removes the order locally and announces it; remote failure leaves the
//     local collection unchanged, because the remote state is then unknown,
//     and tells the operator to try again. Error kinds differ only in the
//     message shown, never in the reconciliation behavior.
func (b *Board) RequestDelete(ctx context.Context, id string) error {
	if _, ok := b.Get(id); !ok {
		b.notify.Warn("Not found", "No order with that id is on the board.")
		return nil
	}

	confirmed, err := b.confirm.Confirm(ctx, "Are you sure?", "You won't be able to recover this order!")
	if err != nil {
		b.log.Error(ctx, "confirmation prompt failed", "id", id, "error", err)
		return fmt.Errorf("confirm delete: %w", err)
	}
	if !confirmed {
		return nil
	}

	if err := b.store.DeleteOrder(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			b.notify.Warn("Not deleted", "The remote store has no such order. Refresh to reconcile.")
		} else {
			b.notify.Error("Error", "Failed to delete the order. Try again!")
		}
		b.log.Error(ctx, "remote delete failed", "id", id, "error", err)
		return fmt.Errorf("delete order %s: %w", id, err)
	}

	b.remove(id)
	b.notify.Success("Deleted!", "The order has been deleted.")
	b.log.Info(ctx, "order deleted", "id", id)
	return nil
}

// Orders returns the collection in fetch order.
func (b *Board) Orders() []models.Order {
	b.mu.Lock()
	defer b.mu.Unlock()

	result := make([]models.Order, 0, len(b.ids))
	for _, id := range b.ids {
		result = append(result, b.byID[id])
	}
	return result
}

// Get looks up one order by id.
func (b *Board) Get(id string) (models.Order, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	o, ok := b.byID[id]
	return o, ok
}

// Len reports the number of orders on the board.
func (b *Board) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.ids)
}

// Clear discards the local view, e.g. on logout. The remote store is
// untouched.
func (b *Board) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.byID = make(map[string]models.Order)
	b.ids = nil
}

func (b *Board) replace(orders []models.Order) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.byID = make(map[string]models.Order, len(orders))
	b.ids = make([]string, 0, len(orders))
	for _, o := range orders {
		if _, seen := b.byID[o.ID]; !seen {
			b.ids = append(b.ids, o.ID)
		}
		b.byID[o.ID] = o
	}
}

// remove takes one order off the board. Removing an id that is already gone
// (for example after a faster concurrent delete) reports false.
func (b *Board) remove(id string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.byID[id]; !ok {
		return false
	}
	delete(b.byID, id)
	for i, known := range b.ids {
		if known == id {
			b.ids = append(b.ids[:i], b.ids[i+1:]...)
			break
		}
	}
	return true
}
