package board

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"orderdeck/internal/logging"
	"orderdeck/internal/models"
	"orderdeck/internal/store"
)

type fakeStore struct {
	mu          sync.Mutex
	queryResult []models.Order
	queryErr    error
	queryCalls  int

	deleteErr   error
	deleteFn    func(ctx context.Context, id string) error
	deletedIDs  []string
	deleteCalls int
}

func (f *fakeStore) QueryOrders(ctx context.Context) ([]models.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queryCalls++
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	return append([]models.Order(nil), f.queryResult...), nil
}

func (f *fakeStore) DeleteOrder(ctx context.Context, id string) error {
	f.mu.Lock()
	f.deleteCalls++
	f.mu.Unlock()

	if f.deleteFn != nil {
		if err := f.deleteFn(ctx, id); err != nil {
			return err
		}
	} else if f.deleteErr != nil {
		return f.deleteErr
	}

	f.mu.Lock()
	f.deletedIDs = append(f.deletedIDs, id)
	f.mu.Unlock()
	return nil
}

type fakeConfirmer struct {
	mu     sync.Mutex
	answer bool
	err    error
	calls  int
	titles []string
}

func (f *fakeConfirmer) Confirm(_ context.Context, title, _ string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.titles = append(f.titles, title)
	return f.answer, f.err
}

type fakeNotifier struct {
	mu        sync.Mutex
	successes []string
	warnings  []string
	errors    []string
}

func (f *fakeNotifier) Success(title, text string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.successes = append(f.successes, text)
}

func (f *fakeNotifier) Warn(title, text string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.warnings = append(f.warnings, text)
}

func (f *fakeNotifier) Error(title, text string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errors = append(f.errors, text)
}

func order(id, name, status string) models.Order {
	return models.Order{ID: id, CustomerName: name, Status: status, OrderDate: time.Now()}
}

func ids(orders []models.Order) []string {
	result := make([]string, 0, len(orders))
	for _, o := range orders {
		result = append(result, o.ID)
	}
	return result
}

func newBoard(st store.Store, confirm *fakeConfirmer, notify *fakeNotifier) *Board {
	return New(st, confirm, notify, logging.NewDefault(io.Discard))
}

func TestLoad_ReplacesCollectionWholesale(t *testing.T) {
	st := &fakeStore{queryResult: []models.Order{order("a", "Ada", "Pending"), order("b", "Bob", "Completed")}}
	b := newBoard(st, &fakeConfirmer{}, &fakeNotifier{})
	ctx := context.Background()

	require.NoError(t, b.Load(ctx))
	require.Equal(t, []string{"a", "b"}, ids(b.Orders()))

	st.mu.Lock()
	st.queryResult = []models.Order{order("c", "Cyd", "Shipped")}
	st.mu.Unlock()

	require.NoError(t, b.Load(ctx))
	require.Equal(t, []string{"c"}, ids(b.Orders()), "each load is a full snapshot, no merge")
}

func TestLoad_FailureKeepsPriorCollection(t *testing.T) {
	st := &fakeStore{queryResult: []models.Order{order("a", "Ada", "Pending")}}
	notify := &fakeNotifier{}
	b := newBoard(st, &fakeConfirmer{}, notify)
	ctx := context.Background()

	require.NoError(t, b.Load(ctx))

	st.mu.Lock()
	st.queryErr = store.ErrUnavailable
	st.mu.Unlock()

	require.Error(t, b.Load(ctx))
	require.Equal(t, []string{"a"}, ids(b.Orders()), "prior collection kept on failure")
	require.Empty(t, notify.errors, "load failures are diagnostic-log only")
}

func TestLoad_FirstFailureLeavesBoardEmpty(t *testing.T) {
	st := &fakeStore{queryErr: store.ErrUnavailable}
	b := newBoard(st, &fakeConfirmer{}, &fakeNotifier{})

	require.Error(t, b.Load(context.Background()))
	require.Zero(t, b.Len())
}

func TestRequestDelete_ConfirmedSuccess(t *testing.T) {
	st := &fakeStore{queryResult: []models.Order{order("a", "Ada", "Pending"), order("b", "Bob", "Completed"), order("c", "Cyd", "Shipped")}}
	confirm := &fakeConfirmer{answer: true}
	notify := &fakeNotifier{}
	b := newBoard(st, confirm, notify)
	ctx := context.Background()

	require.NoError(t, b.Load(ctx))
	require.NoError(t, b.RequestDelete(ctx, "b"))

	require.Equal(t, 2, b.Len())
	_, ok := b.Get("b")
	require.False(t, ok)
	require.Equal(t, []string{"b"}, st.deletedIDs)
	require.Len(t, notify.successes, 1)
	require.Equal(t, 1, confirm.calls)
}

func TestRequestDelete_RemoteFailureLeavesCollection(t *testing.T) {
	st := &fakeStore{
		queryResult: []models.Order{order("a", "Ada", "Pending"), order("b", "Bob", "Completed")},
		deleteErr:   store.ErrUnavailable,
	}
	notify := &fakeNotifier{}
	b := newBoard(st, &fakeConfirmer{answer: true}, notify)
	ctx := context.Background()

	require.NoError(t, b.Load(ctx))
	require.Error(t, b.RequestDelete(ctx, "b"))

	require.Equal(t, 2, b.Len(), "collection unchanged on remote failure")
	_, ok := b.Get("b")
	require.True(t, ok)
	require.Len(t, notify.errors, 1)
	require.Contains(t, notify.errors[0], "Try again")
	require.Empty(t, notify.successes)
}

func TestRequestDelete_RemoteNotFoundIsDistinguishedInMessageOnly(t *testing.T) {
	st := &fakeStore{
		queryResult: []models.Order{order("a", "Ada", "Pending")},
		deleteErr:   store.ErrNotFound,
	}
	notify := &fakeNotifier{}
	b := newBoard(st, &fakeConfirmer{answer: true}, notify)
	ctx := context.Background()

	require.NoError(t, b.Load(ctx))
	require.Error(t, b.RequestDelete(ctx, "a"))

	require.Equal(t, 1, b.Len(), "reconciliation behavior identical for all failure kinds")
	require.Len(t, notify.warnings, 1)
	require.Contains(t, notify.warnings[0], "Refresh")
	require.Empty(t, notify.errors)
}

func TestRequestDelete_DeclinedIsANoOp(t *testing.T) {
	st := &fakeStore{queryResult: []models.Order{order("a", "Ada", "Pending")}}
	confirm := &fakeConfirmer{answer: false}
	notify := &fakeNotifier{}
	b := newBoard(st, confirm, notify)
	ctx := context.Background()

	require.NoError(t, b.Load(ctx))
	require.NoError(t, b.RequestDelete(ctx, "a"))

	require.Zero(t, st.deleteCalls, "declining must never invoke the remote delete")
	require.Equal(t, 1, b.Len())
	require.Empty(t, notify.successes)
	require.Empty(t, notify.errors)
}

func TestRequestDelete_UnknownIDWarnsWithoutRemoteCall(t *testing.T) {
	st := &fakeStore{queryResult: []models.Order{order("a", "Ada", "Pending")}}
	notify := &fakeNotifier{}
	confirm := &fakeConfirmer{answer: true}
	b := newBoard(st, confirm, notify)
	ctx := context.Background()

	require.NoError(t, b.Load(ctx))
	require.NoError(t, b.RequestDelete(ctx, "ghost"))

	require.Zero(t, confirm.calls, "no prompt for an id that is not on the board")
	require.Zero(t, st.deleteCalls)
	require.Len(t, notify.warnings, 1)
}

func TestRequestDelete_ConfirmerErrorAbortsBeforeRemoteCall(t *testing.T) {
	st := &fakeStore{queryResult: []models.Order{order("a", "Ada", "Pending")}}
	b := newBoard(st, &fakeConfirmer{err: errors.New("prompt torn down")}, &fakeNotifier{})
	ctx := context.Background()

	require.NoError(t, b.Load(ctx))
	require.Error(t, b.RequestDelete(ctx, "a"))
	require.Zero(t, st.deleteCalls)
	require.Equal(t, 1, b.Len())
}

func TestRequestDelete_StatusScenario(t *testing.T) {
	st := &fakeStore{queryResult: []models.Order{
		order("A", "Ada", "Pending"),
		order("B", "Bob", "Completed"),
		order("C", "Cyd", "Shipped"),
	}}
	b := newBoard(st, &fakeConfirmer{answer: true}, &fakeNotifier{})
	ctx := context.Background()

	require.NoError(t, b.Load(ctx))
	require.NoError(t, b.RequestDelete(ctx, "B"))

	remaining := b.Orders()
	require.Equal(t, []string{"A", "C"}, ids(remaining), "original relative order preserved")
	require.Equal(t, ToneAmber, StatusTone(remaining[0].Status))
	require.Equal(t, ToneRed, StatusTone(remaining[1].Status), "unrecognized status takes the default treatment")
}

func TestRequestDelete_ConcurrentDeletesResolveOutOfOrder(t *testing.T) {
	st := &fakeStore{queryResult: []models.Order{order("a", "Ada", "Pending"), order("b", "Bob", "Completed"), order("c", "Cyd", "Shipped")}}

	releaseA := make(chan struct{})
	releaseB := make(chan struct{})
	st.deleteFn = func(_ context.Context, id string) error {
		switch id {
		case "a":
			<-releaseA
		case "b":
			<-releaseB
		}
		return nil
	}

	b := newBoard(st, &fakeConfirmer{answer: true}, &fakeNotifier{})
	ctx := context.Background()
	require.NoError(t, b.Load(ctx))

	errs := make(chan error, 2)
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		errs <- b.RequestDelete(ctx, "a")
	}()
	go func() {
		defer wg.Done()
		errs <- b.RequestDelete(ctx, "b")
	}()

	// The delete issued second resolves first.
	close(releaseB)
	close(releaseA)
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	require.Equal(t, []string{"c"}, ids(b.Orders()), "both ids removed regardless of resolution order")
}

func TestClear_DiscardsLocalViewOnly(t *testing.T) {
	st := &fakeStore{queryResult: []models.Order{order("a", "Ada", "Pending")}}
	b := newBoard(st, &fakeConfirmer{}, &fakeNotifier{})
	ctx := context.Background()

	require.NoError(t, b.Load(ctx))
	b.Clear()

	require.Zero(t, b.Len())
	require.Zero(t, st.deleteCalls, "clearing the view never touches the remote store")
}
