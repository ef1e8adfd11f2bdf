package shop

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/shopspring/decimal"

	"ecofinds/client"
	"ecofinds/model"
)

// fakeCheckoutAPI implements PurchaseAPI and TransactionAPI, recording the
// order of calls so refresh sequencing can be asserted.
type fakeCheckoutAPI struct {
	mu     sync.Mutex
	events []string

	purchaseErrs   map[string]error
	purchasePoints map[string]int
}

func newFakeCheckoutAPI() *fakeCheckoutAPI {
	return &fakeCheckoutAPI{
		purchaseErrs:   map[string]error{},
		purchasePoints: map[string]int{},
	}
}

func (f *fakeCheckoutAPI) record(event string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, event)
}

func (f *fakeCheckoutAPI) Purchase(ctx context.Context, itemID string) (int, error) {
	f.record("purchase:" + itemID)
	if err := f.purchaseErrs[itemID]; err != nil {
		return 0, err
	}
	return f.purchasePoints[itemID], nil
}

func (f *fakeCheckoutAPI) Me(ctx context.Context) (*model.User, error) {
	f.record("me")
	return &model.User{ID: "buyer"}, nil
}

func (f *fakeCheckoutAPI) Transactions(ctx context.Context) ([]model.Transaction, error) {
	f.record("transactions")
	return []model.Transaction{{ID: "t1"}}, nil
}

func (f *fakeCheckoutAPI) eventIndex(event string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, e := range f.events {
		if e == event {
			return i
		}
	}
	return -1
}

func TestCheckout_partialFailureKeepsItemInCart(t *testing.T) {
	t.Parallel()

	api := newFakeCheckoutAPI()
	api.purchasePoints["a"] = 15
	api.purchaseErrs["b"] = client.ErrItemUnavailable

	cart := NewCart()
	a := testItem("a", "599.99")
	b := testItem("b", "89.99")
	cart.Add(a)
	cart.Add(b)

	co := NewCheckoutCoordinator(api, cart, NewTransactionLedger(api), nil)
	result, err := co.Checkout(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	items := cart.Items()
	if len(items) != 1 || items[0].ID != "b" {
		t.Fatalf("cart = %v, want only b", items)
	}
	if result.Order == nil {
		t.Fatal("Order is nil")
	}
	if len(result.Order.Items) != 1 || result.Order.Items[0].ID != "a" {
		t.Errorf("Order.Items = %v, want only a", result.Order.Items)
	}
	if !result.Order.Total.Equal(a.Price) {
		t.Errorf("Order.Total = %s, want %s", result.Order.Total, a.Price)
	}
	if result.EcoPointsEarned != 15 {
		t.Errorf("EcoPointsEarned = %d, want 15", result.EcoPointsEarned)
	}
	if len(result.Failures) != 1 || result.Failures[0].Item.ID != "b" {
		t.Errorf("Failures = %v, want entry for b", result.Failures)
	}
	if !errors.Is(result.Failures[0].Err, client.ErrItemUnavailable) {
		t.Errorf("failure error = %v, want ErrItemUnavailable", result.Failures[0].Err)
	}
}

func TestCheckout_fullSuccessClearsCart(t *testing.T) {
	t.Parallel()

	api := newFakeCheckoutAPI()
	api.purchasePoints["a"] = 10
	api.purchasePoints["b"] = 12

	cart := NewCart()
	cart.Add(testItem("a", "35.00"))
	cart.Add(testItem("b", "120.00"))

	co := NewCheckoutCoordinator(api, cart, NewTransactionLedger(api), nil)
	result, err := co.Checkout(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := cart.Len(); got != 0 {
		t.Errorf("cart Len = %d, want 0", got)
	}
	want := decimal.RequireFromString("155.00")
	if !result.Order.Total.Equal(want) {
		t.Errorf("Order.Total = %s, want %s", result.Order.Total, want)
	}
	if result.EcoPointsEarned != 22 {
		t.Errorf("EcoPointsEarned = %d, want 22", result.EcoPointsEarned)
	}
	if len(result.Failures) != 0 {
		t.Errorf("Failures = %v, want none", result.Failures)
	}
}

func TestCheckout_refreshRunsAfterPurchases(t *testing.T) {
	t.Parallel()

	api := newFakeCheckoutAPI()
	api.purchasePoints["a"] = 5
	api.purchasePoints["b"] = 5

	cart := NewCart()
	cart.Add(testItem("a", "10.00"))
	cart.Add(testItem("b", "20.00"))

	ledger := NewTransactionLedger(api)
	co := NewCheckoutCoordinator(api, cart, ledger, nil)
	if _, err := co.Checkout(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lastPurchase := api.eventIndex("purchase:b")
	for _, refresh := range []string{"me", "transactions"} {
		idx := api.eventIndex(refresh)
		if idx == -1 {
			t.Fatalf("%s was never called", refresh)
		}
		if idx < lastPurchase {
			t.Errorf("%s (index %d) ran before the last purchase (index %d)", refresh, idx, lastPurchase)
		}
	}
	if len(ledger.Transactions()) != 1 {
		t.Errorf("ledger not refreshed, has %d transactions", len(ledger.Transactions()))
	}
}

func TestCheckout_transportErrorStopsWalk(t *testing.T) {
	t.Parallel()

	transportErr := errors.New("connection reset")
	api := newFakeCheckoutAPI()
	api.purchasePoints["a"] = 5
	api.purchaseErrs["b"] = transportErr
	api.purchasePoints["c"] = 5

	cart := NewCart()
	cart.Add(testItem("a", "10.00"))
	cart.Add(testItem("b", "20.00"))
	cart.Add(testItem("c", "30.00"))

	co := NewCheckoutCoordinator(api, cart, NewTransactionLedger(api), nil)
	result, err := co.Checkout(context.Background())
	if !errors.Is(err, transportErr) {
		t.Fatalf("error = %v, want the transport error", err)
	}

	// a was committed before the failure and is never rolled back.
	if result.Order == nil || len(result.Order.Items) != 1 || result.Order.Items[0].ID != "a" {
		t.Errorf("Order = %+v, want only a", result.Order)
	}
	if api.eventIndex("purchase:c") != -1 {
		t.Error("purchase of c was issued after a transport error")
	}
	items := cart.Items()
	if len(items) != 2 || items[0].ID != "b" || items[1].ID != "c" {
		t.Errorf("cart = %v, want b and c kept", items)
	}
}

func TestCheckout_unauthorizedAbortsWithoutRefresh(t *testing.T) {
	t.Parallel()

	api := newFakeCheckoutAPI()
	api.purchaseErrs["a"] = client.ErrUnauthorized

	cart := NewCart()
	cart.Add(testItem("a", "10.00"))

	co := NewCheckoutCoordinator(api, cart, NewTransactionLedger(api), nil)
	result, err := co.Checkout(context.Background())
	if !errors.Is(err, client.ErrUnauthorized) {
		t.Fatalf("error = %v, want ErrUnauthorized", err)
	}
	if result.Order != nil {
		t.Errorf("Order = %+v, want nil", result.Order)
	}
	if api.eventIndex("me") != -1 || api.eventIndex("transactions") != -1 {
		t.Error("refresh ran although nothing was purchased")
	}
	if cart.Len() != 1 {
		t.Errorf("cart Len = %d, want 1", cart.Len())
	}
}

func TestCheckout_emptyCartIsNoop(t *testing.T) {
	t.Parallel()

	api := newFakeCheckoutAPI()
	co := NewCheckoutCoordinator(api, NewCart(), NewTransactionLedger(api), nil)

	result, err := co.Checkout(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Order != nil || len(result.Failures) != 0 {
		t.Errorf("result = %+v, want empty", result)
	}
}
