package shop

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"ecofinds/client"
	"ecofinds/model"
)

// PurchaseAPI is the slice of the REST client checkout needs.
type PurchaseAPI interface {
	Purchase(ctx context.Context, itemID string) (int, error)
	Me(ctx context.Context) (*model.User, error)
}

// CheckoutFailure reports one cart entry that could not be purchased. The
// entry stays in the cart so the user can retry or remove it.
type CheckoutFailure struct {
	Item model.Item
	Err  error
}

// CheckoutResult is the outcome of one checkout walk. Order is nil when
// nothing was purchased. EcoPointsEarned is for display; the authoritative
// balance is the re-fetched user.
type CheckoutResult struct {
	Order           *model.Order
	EcoPointsEarned int
	Failures        []CheckoutFailure
}

// CheckoutCoordinator converts a cart snapshot into an order, one purchase
// call per entry. Checkout is not transactional across the cart: each
// purchase succeeds or fails on its own and committed purchases are never
// rolled back.
type CheckoutCoordinator struct {
	api    PurchaseAPI
	cart   *Cart
	ledger *TransactionLedger
	logger *slog.Logger
}

func NewCheckoutCoordinator(api PurchaseAPI, cart *Cart, ledger *TransactionLedger, logger *slog.Logger) *CheckoutCoordinator {
	if logger == nil {
		logger = slog.Default()
	}
	return &CheckoutCoordinator{api: api, cart: cart, ledger: ledger, logger: logger}
}

// Checkout attempts every entry in the current cart snapshot. Entries that
// fail with ErrItemUnavailable are reported in the failure list and kept
// in the cart; successful entries leave the cart and join the order. An
// authorization or transport error stops the walk and is returned next to
// the partial result. After at least one success the current user and the
// ledger are refreshed, strictly after the purchase calls have completed.
func (c *CheckoutCoordinator) Checkout(ctx context.Context) (*CheckoutResult, error) {
	snapshot := c.cart.Items()
	result := &CheckoutResult{}

	var purchased []model.Item
	var abortErr error
	for _, item := range snapshot {
		points, err := c.api.Purchase(ctx, item.ID)
		if err != nil {
			if errors.Is(err, client.ErrItemUnavailable) {
				result.Failures = append(result.Failures, CheckoutFailure{Item: item, Err: err})
				continue
			}
			abortErr = err
			break
		}
		purchased = append(purchased, item)
		result.EcoPointsEarned += points
		c.cart.Remove(item.ID)
	}

	if len(purchased) > 0 {
		order := &model.Order{
			Items:           purchased,
			EcoPointsEarned: result.EcoPointsEarned,
			CreatedAt:       time.Now(),
		}
		for _, item := range purchased {
			order.Total = order.Total.Add(item.Price)
		}
		result.Order = order
		c.refresh(ctx)
	}

	return result, abortErr
}

// refresh re-derives the server-owned state a purchase changes: the user's
// point balance and the transaction history. The two fetches have no
// ordering dependency between each other.
func (c *CheckoutCoordinator) refresh(ctx context.Context) {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		_, err := c.api.Me(gctx)
		return err
	})
	g.Go(func() error {
		_, err := c.ledger.Refresh(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		c.logger.Warn("post-checkout refresh failed", "error", err)
	}
}
