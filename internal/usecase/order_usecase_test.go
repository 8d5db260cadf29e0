package usecase

import (
	"context"
	"testing"
	"time"

	"surpriset-backend/internal/domain"
	"surpriset-backend/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type orderFixture struct {
	uc        *OrderUsecase
	cartUC    *CartUsecase
	bundleUC  *BundleUsecase
	orderRepo *fakeOrderRepo
	snapshots store.SnapshotStore
}

func newOrderFixture(t *testing.T, products ...*domain.Product) *orderFixture {
	t.Helper()
	snapshots := store.NewMemorySnapshots(time.Minute)
	productRepo := newFakeProductRepo(products...)
	orderRepo := newFakeOrderRepo()
	contentRepo := newFakeContentRepo(
		&domain.Packaging{ID: "pack-1", Name: "Gift Box", Price: 300, IsActive: true},
		&domain.Packaging{ID: "pack-off", Name: "Retired Box", Price: 100, IsActive: false},
	)
	constraint := store.Constraint{MinItems: 5, MaxItems: 20}

	return &orderFixture{
		uc: NewOrderUsecase(
			orderRepo, productRepo, contentRepo, snapshots, fakeTxManager{},
			2000, 0, constraint,
		),
		cartUC:    NewCartUsecase(snapshots, productRepo, 99),
		bundleUC:  NewBundleUsecase(snapshots, productRepo, constraint),
		orderRepo: orderRepo,
		snapshots: snapshots,
	}
}

func checkoutReq(source string) CheckoutRequest {
	return CheckoutRequest{
		Source:        source,
		CustomerName:  "Anna",
		CustomerPhone: "+79990001122",
	}
}

func TestCheckoutEmptyCart(t *testing.T) {
	fx := newOrderFixture(t)
	_, err := fx.uc.Checkout(context.Background(), "sess", checkoutReq("cart"))
	assert.ErrorIs(t, err, ErrEmptyStore)
}

func TestCheckoutMinOrderGate(t *testing.T) {
	ctx := context.Background()
	fx := newOrderFixture(t, catalogProduct("p1", 500))

	_, err := fx.cartUC.AddItem(ctx, "sess", "p1", 3)
	require.NoError(t, err)

	// 1500 < 2000
	_, err = fx.uc.Checkout(ctx, "sess", checkoutReq("cart"))
	assert.ErrorIs(t, err, ErrMinOrderAmount)

	_, err = fx.cartUC.AddItem(ctx, "sess", "p1", 1)
	require.NoError(t, err)

	order, err := fx.uc.Checkout(ctx, "sess", checkoutReq("cart"))
	require.NoError(t, err)
	assert.Equal(t, 2000.0, order.Total)
	assert.Equal(t, domain.OrderTypeRegular, order.Type)
	assert.Equal(t, domain.OrderStatusPending, order.Status)
}

func TestCheckoutPackagingPriceCountsTowardTotal(t *testing.T) {
	ctx := context.Background()
	fx := newOrderFixture(t, catalogProduct("p1", 1800))

	_, err := fx.cartUC.AddItem(ctx, "sess", "p1", 1)
	require.NoError(t, err)

	// 1800 alone misses the minimum; 1800 + 300 packaging clears it.
	req := checkoutReq("cart")
	packID := "pack-1"
	req.PackagingID = &packID

	order, err := fx.uc.Checkout(ctx, "sess", req)
	require.NoError(t, err)
	assert.Equal(t, 2100.0, order.Total)
	require.NotNil(t, order.PackagingID)
	assert.Equal(t, "pack-1", *order.PackagingID)
}

func TestCheckoutInactivePackagingRejected(t *testing.T) {
	ctx := context.Background()
	fx := newOrderFixture(t, catalogProduct("p1", 3000))

	_, err := fx.cartUC.AddItem(ctx, "sess", "p1", 1)
	require.NoError(t, err)

	req := checkoutReq("cart")
	packID := "pack-off"
	req.PackagingID = &packID

	_, err = fx.uc.Checkout(ctx, "sess", req)
	assert.ErrorIs(t, err, ErrProductUnavailable)
}

func TestCheckoutClearsSnapshot(t *testing.T) {
	ctx := context.Background()
	fx := newOrderFixture(t, catalogProduct("p1", 2500))

	_, err := fx.cartUC.AddItem(ctx, "sess", "p1", 1)
	require.NoError(t, err)

	_, err = fx.uc.Checkout(ctx, "sess", checkoutReq("cart"))
	require.NoError(t, err)

	cart, err := fx.cartUC.GetCart(ctx, "sess")
	require.NoError(t, err)
	assert.Empty(t, cart.Items)

	// A second checkout has nothing to consume.
	_, err = fx.uc.Checkout(ctx, "sess", checkoutReq("cart"))
	assert.ErrorIs(t, err, ErrEmptyStore)
}

func TestCheckoutBundleConstraint(t *testing.T) {
	ctx := context.Background()
	fx := newOrderFixture(t, catalogProduct("p1", 400))

	_, err := fx.bundleUC.AddItem(ctx, "sess", "p1", 4)
	require.NoError(t, err)

	// 4 items is under the minimum of 5.
	_, err = fx.uc.Checkout(ctx, "sess", checkoutReq("bundle"))
	assert.ErrorIs(t, err, ErrBundleConstraint)

	_, err = fx.bundleUC.AddItem(ctx, "sess", "p1", 1)
	require.NoError(t, err)

	order, err := fx.uc.Checkout(ctx, "sess", checkoutReq("bundle"))
	require.NoError(t, err)
	assert.Equal(t, domain.OrderTypeCustomBundle, order.Type)
	assert.Equal(t, 2000.0, order.Total)
}

func TestCheckoutBundleSkipsMinOrderGate(t *testing.T) {
	ctx := context.Background()
	fx := newOrderFixture(t, catalogProduct("p1", 100))

	// 5 x 100 = 500, far below the regular minimum of 2000, but bundles are
	// gated by the item window instead.
	_, err := fx.bundleUC.AddItem(ctx, "sess", "p1", 5)
	require.NoError(t, err)

	order, err := fx.uc.Checkout(ctx, "sess", checkoutReq("bundle"))
	require.NoError(t, err)
	assert.Equal(t, 500.0, order.Total)
}

func TestCheckoutVerifiesLiveAvailability(t *testing.T) {
	ctx := context.Background()
	p := catalogProduct("p1", 2500)
	productRepo := newFakeProductRepo(p)
	snapshots := store.NewMemorySnapshots(time.Minute)
	cartUC := NewCartUsecase(snapshots, productRepo, 99)
	uc := NewOrderUsecase(
		newFakeOrderRepo(), productRepo, newFakeContentRepo(), snapshots, fakeTxManager{},
		2000, 0, store.Constraint{MinItems: 5, MaxItems: 20},
	)

	_, err := cartUC.AddItem(ctx, "sess", "p1", 1)
	require.NoError(t, err)

	// Product sells out between add and checkout.
	productRepo.products["p1"].Status = domain.ProductStatusOutOfStock

	_, err = uc.Checkout(ctx, "sess", checkoutReq("cart"))
	assert.ErrorIs(t, err, ErrProductUnavailable)
}

func TestOrderStatusForwardOnly(t *testing.T) {
	ctx := context.Background()
	fx := newOrderFixture(t, catalogProduct("p1", 2500))

	_, err := fx.cartUC.AddItem(ctx, "sess", "p1", 1)
	require.NoError(t, err)
	order, err := fx.uc.Checkout(ctx, "sess", checkoutReq("cart"))
	require.NoError(t, err)

	require.NoError(t, fx.uc.UpdateStatus(ctx, order.ID, domain.OrderStatusShipped))

	// Backwards move rejected.
	err = fx.uc.UpdateStatus(ctx, order.ID, domain.OrderStatusProcessing)
	assert.ErrorIs(t, err, ErrStatusTransition)

	// Cancellation is allowed from any non-terminal state.
	require.NoError(t, fx.uc.UpdateStatus(ctx, order.ID, domain.OrderStatusCancelled))

	// Terminal states accept nothing further.
	err = fx.uc.UpdateStatus(ctx, order.ID, domain.OrderStatusDelivered)
	assert.ErrorIs(t, err, ErrStatusTransition)

	err = fx.uc.UpdateStatus(ctx, order.ID, "misplaced")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCheckoutValidation(t *testing.T) {
	fx := newOrderFixture(t, catalogProduct("p1", 2500))
	ctx := context.Background()

	_, err := fx.uc.Checkout(ctx, "sess", CheckoutRequest{Source: "wishlist", CustomerName: "Anna", CustomerPhone: "x"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = fx.uc.Checkout(ctx, "sess", CheckoutRequest{Source: "cart", CustomerPhone: "x"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = fx.uc.Checkout(ctx, "sess", CheckoutRequest{Source: "cart", CustomerName: "Anna"})
	assert.ErrorIs(t, err, ErrValidation)
}
