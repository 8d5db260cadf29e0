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

func newBundleUC(products ...*domain.Product) *BundleUsecase {
	return NewBundleUsecase(
		store.NewMemorySnapshots(time.Minute),
		newFakeProductRepo(products...),
		store.Constraint{MinItems: 5, MaxItems: 20},
	)
}

func TestBundleRejectsNestedBundles(t *testing.T) {
	ctx := context.Background()
	prebuilt := catalogProduct("b1", 2500)
	prebuilt.Type = domain.ProductTypeBundle
	uc := newBundleUC(prebuilt)

	_, err := uc.AddItem(ctx, "sess", "b1", 1)
	assert.ErrorIs(t, err, ErrBundleItemForbidden)
}

func TestBundleValidityWindow(t *testing.T) {
	ctx := context.Background()
	uc := newBundleUC(catalogProduct("p1", 100))

	bundle, err := uc.AddItem(ctx, "sess", "p1", 4)
	require.NoError(t, err)
	assert.False(t, bundle.Validity.IsValid)
	assert.Equal(t, 1, bundle.Validity.Deficit)

	bundle, err = uc.AddItem(ctx, "sess", "p1", 1)
	require.NoError(t, err)
	assert.True(t, bundle.Validity.IsValid)
	assert.Equal(t, 0, bundle.Validity.Deficit)
	assert.Equal(t, 5, bundle.ItemCount)
}

func TestBundleAddPastMaxIsNoOp(t *testing.T) {
	ctx := context.Background()
	uc := newBundleUC(catalogProduct("p1", 100), catalogProduct("p2", 50))

	_, err := uc.AddItem(ctx, "sess", "p1", 20)
	require.NoError(t, err)

	// 20 units already; one more would breach the maximum. State unchanged.
	bundle, err := uc.AddItem(ctx, "sess", "p2", 1)
	require.NoError(t, err)
	assert.Equal(t, 20, bundle.ItemCount)
	assert.Len(t, bundle.Items, 1)
	assert.True(t, bundle.Validity.IsValid)
}

func TestBundleUpdatePastMaxIsNoOp(t *testing.T) {
	ctx := context.Background()
	uc := newBundleUC(catalogProduct("p1", 100))

	_, err := uc.AddItem(ctx, "sess", "p1", 18)
	require.NoError(t, err)

	bundle, err := uc.UpdateQuantity(ctx, "sess", "p1", 25)
	require.NoError(t, err)
	assert.Equal(t, 18, bundle.ItemCount)

	bundle, err = uc.UpdateQuantity(ctx, "sess", "p1", 20)
	require.NoError(t, err)
	assert.Equal(t, 20, bundle.ItemCount)
}

func TestBundleStepPersists(t *testing.T) {
	ctx := context.Background()
	uc := newBundleUC(catalogProduct("p1", 100))

	_, err := uc.AddItem(ctx, "sess", "p1", 5)
	require.NoError(t, err)

	bundle, err := uc.SetStep(ctx, "sess", store.StepReview)
	require.NoError(t, err)
	assert.Equal(t, store.StepReview, bundle.Step)

	// Step survives a reload.
	bundle, err = uc.GetBundle(ctx, "sess")
	require.NoError(t, err)
	assert.Equal(t, store.StepReview, bundle.Step)

	_, err = uc.SetStep(ctx, "sess", "shipping")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestBundleClear(t *testing.T) {
	ctx := context.Background()
	uc := newBundleUC(catalogProduct("p1", 100))

	_, err := uc.AddItem(ctx, "sess", "p1", 7)
	require.NoError(t, err)
	require.NoError(t, uc.Clear(ctx, "sess"))

	bundle, err := uc.GetBundle(ctx, "sess")
	require.NoError(t, err)
	assert.Empty(t, bundle.Items)
	assert.Equal(t, store.StepSelection, bundle.Step)
}
