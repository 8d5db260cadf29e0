package usecase

import (
	"context"
	"fmt"

	"surpriset-backend/internal/domain"
	"surpriset-backend/internal/store"
	"surpriset-backend/pkg/logger"
)

// BundleUsecase manages the custom bundle builder. A bundle is a store of
// single products with an item-count window that gates checkout; the window
// is a soft constraint, the builder itself accepts any intermediate state
// below the maximum.
type BundleUsecase struct {
	snapshots   store.SnapshotStore
	productRepo domain.ProductRepository
	constraint  store.Constraint
}

func NewBundleUsecase(snapshots store.SnapshotStore, productRepo domain.ProductRepository, constraint store.Constraint) *BundleUsecase {
	return &BundleUsecase{
		snapshots:   snapshots,
		productRepo: productRepo,
		constraint:  constraint,
	}
}

// BundleValidity tells the client where the bundle stands against the
// [min, max] window and how far it is from either edge.
type BundleValidity struct {
	IsValid  bool `json:"isValid"`
	MinItems int  `json:"minItems"`
	MaxItems int  `json:"maxItems"`
	Deficit  int  `json:"deficit"`
	Surplus  int  `json:"surplus"`
}

type BundleView struct {
	Items     []store.LineItem `json:"items"`
	Total     float64          `json:"total"`
	ItemCount int              `json:"itemCount"`
	Step      string           `json:"step"`
	Validity  BundleValidity   `json:"validity"`
}

func (uc *BundleUsecase) view(s *store.Store, step string) *BundleView {
	count := s.ItemCount()
	return &BundleView{
		Items:     s.Items(),
		Total:     s.Total(),
		ItemCount: count,
		Step:      step,
		Validity: BundleValidity{
			IsValid:  uc.constraint.Valid(count),
			MinItems: uc.constraint.MinItems,
			MaxItems: uc.constraint.MaxItems,
			Deficit:  uc.constraint.Deficit(count),
			Surplus:  uc.constraint.Surplus(count),
		},
	}
}

func (uc *BundleUsecase) load(ctx context.Context, sessionID string) (*store.Store, string) {
	data, found, err := uc.snapshots.Load(ctx, store.ScopeBundle, sessionID)
	if err != nil || !found {
		if err != nil {
			logger.WithContext(ctx).Warn().Err(err).Msg("bundle snapshot load failed, starting empty")
		}
		return store.New(), store.StepSelection
	}
	return store.Decode(data)
}

func (uc *BundleUsecase) save(ctx context.Context, sessionID string, s *store.Store, step string) error {
	data, err := store.Encode(s, step)
	if err != nil {
		return fmt.Errorf("encode bundle: %w", err)
	}
	return uc.snapshots.Save(ctx, store.ScopeBundle, sessionID, data)
}

func (uc *BundleUsecase) GetBundle(ctx context.Context, sessionID string) (*BundleView, error) {
	s, step := uc.load(ctx, sessionID)
	return uc.view(s, step), nil
}

// AddItem adds quantity units of a catalog product to the bundle. Pre-built
// bundles cannot be nested, and an addition that would exceed the maximum is
// dropped silently; the returned view carries the unchanged state.
func (uc *BundleUsecase) AddItem(ctx context.Context, sessionID, productID string, quantity int) (*BundleView, error) {
	product, err := uc.productRepo.GetProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product.Type == domain.ProductTypeBundle {
		return nil, ErrBundleItemForbidden
	}
	if product.Status != domain.ProductStatusInStock {
		return nil, fmt.Errorf("%w: %s", ErrProductUnavailable, product.Status)
	}

	s, step := uc.load(ctx, sessionID)

	if quantity < 1 {
		quantity = 1
	}
	if !uc.constraint.CanAdd(s.ItemCount(), quantity) {
		return uc.view(s, step), nil
	}

	image := ""
	if len(product.Images) > 0 {
		image = product.Images[0]
	}
	s.AddItem(store.ItemSnapshot{
		ProductID: product.ID,
		SKU:       product.SKU,
		Name:      product.Name,
		ImageURL:  image,
		UnitPrice: product.Price,
		Type:      product.Type,
	}, quantity)

	if err := uc.save(ctx, sessionID, s, step); err != nil {
		return nil, err
	}
	return uc.view(s, step), nil
}

func (uc *BundleUsecase) UpdateQuantity(ctx context.Context, sessionID, productID string, quantity int) (*BundleView, error) {
	s, step := uc.load(ctx, sessionID)

	if line, ok := s.Get(productID); ok {
		delta := quantity - line.Quantity
		if delta > 0 && !uc.constraint.CanAdd(s.ItemCount(), delta) {
			return uc.view(s, step), nil
		}
	}
	s.UpdateQuantity(productID, quantity)

	if err := uc.save(ctx, sessionID, s, step); err != nil {
		return nil, err
	}
	return uc.view(s, step), nil
}

func (uc *BundleUsecase) RemoveItem(ctx context.Context, sessionID, productID string) (*BundleView, error) {
	s, step := uc.load(ctx, sessionID)
	s.RemoveItem(productID)

	if err := uc.save(ctx, sessionID, s, step); err != nil {
		return nil, err
	}
	return uc.view(s, step), nil
}

// SetStep moves the builder to another step marker.
func (uc *BundleUsecase) SetStep(ctx context.Context, sessionID, step string) (*BundleView, error) {
	switch step {
	case store.StepSelection, store.StepReview, store.StepCheckout:
	default:
		return nil, fmt.Errorf("%w: unknown step %q", ErrValidation, step)
	}

	s, _ := uc.load(ctx, sessionID)
	if err := uc.save(ctx, sessionID, s, step); err != nil {
		return nil, err
	}
	return uc.view(s, step), nil
}

func (uc *BundleUsecase) Clear(ctx context.Context, sessionID string) error {
	return uc.snapshots.Delete(ctx, store.ScopeBundle, sessionID)
}
