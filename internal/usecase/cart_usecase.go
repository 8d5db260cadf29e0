package usecase

import (
	"context"
	"fmt"

	"surpriset-backend/internal/domain"
	"surpriset-backend/internal/store"
	"surpriset-backend/pkg/logger"
)

// CartUsecase manages the per-session shopping cart. Cart state lives in the
// snapshot store; derived totals are recomputed on every load and mutation.
type CartUsecase struct {
	snapshots   store.SnapshotStore
	productRepo domain.ProductRepository
	maxQuantity int
}

func NewCartUsecase(snapshots store.SnapshotStore, productRepo domain.ProductRepository, maxQuantity int) *CartUsecase {
	return &CartUsecase{
		snapshots:   snapshots,
		productRepo: productRepo,
		maxQuantity: maxQuantity,
	}
}

// CartView is the serialized cart returned to the client. Totals are the
// store's derived values; clients never compute them.
type CartView struct {
	Items     []store.LineItem `json:"items"`
	Total     float64          `json:"total"`
	ItemCount int              `json:"itemCount"`
}

func cartView(s *store.Store) *CartView {
	return &CartView{
		Items:     s.Items(),
		Total:     s.Total(),
		ItemCount: s.ItemCount(),
	}
}

func (uc *CartUsecase) load(ctx context.Context, sessionID string) *store.Store {
	data, found, err := uc.snapshots.Load(ctx, store.ScopeCart, sessionID)
	if err != nil || !found {
		if err != nil {
			logger.WithContext(ctx).Warn().Err(err).Msg("cart snapshot load failed, starting empty")
		}
		return store.New()
	}
	s, _ := store.Decode(data)
	return s
}

func (uc *CartUsecase) save(ctx context.Context, sessionID string, s *store.Store) error {
	data, err := store.Encode(s, "")
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	return uc.snapshots.Save(ctx, store.ScopeCart, sessionID, data)
}

func (uc *CartUsecase) GetCart(ctx context.Context, sessionID string) (*CartView, error) {
	return cartView(uc.load(ctx, sessionID)), nil
}

// AddItem adds quantity units of the product, snapshotting its current price
// and display fields. Only purchasable products can enter a cart.
func (uc *CartUsecase) AddItem(ctx context.Context, sessionID, productID string, quantity int) (*CartView, error) {
	product, err := uc.productRepo.GetProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product.Status != domain.ProductStatusInStock {
		return nil, fmt.Errorf("%w: %s", ErrProductUnavailable, product.Status)
	}

	s := uc.load(ctx, sessionID)

	if quantity < 1 {
		quantity = 1
	}
	if line, ok := s.Get(productID); ok && line.Quantity+quantity > uc.maxQuantity {
		quantity = uc.maxQuantity - line.Quantity
		if quantity <= 0 {
			return cartView(s), nil
		}
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

	if err := uc.save(ctx, sessionID, s); err != nil {
		return nil, err
	}
	return cartView(s), nil
}

// UpdateQuantity sets an absolute quantity; below 1 removes the line.
func (uc *CartUsecase) UpdateQuantity(ctx context.Context, sessionID, productID string, quantity int) (*CartView, error) {
	s := uc.load(ctx, sessionID)

	if quantity > uc.maxQuantity {
		quantity = uc.maxQuantity
	}
	s.UpdateQuantity(productID, quantity)

	if err := uc.save(ctx, sessionID, s); err != nil {
		return nil, err
	}
	return cartView(s), nil
}

func (uc *CartUsecase) RemoveItem(ctx context.Context, sessionID, productID string) (*CartView, error) {
	s := uc.load(ctx, sessionID)
	s.RemoveItem(productID)

	if err := uc.save(ctx, sessionID, s); err != nil {
		return nil, err
	}
	return cartView(s), nil
}

func (uc *CartUsecase) Clear(ctx context.Context, sessionID string) error {
	return uc.snapshots.Delete(ctx, store.ScopeCart, sessionID)
}
