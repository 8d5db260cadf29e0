package usecase

import (
	"context"
	"fmt"
	"time"

	"surpriset-backend/internal/domain"
	"surpriset-backend/internal/store"
	"surpriset-backend/pkg/logger"
	"surpriset-backend/pkg/utils"
)

// statusWeight orders the fulfilment pipeline. A status may only move
// forward, except that any non-delivered order can still be cancelled.
var statusWeight = map[string]int{
	domain.OrderStatusPending:    1,
	domain.OrderStatusProcessing: 2,
	domain.OrderStatusShipped:    3,
	domain.OrderStatusDelivered:  4,
	domain.OrderStatusCancelled:  5,
}

// OrderUsecase handles checkout and order management. Checkout consumes the
// session's cart or bundle snapshot inside a transaction, so the order row
// and the snapshot delete commit together.
type OrderUsecase struct {
	orderRepo   domain.OrderRepository
	productRepo domain.ProductRepository
	contentRepo domain.ContentRepository
	snapshots   store.SnapshotStore
	txManager   domain.TransactionManager

	minOrderAmount float64
	assemblyPrice  float64
	constraint     store.Constraint
}

func NewOrderUsecase(
	orderRepo domain.OrderRepository,
	productRepo domain.ProductRepository,
	contentRepo domain.ContentRepository,
	snapshots store.SnapshotStore,
	txManager domain.TransactionManager,
	minOrderAmount float64,
	assemblyPrice float64,
	constraint store.Constraint,
) *OrderUsecase {
	return &OrderUsecase{
		orderRepo:      orderRepo,
		productRepo:    productRepo,
		contentRepo:    contentRepo,
		snapshots:      snapshots,
		txManager:      txManager,
		minOrderAmount: minOrderAmount,
		assemblyPrice:  assemblyPrice,
		constraint:     constraint,
	}
}

type CheckoutRequest struct {
	Source          string  `json:"source"` // cart, bundle
	CustomerName    string  `json:"customerName"`
	CustomerEmail   string  `json:"customerEmail"`
	CustomerPhone   string  `json:"customerPhone"`
	CustomerAddress string  `json:"customerAddress"`
	PackagingID     *string `json:"packagingId"`
}

func (req *CheckoutRequest) validate() error {
	if req.Source != store.ScopeCart && req.Source != store.ScopeBundle {
		return fmt.Errorf("%w: source must be cart or bundle", ErrValidation)
	}
	if req.CustomerName == "" {
		return fmt.Errorf("%w: customer name is required", ErrValidation)
	}
	if req.CustomerPhone == "" && req.CustomerEmail == "" {
		return fmt.Errorf("%w: a phone or email contact is required", ErrValidation)
	}
	return nil
}

// Checkout turns the session's cart or bundle into an order. Line prices are
// the snapshots taken at add time; the live catalog is consulted only to
// confirm the products still exist and are purchasable.
func (uc *OrderUsecase) Checkout(ctx context.Context, sessionID string, req CheckoutRequest) (*domain.Order, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	data, found, err := uc.snapshots.Load(ctx, req.Source, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	if !found {
		return nil, ErrEmptyStore
	}

	s, _ := store.Decode(data)
	if s.Len() == 0 {
		return nil, ErrEmptyStore
	}

	if err := uc.verifyAvailability(ctx, s); err != nil {
		return nil, err
	}

	orderType := domain.OrderTypeRegular
	assembly := 0.0
	if req.Source == store.ScopeBundle {
		orderType = domain.OrderTypeCustomBundle
		assembly = uc.assemblyPrice
		if !uc.constraint.Valid(s.ItemCount()) {
			return nil, fmt.Errorf("%w: %d items, need between %d and %d",
				ErrBundleConstraint, s.ItemCount(), uc.constraint.MinItems, uc.constraint.MaxItems)
		}
	}

	total := s.Total() + assembly
	if req.PackagingID != nil && *req.PackagingID != "" {
		packaging, err := uc.contentRepo.GetPackagingByID(ctx, *req.PackagingID)
		if err != nil {
			return nil, err
		}
		if !packaging.IsActive {
			return nil, fmt.Errorf("%w: packaging %s", ErrProductUnavailable, packaging.ID)
		}
		total += packaging.Price
	} else {
		req.PackagingID = nil
	}

	if orderType == domain.OrderTypeRegular && total < uc.minOrderAmount {
		return nil, fmt.Errorf("%w: %.2f < %.2f", ErrMinOrderAmount, total, uc.minOrderAmount)
	}

	items := make([]domain.OrderItem, 0, s.Len())
	for _, line := range s.Items() {
		items = append(items, domain.OrderItem{
			ProductID: line.ProductID,
			SKU:       line.SKU,
			Name:      line.Name,
			Price:     line.UnitPrice,
			Quantity:  line.Quantity,
			Image:     line.ImageURL,
		})
	}

	now := time.Now()
	order := &domain.Order{
		ID:                   utils.GenerateUUID(),
		SessionID:            sessionID,
		CustomerName:         req.CustomerName,
		CustomerEmail:        req.CustomerEmail,
		CustomerPhone:        req.CustomerPhone,
		CustomerAddress:      req.CustomerAddress,
		Items:                items,
		Total:                total,
		Status:               domain.OrderStatusPending,
		Type:                 orderType,
		PackagingID:          req.PackagingID,
		AssemblyServicePrice: assembly,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	err = uc.txManager.Do(ctx, func(ctx context.Context) error {
		if err := uc.orderRepo.CreateOrder(ctx, order); err != nil {
			return fmt.Errorf("create order: %w", err)
		}
		return uc.snapshots.Delete(ctx, req.Source, sessionID)
	})
	if err != nil {
		return nil, err
	}

	logger.WithContext(ctx).Info().
		Str("order_id", order.ID).
		Str("type", order.Type).
		Float64("total", order.Total).
		Int("lines", len(order.Items)).
		Msg("order placed")
	return order, nil
}

func (uc *OrderUsecase) verifyAvailability(ctx context.Context, s *store.Store) error {
	lines := s.Items()
	ids := make([]string, 0, len(lines))
	for _, line := range lines {
		ids = append(ids, line.ProductID)
	}

	products, err := uc.productRepo.GetProductsByIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("verify products: %w", err)
	}

	byID := make(map[string]*domain.Product, len(products))
	for i := range products {
		byID[products[i].ID] = &products[i]
	}
	for _, line := range lines {
		p, ok := byID[line.ProductID]
		if !ok {
			return fmt.Errorf("%w: %s no longer exists", ErrProductUnavailable, line.Name)
		}
		if p.Status != domain.ProductStatusInStock {
			return fmt.Errorf("%w: %s", ErrProductUnavailable, p.Name)
		}
	}
	return nil
}

// GetMyOrders lists the session's order history, newest first.
func (uc *OrderUsecase) GetMyOrders(ctx context.Context, sessionID string) ([]domain.Order, error) {
	return uc.orderRepo.GetBySessionID(ctx, sessionID)
}

// --- Admin ---

func (uc *OrderUsecase) GetOrders(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, *domain.Pagination, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Page < 1 {
		filter.Page = 1
	}

	orders, total, err := uc.orderRepo.GetAll(ctx, filter)
	if err != nil {
		return nil, nil, fmt.Errorf("list orders: %w", err)
	}

	pages := int(total) / filter.Limit
	if int(total)%filter.Limit > 0 {
		pages++
	}
	return orders, &domain.Pagination{
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalItems: total,
		TotalPages: pages,
	}, nil
}

func (uc *OrderUsecase) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	return uc.orderRepo.GetByID(ctx, id)
}

// UpdateStatus advances an order through the pipeline. Moving backwards is
// rejected; delivered and cancelled orders are terminal.
func (uc *OrderUsecase) UpdateStatus(ctx context.Context, id, status string) error {
	newWeight, ok := statusWeight[status]
	if !ok {
		return fmt.Errorf("%w: unknown status %q", ErrValidation, status)
	}

	order, err := uc.orderRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	current := statusWeight[order.Status]
	if order.Status == domain.OrderStatusDelivered || order.Status == domain.OrderStatusCancelled {
		return fmt.Errorf("%w: order is %s", ErrStatusTransition, order.Status)
	}
	if newWeight <= current && status != domain.OrderStatusCancelled {
		return fmt.Errorf("%w: %s -> %s", ErrStatusTransition, order.Status, status)
	}

	if err := uc.orderRepo.UpdateStatus(ctx, id, status); err != nil {
		return err
	}

	logger.WithContext(ctx).Info().
		Str("order_id", id).
		Str("from", order.Status).
		Str("to", status).
		Msg("order status updated")
	return nil
}

func (uc *OrderUsecase) DeleteOrder(ctx context.Context, id string) error {
	return uc.orderRepo.DeleteOrder(ctx, id)
}
