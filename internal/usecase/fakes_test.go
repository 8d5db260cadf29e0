package usecase

import (
	"context"

	"surpriset-backend/internal/domain"
)

// fakeProductRepo serves a fixed catalog from memory.
type fakeProductRepo struct {
	products map[string]*domain.Product
}

func newFakeProductRepo(products ...*domain.Product) *fakeProductRepo {
	repo := &fakeProductRepo{products: make(map[string]*domain.Product)}
	for _, p := range products {
		repo.products[p.ID] = p
	}
	return repo
}

func (f *fakeProductRepo) GetProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, int64, error) {
	var out []domain.Product
	for _, p := range f.products {
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (f *fakeProductRepo) GetProductByID(ctx context.Context, id string) (*domain.Product, error) {
	if p, ok := f.products[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, domain.ErrProductNotFound
}

func (f *fakeProductRepo) GetProductsByIDs(ctx context.Context, ids []string) ([]domain.Product, error) {
	var out []domain.Product
	for _, id := range ids {
		if p, ok := f.products[id]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) CreateProduct(ctx context.Context, p *domain.Product) error {
	f.products[p.ID] = p
	return nil
}

func (f *fakeProductRepo) UpdateProduct(ctx context.Context, p *domain.Product) error {
	if _, ok := f.products[p.ID]; !ok {
		return domain.ErrProductNotFound
	}
	f.products[p.ID] = p
	return nil
}

func (f *fakeProductRepo) UpdateProductStatus(ctx context.Context, id, status string) error {
	p, ok := f.products[id]
	if !ok {
		return domain.ErrProductNotFound
	}
	p.Status = status
	return nil
}

func (f *fakeProductRepo) DeleteProduct(ctx context.Context, id string) error {
	if _, ok := f.products[id]; !ok {
		return domain.ErrProductNotFound
	}
	delete(f.products, id)
	return nil
}

func (f *fakeProductRepo) GetCategories(ctx context.Context) ([]domain.Category, error) {
	return nil, nil
}
func (f *fakeProductRepo) GetCategoryByID(ctx context.Context, id string) (*domain.Category, error) {
	return nil, domain.ErrCategoryNotFound
}
func (f *fakeProductRepo) CreateCategory(ctx context.Context, c *domain.Category) error { return nil }
func (f *fakeProductRepo) UpdateCategory(ctx context.Context, c *domain.Category) error { return nil }
func (f *fakeProductRepo) DeleteCategory(ctx context.Context, id string) error          { return nil }

// fakeOrderRepo records created orders.
type fakeOrderRepo struct {
	orders map[string]*domain.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[string]*domain.Order)}
}

func (f *fakeOrderRepo) CreateOrder(ctx context.Context, o *domain.Order) error {
	cp := *o
	f.orders[o.ID] = &cp
	return nil
}

func (f *fakeOrderRepo) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	if o, ok := f.orders[id]; ok {
		cp := *o
		return &cp, nil
	}
	return nil, domain.ErrOrderNotFound
}

func (f *fakeOrderRepo) GetBySessionID(ctx context.Context, sessionID string) ([]domain.Order, error) {
	var out []domain.Order
	for _, o := range f.orders {
		if o.SessionID == sessionID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) GetAll(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, int64, error) {
	var out []domain.Order
	for _, o := range f.orders {
		out = append(out, *o)
	}
	return out, int64(len(out)), nil
}

func (f *fakeOrderRepo) UpdateStatus(ctx context.Context, id, status string) error {
	o, ok := f.orders[id]
	if !ok {
		return domain.ErrOrderNotFound
	}
	o.Status = status
	return nil
}

func (f *fakeOrderRepo) DeleteOrder(ctx context.Context, id string) error {
	if _, ok := f.orders[id]; !ok {
		return domain.ErrOrderNotFound
	}
	delete(f.orders, id)
	return nil
}

// fakeContentRepo serves packaging options only; the order tests don't touch
// banners.
type fakeContentRepo struct {
	packaging map[string]*domain.Packaging
}

func newFakeContentRepo(opts ...*domain.Packaging) *fakeContentRepo {
	repo := &fakeContentRepo{packaging: make(map[string]*domain.Packaging)}
	for _, p := range opts {
		repo.packaging[p.ID] = p
	}
	return repo
}

func (f *fakeContentRepo) GetActiveBanners(ctx context.Context) ([]domain.Banner, error) {
	return nil, nil
}
func (f *fakeContentRepo) GetAllBanners(ctx context.Context) ([]domain.Banner, error) {
	return nil, nil
}
func (f *fakeContentRepo) CreateBanner(ctx context.Context, b *domain.Banner) error { return nil }
func (f *fakeContentRepo) UpdateBanner(ctx context.Context, b *domain.Banner) error { return nil }
func (f *fakeContentRepo) DeleteBanner(ctx context.Context, id string) error        { return nil }
func (f *fakeContentRepo) ReorderBanners(ctx context.Context, updates []domain.BannerReorderItem) error {
	return nil
}

func (f *fakeContentRepo) GetActivePackaging(ctx context.Context) ([]domain.Packaging, error) {
	var out []domain.Packaging
	for _, p := range f.packaging {
		if p.IsActive {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeContentRepo) GetAllPackaging(ctx context.Context) ([]domain.Packaging, error) {
	var out []domain.Packaging
	for _, p := range f.packaging {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakeContentRepo) GetPackagingByID(ctx context.Context, id string) (*domain.Packaging, error) {
	if p, ok := f.packaging[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, domain.ErrPackagingNotFound
}

func (f *fakeContentRepo) CreatePackaging(ctx context.Context, p *domain.Packaging) error { return nil }
func (f *fakeContentRepo) UpdatePackaging(ctx context.Context, p *domain.Packaging) error { return nil }
func (f *fakeContentRepo) DeletePackaging(ctx context.Context, id string) error           { return nil }

// fakeTxManager runs the function without a real transaction.
type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
