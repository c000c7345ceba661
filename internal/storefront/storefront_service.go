package storefront

import (
	"context"
	"sync"

	"go-storefront/internal/cart"
	"go-storefront/internal/catalog"
	catalogerrors "go-storefront/internal/catalog/errors"
	"go-storefront/internal/view"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Fetcher is the catalog client as the coordinator sees it.
type Fetcher interface {
	Fetch(ctx context.Context) ([]catalog.Product, error)
}

// Service is the intent surface of the storefront core. Implementations
// apply each intent fully or not at all.
type Service interface {
	FetchCatalog(ctx context.Context) error

	AddToCart(productID int64) error
	RemoveFromCart(productID int64) error
	SetQuantity(productID int64, quantity int) error
	Checkout() (ReceiptView, error)

	SelectCategory(category string) error
	ClearCategory()
	SetPageSize(n int) error
	NextPage()
	PrevPage()

	ProductPage() ProductPageView
	Categories() []CategoryView
	Cart() CartView
	Loading() bool
}

// service serializes every intent behind one mutex, the Go stand-in for the
// source's single-threaded event loop: no intent observes another's partial
// state. The catalog fetch is the only suspending operation; the lock is
// released while the request is in flight so reads keep serving the prior
// snapshot, and an in-flight flag rejects overlapping fetches.
type service struct {
	mu       sync.Mutex
	fetching bool

	catalog *catalog.Store
	fetcher Fetcher
	cart    *cart.Store
	view    *view.State
	logger  *zap.Logger
}

type Deps struct {
	Catalog *catalog.Store
	Fetcher Fetcher
	Cart    *cart.Store
	View    *view.State
	Logger  *zap.Logger
}

func NewService(deps Deps) Service {
	if deps.Catalog == nil {
		panic("catalog store cannot be nil")
	}
	if deps.Fetcher == nil {
		panic("catalog fetcher cannot be nil")
	}
	if deps.Cart == nil {
		panic("cart store cannot be nil")
	}
	if deps.View == nil {
		panic("view state cannot be nil")
	}
	if deps.Logger == nil {
		deps.Logger = zap.L()
	}
	return &service{
		catalog: deps.Catalog,
		fetcher: deps.Fetcher,
		cart:    deps.Cart,
		view:    deps.View,
		logger:  deps.Logger.Named("storefront"),
	}
}

// FetchCatalog loads a fresh catalog snapshot. On failure the previous
// snapshot (possibly empty) stays in place and the error is surfaced for a
// degraded-state banner.
func (s *service) FetchCatalog(ctx context.Context) error {
	s.mu.Lock()
	if s.fetching {
		s.mu.Unlock()
		return catalogerrors.ErrFetchInFlight
	}
	s.fetching = true
	s.mu.Unlock()

	products, err := s.fetcher.Fetch(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.fetching = false

	if err != nil {
		s.logger.Warn("catalog fetch failed, keeping previous snapshot", zap.Error(err))
		return err
	}

	s.catalog.Load(products)
	s.view.Reset()
	return nil
}

func (s *service) AddToCart(productID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.AddItem(productID)
}

func (s *service) RemoveFromCart(productID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.RemoveItem(productID)
}

func (s *service) SetQuantity(productID int64, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.SetQuantity(productID, quantity)
}

func (s *service) Checkout() (ReceiptView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	receipt, err := s.cart.Checkout()
	if err != nil {
		return ReceiptView{}, err
	}
	return newReceiptView(receipt), nil
}

func (s *service) SelectCategory(category string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view.SetFilter(category)
}

func (s *service) ClearCategory() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view.ClearFilter()
}

func (s *service) SetPageSize(n int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view.SetPageSize(n)
}

func (s *service) NextPage() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view.NextPage()
}

func (s *service) PrevPage() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view.PrevPage()
}

func (s *service) ProductPage() ProductPageView {
	s.mu.Lock()
	defer s.mu.Unlock()

	products := s.view.VisibleProducts()
	items := make([]ProductView, 0, len(products))
	for _, p := range products {
		items = append(items, ProductView{
			ID:        p.ID,
			Title:     p.Title,
			Price:     p.Price.StringFixed(2),
			Thumbnail: p.Thumbnail,
			Category:  p.Category,
		})
	}
	return ProductPageView{
		Items:      items,
		Pagination: s.view.Summary(),
	}
}

func (s *service) Categories() []CategoryView {
	s.mu.Lock()
	defer s.mu.Unlock()

	active := s.view.Filter()
	names := s.catalog.Categories()
	out := make([]CategoryView, 0, len(names))
	for _, name := range names {
		out = append(out, CategoryView{Name: name, Active: name == active})
	}
	return out
}

func (s *service) Cart() CartView {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.cart.Lines()
	items := make([]CartLineView, 0, len(lines))
	for _, l := range lines {
		items = append(items, CartLineView{
			ID:       l.ID,
			Title:    l.Title,
			Price:    l.Price.StringFixed(2),
			Quantity: l.Quantity,
			Subtotal: l.Price.Mul(decimal.NewFromInt(int64(l.Quantity))).StringFixed(2),
		})
	}
	totals := s.cart.Totals()
	return CartView{
		Items: items,
		Totals: CartTotalsView{
			ItemCount:  totals.ItemCount,
			TotalPrice: totals.DisplayPrice(),
		},
	}
}

// Loading reports whether a catalog fetch is in flight, for the boundary's
// loading indicator.
func (s *service) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fetching
}
