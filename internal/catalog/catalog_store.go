package catalog

import (
	catalogerrors "go-storefront/internal/catalog/errors"

	"go.uber.org/zap"
)

// Store holds the fetched product list and its derived category set.
// Mutation happens only through Load, which swaps the whole snapshot.
type Store struct {
	products   []Product
	categories []string
	byID       map[int64]Product
	logger     *zap.Logger
}

func NewStore(logger ...*zap.Logger) *Store {
	l := zap.L().Named("catalog.store")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("catalog.store")
	}
	return &Store{
		byID:   make(map[int64]Product),
		logger: l,
	}
}

// Load replaces the entire catalog atomically and recomputes the category
// set in order of first appearance.
func (s *Store) Load(products []Product) {
	next := make([]Product, len(products))
	copy(next, products)

	byID := make(map[int64]Product, len(next))
	var categories []string
	seen := make(map[string]struct{})
	for _, p := range next {
		byID[p.ID] = p
		if _, ok := seen[p.Category]; !ok && p.Category != "" {
			seen[p.Category] = struct{}{}
			categories = append(categories, p.Category)
		}
	}

	s.products = next
	s.byID = byID
	s.categories = categories

	s.logger.Debug("catalog loaded",
		zap.Int("products", len(next)),
		zap.Int("categories", len(categories)),
	)
}

// Products returns the catalog in stable load order. Callers must not
// mutate the returned slice.
func (s *Store) Products() []Product {
	return s.products
}

func (s *Store) Categories() []string {
	return s.categories
}

func (s *Store) HasCategory(category string) bool {
	for _, c := range s.categories {
		if c == category {
			return true
		}
	}
	return false
}

func (s *Store) FindByID(id int64) (Product, error) {
	p, ok := s.byID[id]
	if !ok {
		return Product{}, catalogerrors.ErrProductNotFound
	}
	return p, nil
}

func (s *Store) Len() int {
	return len(s.products)
}
