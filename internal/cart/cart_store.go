package cart

import (
	"time"

	carterrors "go-storefront/internal/cart/errors"
	"go-storefront/internal/catalog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ProductFinder is the slice of the catalog store the cart needs for
// add-time enrichment.
type ProductFinder interface {
	FindByID(id int64) (catalog.Product, error)
}

// Persister receives the full line set after every observable mutation.
type Persister interface {
	Save(lines []Line) error
}

// Store owns the cart lines. Every mutation is write-through: the persister
// runs before control returns, and a failed write rolls the mutation back so
// memory and storage never disagree about a change reported as successful.
type Store struct {
	lines     []Line
	finder    ProductFinder
	persister Persister
	onChange  func()
	logger    *zap.Logger
}

type Deps struct {
	Finder    ProductFinder
	Persister Persister
	Initial   []Line
	OnChange  func()
	Logger    *zap.Logger
}

func NewStore(deps Deps) *Store {
	if deps.Finder == nil {
		panic("product finder cannot be nil")
	}
	if deps.Persister == nil {
		panic("persister cannot be nil")
	}
	if deps.Logger == nil {
		deps.Logger = zap.L()
	}
	return &Store{
		lines:     append([]Line(nil), deps.Initial...),
		finder:    deps.Finder,
		persister: deps.Persister,
		onChange:  deps.OnChange,
		logger:    deps.Logger.Named("cart.store"),
	}
}

// Lines returns the cart in insertion order. Callers must not mutate the
// returned slice.
func (s *Store) Lines() []Line {
	return s.lines
}

func (s *Store) Len() int {
	return len(s.lines)
}

// AddItem adds one unit of the product: a new line at quantity 1 with
// price/title snapshotted now, or +1 on the existing line.
func (s *Store) AddItem(productID int64) error {
	product, err := s.finder.FindByID(productID)
	if err != nil {
		return err
	}

	prev := s.snapshot()
	if i := s.indexOf(productID); i >= 0 {
		s.lines[i].Quantity++
	} else {
		s.lines = append(s.lines, Line{
			ID:        product.ID,
			Title:     product.Title,
			Price:     product.Price,
			Thumbnail: product.Thumbnail,
			Quantity:  1,
		})
	}

	return s.commit(prev)
}

// RemoveItem deletes the line if present; absent is a no-op, not an error.
func (s *Store) RemoveItem(productID int64) error {
	i := s.indexOf(productID)
	if i < 0 {
		return nil
	}

	prev := s.snapshot()
	s.lines = append(s.lines[:i], s.lines[i+1:]...)
	return s.commit(prev)
}

// SetQuantity sets the line to exactly quantity. Zero or negative is
// equivalent to RemoveItem; a missing line is ErrLineNotFound.
func (s *Store) SetQuantity(productID int64, quantity int) error {
	if quantity <= 0 {
		return s.RemoveItem(productID)
	}

	i := s.indexOf(productID)
	if i < 0 {
		return carterrors.ErrLineNotFound
	}

	prev := s.snapshot()
	s.lines[i].Quantity = quantity
	return s.commit(prev)
}

func (s *Store) Clear() error {
	if len(s.lines) == 0 {
		return nil
	}
	prev := s.snapshot()
	s.lines = nil
	return s.commit(prev)
}

// Totals is computed fresh on every call; no cached aggregate to drift.
func (s *Store) Totals() Totals {
	total := decimal.Zero
	count := 0
	for _, l := range s.lines {
		count += l.Quantity
		total = total.Add(l.Price.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return Totals{ItemCount: count, TotalPrice: total}
}

// Checkout clears the cart and its persisted copy atomically and returns a
// receipt. No inventory or payment side effects; this is a local reset.
func (s *Store) Checkout() (Receipt, error) {
	if len(s.lines) == 0 {
		return Receipt{}, carterrors.ErrEmptyCart
	}

	totals := s.Totals()
	receipt := Receipt{
		ID:         uuid.New().String(),
		LineCount:  len(s.lines),
		TotalPrice: totals.TotalPrice,
		CreatedAt:  time.Now().Format(time.RFC3339),
	}

	prev := s.snapshot()
	s.lines = nil
	if err := s.commit(prev); err != nil {
		return Receipt{}, err
	}

	s.logger.Info("checkout completed",
		zap.String("receipt_id", receipt.ID),
		zap.Int("lines", receipt.LineCount),
		zap.String("total", receipt.TotalPrice.StringFixed(2)),
	)
	return receipt, nil
}

func (s *Store) indexOf(productID int64) int {
	for i, l := range s.lines {
		if l.ID == productID {
			return i
		}
	}
	return -1
}

func (s *Store) snapshot() []Line {
	return append([]Line(nil), s.lines...)
}

// commit persists the mutated line set and rolls back to prev on failure.
func (s *Store) commit(prev []Line) error {
	if err := s.persister.Save(s.lines); err != nil {
		s.logger.Error("cart persist failed, rolling back", zap.Error(err))
		s.lines = prev
		return carterrors.ErrPersistFailed
	}
	if s.onChange != nil {
		s.onChange()
	}
	return nil
}
