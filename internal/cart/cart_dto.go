package cart

import (
	"github.com/shopspring/decimal"
)

// Line is one product's entry in the cart. Price and title are snapshots
// taken at add-time, never re-read from the catalog. The validate tags are
// the shape contract persisted copies are checked against on load.
type Line struct {
	ID        int64           `json:"id" validate:"required,gte=1"`
	Title     string          `json:"title" validate:"required"`
	Price     decimal.Decimal `json:"price"`
	Thumbnail string          `json:"thumbnail"`
	Quantity  int             `json:"quantity" validate:"required,gte=1"`
}

type Totals struct {
	ItemCount  int             `json:"itemCount"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
}

// DisplayPrice rounds for display only; TotalPrice keeps full precision.
func (t Totals) DisplayPrice() string {
	return t.TotalPrice.StringFixed(2)
}

type Receipt struct {
	ID         string          `json:"id"`
	LineCount  int             `json:"lineCount"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
	CreatedAt  string          `json:"createdAt"`
}
