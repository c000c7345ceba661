package catalog

import "github.com/shopspring/decimal"

// Product is immutable once loaded; the store owns every copy it hands out.
type Product struct {
	ID        int64           `json:"id"`
	Title     string          `json:"title"`
	Price     decimal.Decimal `json:"price"`
	Thumbnail string          `json:"thumbnail"`
	Category  string          `json:"category"`
}

// catalogPayload mirrors the upstream response shape; fields beyond
// "products" are ignored on decode.
type catalogPayload struct {
	Products []Product `json:"products"`
}
