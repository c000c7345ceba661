package storefront

import (
	"go-storefront/internal/cart"
	"go-storefront/internal/view"
)

// View-models are plain data snapshots for the rendering surface; they
// carry no behavior and no references into the stores.

type ProductView struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Price     string `json:"price"`
	Thumbnail string `json:"thumbnail"`
	Category  string `json:"category"`
}

type ProductPageView struct {
	Items      []ProductView `json:"items"`
	Pagination view.Summary  `json:"pagination"`
}

type CategoryView struct {
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

type CartLineView struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Price    string `json:"price"`
	Quantity int    `json:"quantity"`
	Subtotal string `json:"subtotal"`
}

type CartTotalsView struct {
	ItemCount  int    `json:"itemCount"`
	TotalPrice string `json:"totalPrice"`
}

type CartView struct {
	Items  []CartLineView `json:"items"`
	Totals CartTotalsView `json:"totals"`
}

type ReceiptView struct {
	ID         string `json:"id"`
	LineCount  int    `json:"lineCount"`
	TotalPrice string `json:"totalPrice"`
	CreatedAt  string `json:"createdAt"`
}

func newReceiptView(r cart.Receipt) ReceiptView {
	return ReceiptView{
		ID:         r.ID,
		LineCount:  r.LineCount,
		TotalPrice: r.TotalPrice.StringFixed(2),
		CreatedAt:  r.CreatedAt,
	}
}

// Request DTOs for the HTTP boundary.

type AddItemRequest struct {
	ProductID int64 `json:"productId" binding:"required"`
}

type SetQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

type SetFilterRequest struct {
	Category *string `json:"category"`
}

type SetPageSizeRequest struct {
	PageSize int `json:"pageSize" binding:"required"`
}
