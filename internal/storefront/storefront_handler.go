package storefront

import (
	"net/http"
	"strconv"

	"go-storefront/internal/pkg/apperror"
	"go-storefront/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler is the HTTP presentation boundary: it translates requests into
// core intents and renders the view-models the core hands back. The core
// never sees gin.
type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(svc Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("storefront.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("storefront.handler")
	}
	return &Handler{service: svc, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
}

// RefreshCatalog triggers a catalog fetch.
// POST /catalog/refresh
func (h *Handler) RefreshCatalog(c *gin.Context) {
	if err := h.service.FetchCatalog(c.Request.Context()); err != nil {
		h.logger.Warn("http catalog refresh failed", zap.Error(err))
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, h.service.ProductPage(), nil)
}

// ListProducts returns the current visible page.
// GET /products
func (h *Handler) ListProducts(c *gin.Context) {
	page := h.service.ProductPage()
	meta := response.NewPaginationMeta(
		int64(page.Pagination.TotalItems),
		page.Pagination.CurrentPage,
		page.Pagination.PageSize,
	)
	response.Success(c, http.StatusOK, page, &meta)
}

// ListCategories returns the category filter list.
// GET /categories
func (h *Handler) ListCategories(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{
		"items":   h.service.Categories(),
		"loading": h.service.Loading(),
	}, nil)
}

// GetCart returns cart lines and totals.
// GET /cart
func (h *Handler) GetCart(c *gin.Context) {
	response.Success(c, http.StatusOK, h.service.Cart(), nil)
}

// AddItem adds one unit of a product.
// POST /cart/items
func (h *Handler) AddItem(c *gin.Context) {
	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http add item validation failed", zap.Error(err))
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid request body", err.Error())
		return
	}

	if err := h.service.AddToCart(req.ProductID); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, h.service.Cart(), nil)
}

// UpdateQuantity sets a line to an exact quantity; zero removes it.
// PATCH /cart/items/:id
func (h *Handler) UpdateQuantity(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid product id", nil)
		return
	}

	var req SetQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http update quantity validation failed", zap.Error(err))
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid request body", err.Error())
		return
	}

	if err := h.service.SetQuantity(productID, *req.Quantity); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, h.service.Cart(), nil)
}

// RemoveItem deletes a cart line.
// DELETE /cart/items/:id
func (h *Handler) RemoveItem(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid product id", nil)
		return
	}

	if err := h.service.RemoveFromCart(productID); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, h.service.Cart(), nil)
}

// Checkout clears the cart and returns a receipt.
// POST /checkout
func (h *Handler) Checkout(c *gin.Context) {
	receipt, err := h.service.Checkout()
	if err != nil {
		h.logger.Warn("http checkout rejected", zap.Error(err))
		h.writeServiceError(c, err)
		return
	}

	h.logger.Info("http checkout completed", zap.String("receipt_id", receipt.ID))
	response.Success(c, http.StatusOK, receipt, nil)
}

// SetFilter selects a category, or clears it when category is null.
// PUT /view/filter
func (h *Handler) SetFilter(c *gin.Context) {
	var req SetFilterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid request body", err.Error())
		return
	}

	if req.Category == nil || *req.Category == "" {
		h.service.ClearCategory()
	} else if err := h.service.SelectCategory(*req.Category); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, h.service.ProductPage(), nil)
}

// SetPageSize changes the page size and resets to page 1.
// PUT /view/page-size
func (h *Handler) SetPageSize(c *gin.Context) {
	var req SetPageSizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid request body", err.Error())
		return
	}

	if err := h.service.SetPageSize(req.PageSize); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, h.service.ProductPage(), nil)
}

// NextPage / PrevPage step the pagination cursor, clamped at the bounds.
// POST /view/next-page, POST /view/prev-page
func (h *Handler) NextPage(c *gin.Context) {
	h.service.NextPage()
	response.Success(c, http.StatusOK, h.service.ProductPage(), nil)
}

func (h *Handler) PrevPage(c *gin.Context) {
	h.service.PrevPage()
	response.Success(c, http.StatusOK, h.service.ProductPage(), nil)
}
