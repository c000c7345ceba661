package carterrors

import (
	"net/http"

	"go-storefront/internal/pkg/apperror"
)

var (
	ErrLineNotFound = apperror.New(
		apperror.CodeNotFound,
		"Cart line not found",
		http.StatusNotFound,
	)

	ErrEmptyCart = apperror.New(
		apperror.CodeConflict,
		"Cart is empty, add items before checkout",
		http.StatusConflict,
	)

	ErrPersistFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to persist cart",
		http.StatusInternalServerError,
	)
)
