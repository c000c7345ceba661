package viewerrors

import (
	"net/http"

	"go-storefront/internal/pkg/apperror"
)

var (
	ErrInvalidPageSize = apperror.New(
		apperror.CodeInvalidInput,
		"Page size must be at least 1",
		http.StatusBadRequest,
	)

	ErrUnknownCategory = apperror.New(
		apperror.CodeInvalidInput,
		"Category is not present in the catalog",
		http.StatusBadRequest,
	)
)
