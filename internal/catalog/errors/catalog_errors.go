package catalogerrors

import (
	"net/http"

	"go-storefront/internal/pkg/apperror"
)

var (
	ErrProductNotFound = apperror.New(
		apperror.CodeNotFound,
		"Product not found in catalog",
		http.StatusNotFound,
	)

	ErrFetchFailed = apperror.New(
		apperror.CodeUpstreamError,
		"Failed to fetch product catalog",
		http.StatusBadGateway,
	)

	ErrFetchInFlight = apperror.New(
		apperror.CodeConflict,
		"Catalog fetch already in progress",
		http.StatusConflict,
	)
)
