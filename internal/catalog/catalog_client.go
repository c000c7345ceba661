package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	catalogerrors "go-storefront/internal/catalog/errors"
	"go-storefront/internal/pkg/apperror"

	"go.uber.org/zap"
)

// Client fetches the raw catalog from the upstream read-only endpoint.
// Non-2xx responses and malformed payloads surface identically as
// ErrFetchFailed; the caller keeps its previous snapshot either way.
type Client struct {
	url    string
	http   *http.Client
	logger *zap.Logger
}

func NewClient(url string, timeout time.Duration, logger ...*zap.Logger) *Client {
	l := zap.L().Named("catalog.client")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("catalog.client")
	}
	return &Client{
		url:    url,
		http:   &http.Client{Timeout: timeout},
		logger: l,
	}
}

func (c *Client) Fetch(ctx context.Context) ([]Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, apperror.Wrap(err, catalogerrors.ErrFetchFailed.Code,
			catalogerrors.ErrFetchFailed.Message, catalogerrors.ErrFetchFailed.HTTPStatus)
	}

	res, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("catalog fetch request failed", zap.Error(err))
		return nil, apperror.Wrap(err, catalogerrors.ErrFetchFailed.Code,
			catalogerrors.ErrFetchFailed.Message, catalogerrors.ErrFetchFailed.HTTPStatus)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		c.logger.Warn("catalog fetch bad status", zap.Int("status", res.StatusCode))
		return nil, catalogerrors.ErrFetchFailed
	}

	var payload catalogPayload
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		c.logger.Warn("catalog payload decode failed", zap.Error(err))
		return nil, apperror.Wrap(err, catalogerrors.ErrFetchFailed.Code,
			catalogerrors.ErrFetchFailed.Message, catalogerrors.ErrFetchFailed.HTTPStatus)
	}

	c.logger.Info("catalog fetched", zap.Int("products", len(payload.Products)))
	return payload.Products, nil
}
