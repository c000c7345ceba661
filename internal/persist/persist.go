package persist

import (
	"context"
	"encoding/json"

	"go-storefront/internal/cart"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// KV is the string-keyed storage the cart is mirrored into, the local
// storage analog. Get reports absence via found=false, not an error.
type KV interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Adapter serializes the cart line set under a fixed key. Corrupt or
// malformed persisted state is discarded on load, never fatal: a broken
// local copy must not block startup.
type Adapter struct {
	kv       KV
	key      string
	validate *validator.Validate
	logger   *zap.Logger
}

func NewAdapter(kv KV, key string, logger ...*zap.Logger) *Adapter {
	l := zap.L().Named("persist.adapter")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("persist.adapter")
	}
	return &Adapter{
		kv:       kv,
		key:      key,
		validate: validator.New(),
		logger:   l,
	}
}

func (a *Adapter) Save(lines []cart.Line) error {
	if lines == nil {
		lines = []cart.Line{}
	}
	raw, err := json.Marshal(lines)
	if err != nil {
		return err
	}
	return a.kv.Set(context.Background(), a.key, string(raw))
}

// Load returns the persisted cart, or an empty one when the key is absent,
// the payload fails to parse, or any line fails shape validation.
func (a *Adapter) Load() []cart.Line {
	raw, found, err := a.kv.Get(context.Background(), a.key)
	if err != nil {
		a.logger.Warn("persisted cart read failed, starting empty", zap.Error(err))
		return nil
	}
	if !found {
		return nil
	}

	var lines []cart.Line
	if err := json.Unmarshal([]byte(raw), &lines); err != nil {
		a.logger.Warn("persisted cart is corrupt, starting empty", zap.Error(err))
		return nil
	}

	seen := make(map[int64]struct{}, len(lines))
	for _, l := range lines {
		if err := a.validate.Struct(l); err != nil {
			a.logger.Warn("persisted cart line invalid, starting empty",
				zap.Int64("product_id", l.ID),
				zap.Error(err),
			)
			return nil
		}
		if l.Price.IsNegative() {
			a.logger.Warn("persisted cart line has negative price, starting empty",
				zap.Int64("product_id", l.ID),
			)
			return nil
		}
		if _, dup := seen[l.ID]; dup {
			a.logger.Warn("persisted cart has duplicate line, starting empty",
				zap.Int64("product_id", l.ID),
			)
			return nil
		}
		seen[l.ID] = struct{}{}
	}

	return lines
}
