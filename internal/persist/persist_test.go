package persist_test

import (
	"context"
	"path/filepath"
	"testing"

	"go-storefront/internal/cart"
	"go-storefront/internal/persist"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const storageKey = "cart"

func lines() []cart.Line {
	return []cart.Line{
		{ID: 1, Title: "Mouse", Price: decimal.RequireFromString("10.99"), Thumbnail: "m.png", Quantity: 2},
		{ID: 2, Title: "Pad", Price: decimal.RequireFromString("5"), Quantity: 1},
	}
}

func TestAdapter_RoundTrip(t *testing.T) {
	adapter := persist.NewAdapter(persist.NewMemoryKV(), storageKey)

	require.NoError(t, adapter.Save(lines()))
	got := adapter.Load()

	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, 2, got[0].Quantity)
	assert.True(t, got[0].Price.Equal(decimal.RequireFromString("10.99")))
	assert.Equal(t, "Pad", got[1].Title)
}

func TestAdapter_LoadAbsentKeyIsEmpty(t *testing.T) {
	adapter := persist.NewAdapter(persist.NewMemoryKV(), storageKey)
	assert.Empty(t, adapter.Load())
}

func TestAdapter_CorruptStateRecoversEmpty(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"not_json", "{{{"},
		{"wrong_shape", `{"cart": true}`},
		{"zero_quantity", `[{"id":1,"title":"Mouse","price":"10","quantity":0}]`},
		{"missing_title", `[{"id":1,"price":"10","quantity":1}]`},
		{"zero_id", `[{"id":0,"title":"Mouse","price":"10","quantity":1}]`},
		{"negative_price", `[{"id":1,"title":"Mouse","price":"-1","quantity":1}]`},
		{"duplicate_ids", `[{"id":1,"title":"A","price":"1","quantity":1},{"id":1,"title":"B","price":"2","quantity":1}]`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			kv := persist.NewMemoryKV()
			require.NoError(t, kv.Set(context.Background(), storageKey, tc.raw))

			adapter := persist.NewAdapter(kv, storageKey)
			assert.Empty(t, adapter.Load(), "corrupt state must load as an empty cart")
		})
	}
}

func TestAdapter_SaveNilWritesEmptyList(t *testing.T) {
	kv := persist.NewMemoryKV()
	adapter := persist.NewAdapter(kv, storageKey)

	require.NoError(t, adapter.Save(nil))
	raw, found, err := kv.Get(context.Background(), storageKey)
	require.NoError(t, err)
	require.True(t, found)
	assert.JSONEq(t, "[]", raw)
	assert.Empty(t, adapter.Load())
}

func TestMemoryKV(t *testing.T) {
	kv := persist.NewMemoryKV()
	ctx := context.Background()

	_, found, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, kv.Set(ctx, "k", "v"))
	v, found, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "v", v)

	require.NoError(t, kv.Delete(ctx, "k"))
	_, found, _ = kv.Get(ctx, "k")
	assert.False(t, found)
}

func TestFileKV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	ctx := context.Background()

	t.Run("absent_file_reads_as_empty", func(t *testing.T) {
		kv := persist.NewFileKV(path)
		_, found, err := kv.Get(ctx, "k")
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("survives_reopen", func(t *testing.T) {
		kv := persist.NewFileKV(path)
		require.NoError(t, kv.Set(ctx, "k", "v"))

		reopened := persist.NewFileKV(path)
		v, found, err := reopened.Get(ctx, "k")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "v", v)
	})

	t.Run("delete_removes_key", func(t *testing.T) {
		kv := persist.NewFileKV(path)
		require.NoError(t, kv.Set(ctx, "gone", "v"))
		require.NoError(t, kv.Delete(ctx, "gone"))
		_, found, err := kv.Get(ctx, "gone")
		require.NoError(t, err)
		assert.False(t, found)
	})
}

func TestAdapter_FileBackedRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")

	adapter := persist.NewAdapter(persist.NewFileKV(path), storageKey)
	require.NoError(t, adapter.Save(lines()))

	// a fresh adapter over the same file sees the same cart
	reloaded := persist.NewAdapter(persist.NewFileKV(path), storageKey)
	got := reloaded.Load()
	require.Len(t, got, 2)
	assert.Equal(t, "Mouse", got[0].Title)
}
