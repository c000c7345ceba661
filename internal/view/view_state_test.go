package view_test

import (
	"fmt"
	"testing"

	"go-storefront/internal/catalog"
	"go-storefront/internal/view"
	viewerrors "go-storefront/internal/view/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// products builds n items; every item whose index is a multiple of stride
// lands in category "special", the rest in "plain".
func products(n, stride int) []catalog.Product {
	out := make([]catalog.Product, 0, n)
	for i := 1; i <= n; i++ {
		cat := "plain"
		if stride > 0 && i%stride == 0 {
			cat = "special"
		}
		out = append(out, catalog.Product{
			ID:       int64(i),
			Title:    fmt.Sprintf("item-%d", i),
			Category: cat,
		})
	}
	return out
}

func newState(t *testing.T, items []catalog.Product, pageSize int) (*view.State, *catalog.Store) {
	t.Helper()
	store := catalog.NewStore()
	store.Load(items)
	return view.NewState(store, pageSize), store
}

func TestViewState_Pagination(t *testing.T) {
	t.Run("twelve_products_page_size_five_is_three_pages", func(t *testing.T) {
		state, _ := newState(t, products(12, 0), 5)

		sum := state.Summary()
		assert.Equal(t, 3, sum.TotalPages)
		assert.Equal(t, 1, sum.CurrentPage)
		assert.False(t, sum.CanPrev)
		assert.True(t, sum.CanNext)
		assert.Len(t, state.VisibleProducts(), 5)
	})

	t.Run("last_page_holds_the_remainder", func(t *testing.T) {
		state, _ := newState(t, products(12, 0), 5)

		state.NextPage()
		state.NextPage()
		visible := state.VisibleProducts()
		assert.Len(t, visible, 2)
		assert.Equal(t, int64(11), visible[0].ID)

		sum := state.Summary()
		assert.Equal(t, 3, sum.CurrentPage)
		assert.True(t, sum.CanPrev)
		assert.False(t, sum.CanNext)
	})

	t.Run("next_past_last_page_is_a_noop", func(t *testing.T) {
		state, _ := newState(t, products(6, 0), 5)

		state.NextPage()
		state.NextPage()
		state.NextPage()
		assert.Equal(t, 2, state.Summary().CurrentPage)
	})

	t.Run("prev_below_first_page_is_a_noop", func(t *testing.T) {
		state, _ := newState(t, products(6, 0), 5)

		state.PrevPage()
		assert.Equal(t, 1, state.Summary().CurrentPage)
	})

	t.Run("empty_catalog_is_one_empty_page", func(t *testing.T) {
		state, _ := newState(t, nil, 5)

		sum := state.Summary()
		assert.Equal(t, 1, sum.TotalPages)
		assert.Equal(t, 1, sum.CurrentPage)
		assert.Empty(t, state.VisibleProducts())
	})
}

func TestViewState_PageClamping(t *testing.T) {
	t.Run("shrink_keeping_page_count_keeps_page", func(t *testing.T) {
		items := products(12, 12) // one "special", eleven "plain"
		state, _ := newState(t, items, 5)

		state.NextPage()
		state.NextPage()
		require.Equal(t, 3, state.Summary().CurrentPage)

		// 11 plain items still span 3 pages at size 5
		require.NoError(t, state.SetFilter("plain"))
		state.NextPage()
		state.NextPage()
		assert.Equal(t, 3, state.Summary().CurrentPage)
		assert.Len(t, state.VisibleProducts(), 1)
	})

	t.Run("shrink_below_current_page_clamps", func(t *testing.T) {
		items := products(12, 4) // 3 special, 9 plain
		state, _ := newState(t, items, 5)

		require.NoError(t, state.SetFilter("special"))
		// filter reset the page; force the cursor high by stepping within
		// the unfiltered view first
		state.ClearFilter()
		state.NextPage()
		state.NextPage()
		require.Equal(t, 3, state.Summary().CurrentPage)

		require.NoError(t, state.SetFilter("special"))
		sum := state.Summary()
		assert.Equal(t, 1, sum.CurrentPage)
		assert.Equal(t, 1, sum.TotalPages)
		assert.Len(t, state.VisibleProducts(), 3)
	})
}

func TestViewState_ClampsWhenCatalogShrinksUnderneath(t *testing.T) {
	store := catalog.NewStore()
	store.Load(products(12, 0))
	state := view.NewState(store, 5)

	state.NextPage()
	state.NextPage()
	require.Equal(t, 3, state.Summary().CurrentPage)

	// swap the catalog without a view reset: the recomputation path alone
	// must pull the cursor back into range
	store.Load(products(3, 0))

	visible := state.VisibleProducts()
	assert.Len(t, visible, 3)
	sum := state.Summary()
	assert.Equal(t, 1, sum.CurrentPage)
	assert.Equal(t, 1, sum.TotalPages)
}

func TestViewState_FilterResetsPage(t *testing.T) {
	state, _ := newState(t, products(12, 4), 5)

	state.NextPage()
	require.Equal(t, 2, state.Summary().CurrentPage)

	require.NoError(t, state.SetFilter("plain"))
	assert.Equal(t, 1, state.Summary().CurrentPage)

	state.NextPage()
	state.ClearFilter()
	assert.Equal(t, 1, state.Summary().CurrentPage)
}

func TestViewState_SetPageSize(t *testing.T) {
	t.Run("resets_page_to_one", func(t *testing.T) {
		state, _ := newState(t, products(12, 0), 5)

		state.NextPage()
		require.Equal(t, 2, state.Summary().CurrentPage)

		require.NoError(t, state.SetPageSize(3))
		sum := state.Summary()
		assert.Equal(t, 1, sum.CurrentPage)
		assert.Equal(t, 4, sum.TotalPages)
		assert.Len(t, state.VisibleProducts(), 3)
	})

	t.Run("rejects_sizes_below_one", func(t *testing.T) {
		state, _ := newState(t, products(12, 0), 5)

		assert.ErrorIs(t, state.SetPageSize(0), viewerrors.ErrInvalidPageSize)
		assert.ErrorIs(t, state.SetPageSize(-1), viewerrors.ErrInvalidPageSize)
		// size unchanged
		assert.Equal(t, 5, state.Summary().PageSize)
	})
}

func TestViewState_UnknownCategoryRejected(t *testing.T) {
	state, _ := newState(t, products(4, 0), 5)

	err := state.SetFilter("no-such-category")
	assert.ErrorIs(t, err, viewerrors.ErrUnknownCategory)
	assert.Empty(t, state.Filter())
}

func TestViewState_ResetInvalidatesStaleFilter(t *testing.T) {
	store := catalog.NewStore()
	store.Load(products(8, 2))
	state := view.NewState(store, 5)

	require.NoError(t, state.SetFilter("special"))

	// reload drops the "special" category entirely
	store.Load(products(8, 0))
	state.Reset()

	assert.Empty(t, state.Filter(), "stale category falls back to no filter")
	assert.Equal(t, 1, state.Summary().CurrentPage)
	assert.Len(t, state.VisibleProducts(), 5)
}
