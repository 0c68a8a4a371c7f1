package crawl_test

import (
	"testing"

	"github.com/ragtools/ragingest/crawl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrontier(t *testing.T) {
	t.Parallel()

	t.Run("pops in FIFO order", func(t *testing.T) {
		t.Parallel()

		f := crawl.NewFrontier(100, 0.01)
		f.Push("https://x.test/a")
		f.Push("https://x.test/b")
		f.Push("https://x.test/c")

		var got []string
		for {
			url, ok := f.Pop()
			if !ok {
				break
			}
			got = append(got, url)
		}

		assert.Equal(t, []string{"https://x.test/a", "https://x.test/b", "https://x.test/c"}, got)
	})

	t.Run("rejects duplicates", func(t *testing.T) {
		t.Parallel()

		f := crawl.NewFrontier(100, 0.01)

		assert.True(t, f.Push("https://x.test/a"))
		assert.False(t, f.Push("https://x.test/a"))
		assert.Equal(t, 1, f.Len())
	})

	t.Run("fragments do not distinguish URLs", func(t *testing.T) {
		t.Parallel()

		f := crawl.NewFrontier(100, 0.01)

		require.True(t, f.Push("https://x.test/a#intro"))
		assert.False(t, f.Push("https://x.test/a#usage"))
		assert.True(t, f.Seen("https://x.test/a"))

		url, ok := f.Pop()
		require.True(t, ok)
		assert.Equal(t, "https://x.test/a", url)
	})

	t.Run("pop on empty frontier reports false", func(t *testing.T) {
		t.Parallel()

		f := crawl.NewFrontier(100, 0.01)

		_, ok := f.Pop()
		assert.False(t, ok)
	})
}
