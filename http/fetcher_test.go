package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ragtools/ragingest"
	ragingesthttp "github.com/ragtools/ragingest/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("returns body and content type", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.Write([]byte("<html><body>ok</body></html>"))
		}))
		defer srv.Close()

		f := ragingesthttp.NewFetcher()
		res, err := f.Fetch(context.Background(), srv.URL)

		require.NoError(t, err)
		assert.Equal(t, "<html><body>ok</body></html>", string(res.Body))
		assert.Equal(t, "text/html; charset=utf-8", res.ContentType)
	})

	t.Run("sends the configured user agent", func(t *testing.T) {
		t.Parallel()

		var gotUA string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotUA = r.Header.Get("User-Agent")
		}))
		defer srv.Close()

		f := ragingesthttp.NewFetcher(ragingesthttp.WithUserAgent("docbot/2.0"))
		_, err := f.Fetch(context.Background(), srv.URL)

		require.NoError(t, err)
		assert.Equal(t, "docbot/2.0", gotUA)
	})

	t.Run("non-2xx status is unavailable", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "gone", http.StatusNotFound)
		}))
		defer srv.Close()

		f := ragingesthttp.NewFetcher()
		_, err := f.Fetch(context.Background(), srv.URL)

		require.Error(t, err)
		assert.Equal(t, ragingest.EUNAVAILABLE, ragingest.ErrorCode(err))
	})

	t.Run("malformed URL is invalid", func(t *testing.T) {
		t.Parallel()

		f := ragingesthttp.NewFetcher()
		_, err := f.Fetch(context.Background(), "http://[::1]:namedport")

		require.Error(t, err)
		assert.Equal(t, ragingest.EINVALID, ragingest.ErrorCode(err))
	})

	t.Run("connection failure is unavailable", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close()

		f := ragingesthttp.NewFetcher()
		_, err := f.Fetch(context.Background(), srv.URL)

		require.Error(t, err)
		assert.Equal(t, ragingest.EUNAVAILABLE, ragingest.ErrorCode(err))
	})
}
