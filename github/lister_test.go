package github_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	gh "github.com/google/go-github/v80/github"
	"github.com/ragtools/ragingest"
	"github.com/ragtools/ragingest/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubClient points a go-github client at a local handler.
func stubClient(t *testing.T, handler http.Handler) *gh.Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := gh.NewClient(nil)
	base, err := url.Parse(srv.URL + "/")
	require.NoError(t, err)
	client.BaseURL = base
	return client
}

func TestLister_ListFiles(t *testing.T) {
	t.Parallel()

	t.Run("lists blobs of the default branch", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		mux.HandleFunc("/repos/acme/widget", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"name":"widget","default_branch":"trunk"}`)
		})
		mux.HandleFunc("/repos/acme/widget/git/trees/trunk", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "1", r.URL.Query().Get("recursive"))
			fmt.Fprint(w, `{"sha":"abc","tree":[
				{"path":"README.md","type":"blob","size":120},
				{"path":"docs","type":"tree"},
				{"path":"docs/guide.md","type":"blob","size":400}
			]}`)
		})

		l := github.NewLister(github.WithClient(stubClient(t, mux)))
		tree, err := l.ListFiles(context.Background(), "https://github.com/acme/widget")

		require.NoError(t, err)
		assert.Equal(t, "acme", tree.Owner)
		assert.Equal(t, "widget", tree.Repo)
		assert.Equal(t, "trunk", tree.Branch)
		require.Len(t, tree.Files, 2)
		assert.Equal(t, "README.md", tree.Files[0].Path)
		assert.Equal(t, int64(400), tree.Files[1].Size)
		assert.Equal(t,
			"https://raw.githubusercontent.com/acme/widget/trunk/docs/guide.md",
			tree.RawURL("docs/guide.md"))
	})

	t.Run("missing repository is not found", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"message":"Not Found"}`, http.StatusNotFound)
		})

		l := github.NewLister(github.WithClient(stubClient(t, mux)))
		_, err := l.ListFiles(context.Background(), "https://github.com/acme/missing")

		require.Error(t, err)
		assert.Equal(t, ragingest.ENOTFOUND, ragingest.ErrorCode(err))
	})

	t.Run("malformed repository URL is invalid", func(t *testing.T) {
		t.Parallel()

		l := github.NewLister()
		_, err := l.ListFiles(context.Background(), "https://github.com/just-owner")

		require.Error(t, err)
		assert.Equal(t, ragingest.EINVALID, ragingest.ErrorCode(err))
	})

	t.Run("accepts bare owner/repo and .git suffix", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		mux.HandleFunc("/repos/acme/widget", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"name":"widget","default_branch":"main"}`)
		})
		mux.HandleFunc("/repos/acme/widget/git/trees/main", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"sha":"abc","tree":[]}`)
		})

		l := github.NewLister(github.WithClient(stubClient(t, mux)))

		tree, err := l.ListFiles(context.Background(), "acme/widget.git")
		require.NoError(t, err)
		assert.Equal(t, "main", tree.Branch)
	})
}
