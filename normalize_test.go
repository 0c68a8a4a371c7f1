package ragingest_test

import (
	"testing"

	"github.com/ragtools/ragingest"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeWhitespace(t *testing.T) {
	t.Parallel()

	t.Run("converts CRLF and CR to LF", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "a\nb\nc", ragingest.NormalizeWhitespace("a\r\nb\rc"))
	})

	t.Run("strips trailing horizontal whitespace", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "a\nb", ragingest.NormalizeWhitespace("a  \t\nb"))
	})

	t.Run("collapses blank-line runs to one blank line", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "a\n\nb", ragingest.NormalizeWhitespace("a\n\n\n\n\nb"))
	})

	t.Run("trims the whole text", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "a", ragingest.NormalizeWhitespace("\n\n  a  \n\n"))
	})
}

func TestIsProbablyBinary(t *testing.T) {
	t.Parallel()

	assert.True(t, ragingest.IsProbablyBinary("https://x.test/logo.PNG"))
	assert.True(t, ragingest.IsProbablyBinary("archive.tar"))
	assert.True(t, ragingest.IsProbablyBinary("lib.so"))
	assert.False(t, ragingest.IsProbablyBinary("https://x.test/docs/page.html"))
	assert.False(t, ragingest.IsProbablyBinary("main.go"))
}

func TestHasDocExt(t *testing.T) {
	t.Parallel()

	assert.True(t, ragingest.HasDocExt("https://x.test/readme.md"))
	assert.True(t, ragingest.HasDocExt("notes.TXT"))
	assert.False(t, ragingest.HasDocExt("https://x.test/api/users"))
}

func TestClassifyRepoFile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		kind ragingest.Kind
		keep bool
	}{
		{"README.md", ragingest.KindDoc, true},
		{"docs/guide.html", ragingest.KindDoc, true},
		{"cmd/app/main.go", ragingest.KindCode, true},
		{"config.yaml", ragingest.KindCode, true},
		{"Dockerfile", ragingest.KindCode, true},
		{"nested/Dockerfile", "", false},
		{"assets/logo.png", "", false},
		{"LICENSE", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			kind, keep := ragingest.ClassifyRepoFile(tt.path)

			assert.Equal(t, tt.keep, keep)
			if tt.keep {
				assert.Equal(t, tt.kind, kind)
			}
		})
	}
}
