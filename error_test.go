package ragingest_test

import (
	"errors"
	"testing"

	"github.com/ragtools/ragingest"
	"github.com/stretchr/testify/assert"
)

func TestErrorCode(t *testing.T) {
	t.Parallel()

	t.Run("nil error has no code", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "", ragingest.ErrorCode(nil))
	})

	t.Run("application error returns its code", func(t *testing.T) {
		t.Parallel()

		err := ragingest.Errorf(ragingest.ENOTFOUND, "page %q not found", "x")

		assert.Equal(t, ragingest.ENOTFOUND, ragingest.ErrorCode(err))
	})

	t.Run("foreign error is internal", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, ragingest.EINTERNAL, ragingest.ErrorCode(errors.New("boom")))
	})
}

func TestErrorMessage(t *testing.T) {
	t.Parallel()

	t.Run("application error returns its message", func(t *testing.T) {
		t.Parallel()

		err := ragingest.Errorf(ragingest.EINVALID, "bad url")

		assert.Equal(t, "bad url", ragingest.ErrorMessage(err))
	})

	t.Run("foreign error is masked", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "Internal error.", ragingest.ErrorMessage(errors.New("boom")))
	})
}
