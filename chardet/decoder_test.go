package chardet_test

import (
	"testing"
	"unicode/utf8"

	"github.com/ragtools/ragingest/chardet"
	"github.com/stretchr/testify/assert"
)

func TestDecoder_Decode(t *testing.T) {
	t.Parallel()

	t.Run("valid UTF-8 passes through", func(t *testing.T) {
		t.Parallel()

		d := chardet.NewDecoder()

		assert.Equal(t, "héllo wörld", d.Decode([]byte("héllo wörld")))
	})

	t.Run("latin-1 text is decoded", func(t *testing.T) {
		t.Parallel()

		d := chardet.NewDecoder()
		// "café résumé déjà vu" in ISO-8859-1.
		data := []byte("caf\xe9 r\xe9sum\xe9 d\xe9j\xe0 vu, voil\xe0 une phrase assez longue pour la d\xe9tection")

		got := d.Decode(data)

		assert.True(t, utf8.ValidString(got))
		assert.Contains(t, got, "caf")
	})

	t.Run("garbage degrades to replacement characters", func(t *testing.T) {
		t.Parallel()

		d := chardet.NewDecoder()

		got := d.Decode([]byte{0xff, 0xfe, 0xfd, 0x00, 0x01})

		assert.True(t, utf8.ValidString(got))
	})

	t.Run("empty input yields empty output", func(t *testing.T) {
		t.Parallel()

		d := chardet.NewDecoder()

		assert.Equal(t, "", d.Decode(nil))
	})
}
