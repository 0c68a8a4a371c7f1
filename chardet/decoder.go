// Package chardet decodes fetched byte payloads into valid UTF-8 using
// charset detection for pages that do not declare their encoding.
package chardet

import (
	"bytes"
	"io"
	"strings"
	"unicode/utf8"

	chardetlib "github.com/gogs/chardet"
	"github.com/ragtools/ragingest"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/transform"
)

// Ensure Decoder implements ragingest.Decoder at compile time.
var _ ragingest.Decoder = (*Decoder)(nil)

// Decoder converts raw bytes to UTF-8 text. Valid UTF-8 passes through
// unchanged; everything else goes through charset detection and decoding,
// with invalid sequences replaced by U+FFFD as a last resort.
type Decoder struct {
	detector *chardetlib.Detector
}

// NewDecoder creates a new Decoder.
func NewDecoder() *Decoder {
	return &Decoder{detector: chardetlib.NewTextDetector()}
}

// Decode returns the UTF-8 text for data. It never fails: undetectable or
// undecodable input degrades to replacement-character substitution.
func (d *Decoder) Decode(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}

	if res, err := d.detector.DetectBest(data); err == nil {
		if enc, _ := charset.Lookup(res.Charset); enc != nil {
			r := transform.NewReader(bytes.NewReader(data), enc.NewDecoder())
			if decoded, err := io.ReadAll(r); err == nil && utf8.Valid(decoded) {
				return string(decoded)
			}
		}
	}

	return strings.ToValidUTF8(string(data), "�")
}
