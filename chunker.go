package ragingest

import "strings"

// ChunkOptions configures the sliding-window chunker.
type ChunkOptions struct {
	// MaxChars is the maximum fragment size for prose. Fenced code blocks
	// may exceed it; they are never split.
	MaxChars int

	// Overlap is how far the next window reaches back behind the previous
	// cut point. Must be smaller than MaxChars for overlapping windows;
	// any value is tolerated, forward progress is guaranteed regardless.
	Overlap int

	// MinBreak is the minimum distance from the window start at which a
	// paragraph break may become the cut point. Zero means MaxChars/4.
	MinBreak int
}

// DocsChunkOptions returns the preset for document text: a larger window
// for more context per fragment.
func DocsChunkOptions() ChunkOptions {
	return ChunkOptions{MaxChars: 1200, Overlap: 150}
}

// CodeChunkOptions returns the preset for source-code text: a tighter
// window, since code semantics are denser per character.
func CodeChunkOptions() ChunkOptions {
	return ChunkOptions{MaxChars: 800, Overlap: 100}
}

// fenceSpan is a byte range covering a fenced code block, from the opening
// fence line to the end of the closing fence line. An unterminated fence
// extends to the end of input.
type fenceSpan struct {
	start, end int
}

// fenceSpans scans text line by line with a two-state machine
// (prose | code block) and returns the byte ranges of all fenced blocks.
func fenceSpans(s string) []fenceSpan {
	var spans []fenceSpan
	inFence := false
	fenceStart := 0
	offset := 0
	for offset <= len(s) {
		lineEnd := strings.IndexByte(s[offset:], '\n')
		var next int
		if lineEnd == -1 {
			lineEnd = len(s)
			next = len(s) + 1
		} else {
			lineEnd += offset
			next = lineEnd + 1
		}
		line := strings.TrimSpace(s[offset:lineEnd])
		if strings.HasPrefix(line, "```") {
			if inFence {
				spans = append(spans, fenceSpan{start: fenceStart, end: min(next, len(s))})
				inFence = false
			} else {
				inFence = true
				fenceStart = offset
			}
		}
		offset = next
	}
	if inFence {
		// Unterminated trailing fence: flushed whole at end of input.
		spans = append(spans, fenceSpan{start: fenceStart, end: len(s)})
	}
	return spans
}

// fenceAround returns the fence span whose interior contains pos, if any.
// Positions exactly at a span boundary are valid cut points.
func fenceAround(spans []fenceSpan, pos int) (fenceSpan, bool) {
	for _, f := range spans {
		if f.start < pos && pos < f.end {
			return f, true
		}
	}
	return fenceSpan{}, false
}

// lastParagraphBreak returns the cut position of the last blank-line
// boundary in s[lo:hi] that does not fall inside a fenced block.
// Returns -1 if there is none.
func lastParagraphBreak(s string, lo, hi int, spans []fenceSpan) int {
	if lo < 0 {
		lo = 0
	}
	if hi > len(s) {
		hi = len(s)
	}
	for i := hi; i > lo; {
		p := strings.LastIndex(s[lo:i], "\n\n")
		if p == -1 {
			return -1
		}
		p += lo
		if _, in := fenceAround(spans, p); !in {
			return p
		}
		i = p
	}
	return -1
}

// ChunkText splits text into bounded, overlapping fragments.
//
// Prose is chunked by a sliding window: the candidate cut is start+MaxChars,
// pulled back to the last paragraph break in the window when one exists at
// least MinBreak past the start. Fenced code blocks are atomic: a window
// never cuts inside one, and a block larger than MaxChars is emitted as a
// single oversized fragment. The next window starts Overlap characters
// before the cut; if that would stall or regress, the window advances by the
// full MaxChars instead, so the chunker terminates on every input.
// Consecutive fragments with identical trimmed text are collapsed.
func ChunkText(s string, opts ChunkOptions) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if opts.MaxChars <= 0 {
		opts = DocsChunkOptions()
	}
	minBreak := opts.MinBreak
	if minBreak <= 0 {
		minBreak = opts.MaxChars / 4
	}

	spans := fenceSpans(s)
	n := len(s)
	var chunks []string

	emit := func(fragment string) {
		fragment = strings.TrimSpace(fragment)
		if fragment == "" {
			return
		}
		if len(chunks) > 0 && chunks[len(chunks)-1] == fragment {
			return
		}
		chunks = append(chunks, fragment)
	}

	start := 0
	for start < n {
		end := start + opts.MaxChars
		if end >= n {
			emit(s[start:n])
			break
		}

		if f, in := fenceAround(spans, end); in {
			// The window would cut inside a fenced block.
			if f.start > start {
				// Cut just before the fence; the block starts its
				// own fragment. No overlap back across the boundary.
				emit(s[start:f.start])
				start = f.start
			} else {
				// The window begins at the fence: flush the whole
				// block as one fragment regardless of size.
				emit(s[start:f.end])
				start = f.end
			}
			continue
		}

		cut := end
		if p := lastParagraphBreak(s, start+minBreak, end, spans); p != -1 {
			cut = p
		}
		emit(s[start:cut])

		next := cut - opts.Overlap
		if next <= start {
			next = start + opts.MaxChars
		}
		// Overlap must not reach back into a fenced block that was
		// already flushed whole.
		if f, in := fenceAround(spans, next); in {
			next = f.end
		}
		start = next
	}

	return chunks
}

// ChunkRecord splits a page record's text with the preset matching its
// kind and returns ordered chunks.
func ChunkRecord(rec *PageRecord, mode Mode) []*Chunk {
	opts := DocsChunkOptions()
	if rec.Kind == KindCode {
		opts = CodeChunkOptions()
	}
	fragments := ChunkText(rec.Text, opts)
	chunks := make([]*Chunk, 0, len(fragments))
	for i, text := range fragments {
		chunks = append(chunks, &Chunk{
			Source:     rec.Origin,
			StoredPath: rec.StoredPath,
			Index:      i,
			Text:       text,
			Kind:       rec.Kind,
			Mode:       mode,
			Title:      rec.Title,
		})
	}
	return chunks
}
