package ragingest

import "strings"

// DefaultNoisePatterns is the boilerplate table applied by NewFormatter.
// A line whose lowercased text contains any of these substrings is dropped.
func DefaultNoisePatterns() []string {
	return []string{
		"home page", "search", "navigation", "issues", "github", "slack",
		"was this page helpful", "copy", "ask ai", "⌘", "assistant",
		"responses are generated",
	}
}

// DefaultHeadingLabels is the section-label table applied by NewFormatter.
// A line starting with one of these labels (case-insensitive) is promoted
// to a level-2 heading.
func DefaultHeadingLabels() []string {
	return []string{
		"overview", "reserved keywords", "payloadtype", "message keywords",
		"walkthrough",
	}
}

// Formatter removes recurring UI boilerplate from extracted text and
// repairs its Markdown structure. All tables and thresholds are plain
// fields so deployments can tune them and tests can exercise patterns in
// isolation.
type Formatter struct {
	// NoisePatterns are lowercased substrings; matching lines are dropped.
	NoisePatterns []string

	// HeadingLabels are lowercased prefixes promoted to "## " headings.
	HeadingLabels []string

	// TOCRunLength is the minimum number of consecutive short lines
	// treated as navigational scaffolding and dropped as a block.
	TOCRunLength int

	// TOCMaxLineLen and TOCMaxWords define a "short" line: at most
	// TOCMaxLineLen characters, or at most TOCMaxWords words.
	TOCMaxLineLen int
	TOCMaxWords   int
}

// NewFormatter returns a Formatter with the default tables and thresholds.
func NewFormatter() *Formatter {
	return &Formatter{
		NoisePatterns: DefaultNoisePatterns(),
		HeadingLabels: DefaultHeadingLabels(),
		TOCRunLength:  5,
		TOCMaxLineLen: 24,
		TOCMaxWords:   3,
	}
}

// Clean runs the full noise-filtering pipeline: boilerplate and blank lines
// are dropped, consecutive duplicates collapse to one, table-of-contents
// runs are removed, section labels become headings, repeated headings are
// suppressed, and code fences are balanced and relabeled.
// Clean is idempotent on its own output.
func (f *Formatter) Clean(text string) string {
	lines := strings.Split(text, "\n")
	lines = f.dropNoise(lines)
	lines = f.stripTOCRuns(lines)
	lines = f.promoteHeadings(lines)
	return f.rebuildFences(lines)
}

// dropNoise removes blank lines, boilerplate lines, and consecutive
// duplicates.
func (f *Formatter) dropNoise(lines []string) []string {
	var cleaned []string
	prev := ""
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if f.isNoise(trimmed) {
			continue
		}
		if prev != "" && prev == trimmed {
			continue
		}
		cleaned = append(cleaned, line)
		prev = trimmed
	}
	return cleaned
}

func (f *Formatter) isNoise(trimmed string) bool {
	lower := strings.ToLower(trimmed)
	for _, p := range f.NoisePatterns {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

// stripTOCRuns drops runs of at least TOCRunLength consecutive short lines
// outside code fences. Shorter runs are retained verbatim. Headings and
// fence markers never count toward a run.
func (f *Formatter) stripTOCRuns(lines []string) []string {
	var out []string
	var run []string
	inFence := false

	flush := func() {
		if len(run) > 0 && len(run) < f.TOCRunLength {
			out = append(out, run...)
		}
		run = nil
	}

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") {
			flush()
			out = append(out, line)
			inFence = !inFence
			continue
		}
		if !inFence && f.isShort(trimmed) && !strings.HasPrefix(trimmed, "#") {
			run = append(run, line)
			continue
		}
		flush()
		out = append(out, line)
	}
	flush()
	return out
}

func (f *Formatter) isShort(trimmed string) bool {
	if trimmed == "" {
		return false
	}
	return len(trimmed) <= f.TOCMaxLineLen || len(strings.Fields(trimmed)) <= f.TOCMaxWords
}

// promoteHeadings rewrites recognized section labels as level-2 headings
// and suppresses headings that repeat an earlier one in the same document.
func (f *Formatter) promoteHeadings(lines []string) []string {
	var out []string
	seen := make(map[string]bool)
	inFence := false
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") {
			inFence = !inFence
			out = append(out, line)
			continue
		}
		if inFence {
			out = append(out, line)
			continue
		}
		if !strings.HasPrefix(trimmed, "#") && f.isHeadingLabel(trimmed) {
			line = "## " + trimmed
			trimmed = line
		}
		if strings.HasPrefix(trimmed, "#") {
			if seen[trimmed] {
				continue
			}
			seen[trimmed] = true
		}
		out = append(out, line)
	}
	return out
}

func (f *Formatter) isHeadingLabel(trimmed string) bool {
	lower := strings.ToLower(trimmed)
	for _, label := range f.HeadingLabels {
		if strings.HasPrefix(lower, label) {
			return true
		}
	}
	return false
}

// rebuildFences reassembles the document with balanced, labeled code
// fences. Each opening fence is relabeled with a best-effort language guess
// from the block's content, overriding any source label; an unterminated
// trailing fence gains a synthetic close.
func (f *Formatter) rebuildFences(lines []string) string {
	var out []string
	var buffer []string
	inFence := false

	closeFence := func() {
		out = append(out, "```"+DetectCodeLang(strings.Join(buffer, "\n")))
		out = append(out, buffer...)
		out = append(out, "```")
		buffer = nil
		inFence = false
	}

	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			if inFence {
				closeFence()
			} else {
				inFence = true
			}
			continue
		}
		if inFence {
			buffer = append(buffer, line)
		} else {
			out = append(out, line)
		}
	}
	if inFence {
		closeFence()
	}
	return strings.Join(out, "\n")
}

// BalanceFenceParity appends one synthetic closing fence when the text
// contains an odd number of fence markers. Used for passthrough documents
// where the author's fence labels are kept.
func BalanceFenceParity(text string) string {
	count := 0
	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			count++
		}
	}
	if count%2 != 0 {
		return text + "\n```"
	}
	return text
}

// DetectCodeLang guesses a code block's language from its contents.
func DetectCodeLang(block string) string {
	b := strings.ToLower(strings.TrimSpace(block))
	switch {
	case strings.HasPrefix(b, "{") || strings.HasPrefix(b, "["):
		return "json"
	case strings.HasPrefix(b, "$") || strings.HasPrefix(b, "#!") || strings.Contains(b, " sudo "):
		return "bash"
	case strings.Contains(b, "func ") || strings.Contains(b, "package main"):
		return "go"
	case strings.HasPrefix(b, "from ") && (strings.Contains(b, "\nrun ") || strings.Contains(b, "\ncopy ") || strings.Contains(b, "\nentrypoint ")):
		return "dockerfile"
	case strings.Contains(b, "def ") || strings.Contains(b, "import "):
		return "python"
	default:
		return "text"
	}
}
