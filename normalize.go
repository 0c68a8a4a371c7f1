package ragingest

import (
	"path"
	"regexp"
	"strings"
)

var (
	trailingWS = regexp.MustCompile(`[ \t]+\n`)
	blankRuns  = regexp.MustCompile(`\n{3,}`)
)

// NormalizeWhitespace canonicalizes line endings and whitespace:
// CRLF/CR become LF, trailing horizontal whitespace before a newline is
// removed, runs of three or more newlines collapse to exactly one blank
// line, and the whole text is trimmed.
func NormalizeWhitespace(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = trailingWS.ReplaceAllString(s, "\n")
	s = blankRuns.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}

// binaryExts are file extensions excluded before any fetch or decode is
// attempted.
var binaryExts = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true, ".bmp": true,
	".svg": true, ".ico": true, ".webp": true, ".pdf": true, ".zip": true,
	".tar": true, ".gz": true, ".7z": true, ".mp3": true, ".mp4": true,
	".mov": true, ".avi": true, ".mkv": true, ".exe": true, ".dll": true,
	".so": true,
}

// docExts are extensions treated as document content.
var docExts = map[string]bool{
	".md": true, ".markdown": true, ".html": true, ".htm": true, ".txt": true,
}

// codeExts are extensions treated as source-code content in git mode.
var codeExts = map[string]bool{
	".py": true, ".js": true, ".ts": true, ".tsx": true, ".jsx": true,
	".go": true, ".rs": true, ".c": true, ".h": true, ".cpp": true,
	".hpp": true, ".java": true, ".kt": true, ".rb": true, ".php": true,
	".sh": true, ".ps1": true, ".cs": true, ".scala": true, ".swift": true,
	".lua": true, ".pl": true, ".sql": true, ".yaml": true, ".yml": true,
	".toml": true, ".ini": true, ".json": true, ".gradle": true,
	".make": true, ".mk": true, ".dockerfile": true,
}

func extOf(p string) string {
	return strings.ToLower(path.Ext(p))
}

// IsProbablyBinary reports whether the path or URL has a known binary
// extension.
func IsProbablyBinary(p string) bool {
	return binaryExts[extOf(p)]
}

// HasDocExt reports whether the path or URL has a recognized document
// extension.
func HasDocExt(p string) bool {
	return docExts[extOf(p)]
}

// ClassifyRepoFile maps a repository file path to a content kind.
// The second result is false for files that should be skipped entirely
// (binaries and unrecognized extensions). A bare "Dockerfile" at the
// repository root counts as code.
func ClassifyRepoFile(p string) (Kind, bool) {
	lower := strings.ToLower(p)
	if IsProbablyBinary(lower) {
		return "", false
	}
	ext := extOf(lower)
	if docExts[ext] {
		return KindDoc, true
	}
	if codeExts[ext] || (ext == "" && !strings.Contains(lower, "/") && lower == "dockerfile") {
		return KindCode, true
	}
	return "", false
}
