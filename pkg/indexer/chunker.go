// Package indexer writes article text into the pgvector-backed chunk store:
// text is windowed into overlapping chunks, embedded in one batch, and the
// chunk set for a source is replaced atomically.
package indexer

import "strings"

// Chunk splits text into rune windows of the given size with the given
// overlap between adjacent windows. Whitespace-only windows are dropped.
// A non-positive size or an overlap >= size falls back to sane values.
func Chunk(text string, size, overlap int) []string {
	if size <= 0 {
		size = 1500
	}
	if overlap < 0 || overlap >= size {
		overlap = size / 8
	}

	runes := []rune(text)
	if len(runes) == 0 {
		return nil
	}

	step := size - overlap
	chunks := make([]string, 0, len(runes)/step+1)
	for start := 0; start < len(runes); start += step {
		end := min(start+size, len(runes))
		window := strings.TrimSpace(string(runes[start:end]))
		if window != "" {
			chunks = append(chunks, window)
		}
		if end == len(runes) {
			break
		}
	}
	return chunks
}
