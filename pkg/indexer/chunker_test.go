package indexer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChunkEmptyText(t *testing.T) {
	assert.Nil(t, Chunk("", 1500, 200))
	assert.Empty(t, Chunk("   \n\t  ", 1500, 200))
}

func TestChunkShortTextSingleChunk(t *testing.T) {
	chunks := Chunk("short article body", 1500, 200)
	assert.Equal(t, []string{"short article body"}, chunks)
}

func TestChunkWindowsOverlap(t *testing.T) {
	text := strings.Repeat("abcdefghij", 30) // 300 runes
	chunks := Chunk(text, 100, 20)

	// Step is 80: windows at 0, 80, 160, 240.
	assert.Len(t, chunks, 4)
	for i := 0; i < len(chunks)-1; i++ {
		assert.Len(t, []rune(chunks[i]), 100)
		// The last 20 runes of one window open the next.
		tail := []rune(chunks[i])[80:]
		assert.True(t, strings.HasPrefix(chunks[i+1], string(tail)))
	}
	assert.Len(t, []rune(chunks[3]), 60)
}

func TestChunkMultibyteRunes(t *testing.T) {
	text := strings.Repeat("市場が大きく動いた。", 30) // 300 runes
	chunks := Chunk(text, 100, 0)

	assert.Len(t, chunks, 3)
	for _, c := range chunks {
		assert.Len(t, []rune(c), 100)
	}
}

func TestChunkBadParametersFallBack(t *testing.T) {
	text := strings.Repeat("x", 3000)
	assert.NotEmpty(t, Chunk(text, 0, 0), "zero size uses default")
	assert.NotEmpty(t, Chunk(text, 100, 100), "overlap >= size is corrected")
	assert.NotEmpty(t, Chunk(text, 100, -5), "negative overlap is corrected")
}
