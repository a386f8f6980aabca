package dsl

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLexBuf_ReadUnread(t *testing.T) {
	b := newLexBufSize(strings.NewReader("ab:"), 8)

	c, err := b.read()
	require.NoError(t, err)
	assert.Equal(t, 'a', c)
	assert.Equal(t, 1, b.off)

	c, err = b.read()
	require.NoError(t, err)
	assert.Equal(t, 'b', c)
	assert.Equal(t, "ab", b.preview())

	b.unread()
	assert.Equal(t, 1, b.off)
	assert.Equal(t, "a", b.preview())

	c, err = b.read()
	require.NoError(t, err)
	assert.Equal(t, 'b', c)
	assert.Equal(t, "ab", b.consume())
	assert.Equal(t, "", b.preview())

	c, err = b.read()
	require.NoError(t, err)
	assert.Equal(t, ':', c)
	assert.Equal(t, ":", b.consume())

	_, err = b.read()
	assert.Equal(t, io.EOF, err)
	assert.Equal(t, 3, b.off)
}

func TestLexBuf_Peek(t *testing.T) {
	b := newLexBufSize(strings.NewReader("x"), 8)
	c, err := b.peek()
	require.NoError(t, err)
	assert.Equal(t, 'x', c)
	assert.Equal(t, 0, b.off, "peek should not advance the offset")

	_, err = b.read()
	require.NoError(t, err)
	_, err = b.peek()
	assert.Equal(t, io.EOF, err)
}

func TestLexBuf_Wrap(t *testing.T) {
	text := strings.Repeat("a", 10)
	b := newLexBufSize(strings.NewReader(text+text), 8)
	for i := 0; i < 10; i++ {
		_, err := b.read()
		require.NoError(t, err)
	}
	// The ring is smaller than what was read, so only the newest runes
	// survive for preview.
	assert.Equal(t, strings.Repeat("a", 7), b.preview())
}
