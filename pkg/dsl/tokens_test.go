package dsl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenStream_PeekPushBack(t *testing.T) {
	ch := make(chan token, 2)
	ch <- token{0, "a", tIdentifier}
	ch <- token{1, ":", tColon}
	close(ch)
	s := newTokenStream(ch)

	first := s.peek()
	assert.Equal(t, "a", first.Text)
	assert.Equal(t, first, s.next(), "peek should not consume the token")

	sep := s.peek()
	require.Equal(t, tColon, sep.Type)
	s.pushBack(first)
	assert.Equal(t, first, s.next(), "pushed back tokens come out newest first")
	assert.Equal(t, sep, s.next())
	assert.Equal(t, tEof, s.next().Type, "a closed channel reads as end of input")
}

func TestTokenStream_ErrLatch(t *testing.T) {
	ch := make(chan token, 2)
	ch <- token{0, ";", tErr}
	ch <- token{1, "a", tIdentifier}
	close(ch)
	s := newTokenStream(ch)

	bad := s.next()
	require.Equal(t, tErr, bad.Type)
	// Once latched, every read reports the same error token.
	assert.Equal(t, bad, s.peek())
	assert.Equal(t, bad, s.next())
	assert.Equal(t, bad, s.peek())
}

func TestTokenStream_PushBackDepth(t *testing.T) {
	ch := make(chan token)
	close(ch)
	s := newTokenStream(ch)
	s.pushBack(token{0, "a", tIdentifier}, token{1, ":", tColon})
	assert.Panics(t, func() {
		s.pushBack(token{2, "b", tIdentifier})
	})
}
