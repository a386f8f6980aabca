package dsl

// pushBackDepth is the deepest the parser ever stacks: a peeked separator
// plus the identifier pushed back in front of it when a key turns out to be
// a function call.
const pushBackDepth = 2

// tokenStream buffers tokens from the lexer channel, allowing the parser to
// peek and push back. Once an error token is seen it is latched, and the rest
// of the channel is drained so the lexer goroutine can exit.
type tokenStream struct {
	ch  <-chan token
	buf [pushBackDepth]token
	idx int
	err *token
}

func newTokenStream(ch <-chan token) *tokenStream {
	return &tokenStream{
		ch: ch,
	}
}

func (s *tokenStream) peek() token {
	if s.err != nil {
		return *s.err
	}
	t := s.next()
	s.pushBack(t)
	return t
}

func (s *tokenStream) next() token {
	if s.err != nil {
		return *s.err
	}
	if s.idx > 0 {
		s.idx--
		return s.buf[s.idx]
	}
	t, ok := <-s.ch
	if !ok {
		return token{Type: tEof}
	}
	if t.Type == tErr {
		s.err = &t
		go func() {
			for range s.ch {
			}
		}()
		return t
	}
	return t
}

func (s *tokenStream) pushBack(tokens ...token) {
	for _, t := range tokens {
		if s.idx == pushBackDepth {
			panic("token pushed back past the grammar's lookahead depth")
		}
		s.buf[s.idx] = t
		s.idx++
	}
}
