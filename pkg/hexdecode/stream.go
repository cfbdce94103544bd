package hexdecode

import (
	"iter"

	"github.com/hexbug/hexdecode/pkg/hexast"
)

// Stream hands out parsed iotas one at a time, in source order. It is
// forward-only: once drained it stays empty.
type Stream struct {
	iotas []hexast.Iota
	next  int
}

func newStream(iotas []hexast.Iota) *Stream {
	return &Stream{iotas: iotas}
}

// Next returns the next iota, or false when the stream is exhausted.
func (s *Stream) Next() (hexast.Iota, bool) {
	if s == nil || s.next >= len(s.iotas) {
		return nil, false
	}
	i := s.iotas[s.next]
	s.iotas[s.next] = nil
	s.next++
	return i, true
}

// All returns an iterator that drains the remaining iotas. Breaking out of the
// loop early leaves the rest available to later calls.
func (s *Stream) All() iter.Seq[hexast.Iota] {
	return func(yield func(hexast.Iota) bool) {
		for {
			i, ok := s.Next()
			if !ok || !yield(i) {
				return
			}
		}
	}
}

// Remaining reports how many iotas have not been pulled yet.
func (s *Stream) Remaining() int {
	if s == nil {
		return 0
	}
	return len(s.iotas) - s.next
}
