package streams

import (
	"errors"
	"fmt"
	"io"
)

// Source reads single bytes without buffering beyond the underlying reader.
type Source struct {
	r   io.Reader
	br  io.ByteReader
	buf [1]byte
}

func NewSource(r io.Reader) *Source {
	s := &Source{
		r: r,
	}
	if br, ok := r.(io.ByteReader); ok {
		s.br = br
	}
	return s
}

// ReadByte returns io.EOF when the source is exhausted. A nil source is always exhausted.
func (s *Source) ReadByte() (byte, error) {
	if s == nil || s.r == nil {
		return 0, io.EOF
	}
	if s.br != nil {
		b, err := s.br.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return 0, io.EOF
			}
			return 0, fmt.Errorf("read input: %w", err)
		}
		return b, nil
	}
	if _, err := io.ReadFull(s.r, s.buf[:]); err != nil {
		if errors.Is(err, io.EOF) {
			return 0, io.EOF
		}
		return 0, fmt.Errorf("read input: %w", err)
	}
	return s.buf[0], nil
}
