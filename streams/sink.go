package streams

import (
	"fmt"
	"io"
)

type flusher interface {
	Flush() error
}

// Sink writes single bytes to a writer. A nil writer discards output.
type Sink struct {
	w   io.Writer
	bw  io.ByteWriter
	buf [1]byte
}

func NewSink(w io.Writer) *Sink {
	s := &Sink{
		w: w,
	}
	if bw, ok := w.(io.ByteWriter); ok {
		s.bw = bw
	}
	return s
}

func (s *Sink) WriteByte(b byte) error {
	if s == nil || s.w == nil {
		return nil
	}
	if s.bw != nil {
		if err := s.bw.WriteByte(b); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		return nil
	}
	s.buf[0] = b
	if _, err := s.w.Write(s.buf[:]); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// Flush flushes the writer if it buffers.
func (s *Sink) Flush() error {
	if s == nil {
		return nil
	}
	if f, ok := s.w.(flusher); ok {
		if err := f.Flush(); err != nil {
			return fmt.Errorf("flush output: %w", err)
		}
	}
	return nil
}
