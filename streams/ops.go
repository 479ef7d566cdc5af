package streams

import (
	"errors"
	"fmt"
	"io"

	"github.com/reusee/bfc/tapes"
)

// Output emits the current cell.
func Output(tape *tapes.Tape, sink *Sink) error {
	return sink.WriteByte(tape.Read())
}

// Input reads one byte into the current cell. Buffered output is flushed first
// so prompts are visible before blocking.
func Input(tape *tapes.Tape, source *Source, sink *Sink, policy EOFPolicy) error {
	if err := sink.Flush(); err != nil {
		return err
	}
	b, err := source.ReadByte()
	if errors.Is(err, io.EOF) {
		switch policy {
		case EOFZero:
			tape.Write(0)
			return nil
		case EOFKeep:
			tape.EnsureCapacity()
			return nil
		case EOFMax:
			tape.Write(0xff)
			return nil
		case EOFFail, "":
			return ErrInputExhausted
		}
		return fmt.Errorf("%w: %q", ErrBadEOFPolicy, policy)
	}
	if err != nil {
		return err
	}
	tape.Write(b)
	return nil
}
