package tapes

import (
	"bytes"
	"fmt"
)

// Tape is a byte store addressed by a signed cursor. Storage grows lazily in
// either direction when an address is accessed and never shrinks.
//
// Logical address a lives at storage[a+origin].
type Tape struct {
	storage []byte
	origin  int
	cursor  int
}

func New() *Tape {
	return &Tape{}
}

func (t *Tape) Advance() {
	t.cursor++
}

func (t *Tape) Retreat() {
	t.cursor--
}

// AdvanceBy is n consecutive Advance calls.
func (t *Tape) AdvanceBy(n int) {
	t.cursor += n
}

// RetreatBy is n consecutive Retreat calls.
func (t *Tape) RetreatBy(n int) {
	t.cursor -= n
}

// EnsureCapacity materializes the cell under the cursor.
func (t *Tape) EnsureCapacity() {
	index := t.cursor + t.origin

	switch {

	case index < 0:
		// extend leftward: shift everything right by deficit and zero the gap
		deficit := -index
		size := len(t.storage)
		t.storage = append(t.storage, make([]byte, deficit)...)
		copy(t.storage[deficit:], t.storage[:size])
		clear(t.storage[:deficit])
		t.origin += deficit

	case index >= len(t.storage):
		t.storage = append(t.storage, make([]byte, index+1-len(t.storage))...)

	}
}

func (t *Tape) Read() byte {
	t.EnsureCapacity()
	return t.storage[t.cursor+t.origin]
}

func (t *Tape) Write(value byte) {
	t.EnsureCapacity()
	t.storage[t.cursor+t.origin] = value
}

// Add adds delta to the current cell modulo 256.
func (t *Tape) Add(delta byte) {
	t.Write(t.Read() + delta)
}

func (t *Tape) Increment() {
	t.Add(1)
}

func (t *Tape) Decrement() {
	t.Add(0xff)
}

func (t *Tape) Cursor() int {
	return t.cursor
}

func (t *Tape) Origin() int {
	return t.origin
}

func (t *Tape) Len() int {
	return len(t.storage)
}

// Cell returns the value at a logical address without growing the tape.
func (t *Tape) Cell(addr int) byte {
	index := addr + t.origin
	if index < 0 || index >= len(t.storage) {
		return 0
	}
	return t.storage[index]
}

// Cells returns a copy of the materialized storage and the logical address of
// its first byte.
func (t *Tape) Cells() (cells []byte, first int) {
	return bytes.Clone(t.storage), -t.origin
}

func (t *Tape) Equal(other *Tape) bool {
	return t.cursor == other.cursor &&
		t.origin == other.origin &&
		bytes.Equal(t.storage, other.storage)
}

func (t *Tape) String() string {
	return fmt.Sprintf("tape{cursor=%d origin=%d len=%d}", t.cursor, t.origin, len(t.storage))
}

// Check validates the structural invariant. It holds at any time.
func (t *Tape) Check() error {
	if t.origin < 0 {
		return fmt.Errorf("%w: negative origin %d", ErrCorrupted, t.origin)
	}
	if t.origin > len(t.storage) {
		return fmt.Errorf("%w: origin %d beyond storage length %d", ErrCorrupted, t.origin, len(t.storage))
	}
	return nil
}

// CheckCursor validates that the cursor maps inside storage. It holds right
// after any access.
func (t *Tape) CheckCursor() error {
	if err := t.Check(); err != nil {
		return err
	}
	index := t.cursor + t.origin
	if index < 0 || index >= len(t.storage) {
		return fmt.Errorf("%w: cursor %d maps to index %d outside [0, %d)", ErrCorrupted, t.cursor, index, len(t.storage))
	}
	return nil
}
