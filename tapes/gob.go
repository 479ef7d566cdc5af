package tapes

import (
	"bytes"
	"encoding/gob"
)

type gobTape struct {
	Storage []byte
	Origin  int
	Cursor  int
}

func (t *Tape) GobEncode() ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := gob.NewEncoder(buf).Encode(gobTape{
		Storage: t.storage,
		Origin:  t.origin,
		Cursor:  t.cursor,
	}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (t *Tape) GobDecode(data []byte) error {
	var v gobTape
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&v); err != nil {
		return err
	}
	t.storage = v.Storage
	t.origin = v.Origin
	t.cursor = v.Cursor
	return t.Check()
}
