package tapes

import "errors"

var ErrCorrupted = errors.New("tape corrupted")
