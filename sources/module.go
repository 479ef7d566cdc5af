package sources

import (
	"io"
	"os"

	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
}

// Stdin is read when the source reference is "-".
type Stdin io.Reader

func (Module) Stdin() Stdin {
	return os.Stdin
}
