package bfconfigs

import (
	"github.com/reusee/bfc/cmds"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
}

func init() {
	cmds.Describe("-config", "load a config file before the default locations")
	cmds.Describe("-eof", "input exhaustion policy: fail, zero, keep or max")
	cmds.Describe("-O", "optimization level, 0 to 3")
	cmds.Describe("-cc", "C compiler command")
	cmds.Describe("-suspend-every", "opcode machine steps between suspend points")
}
