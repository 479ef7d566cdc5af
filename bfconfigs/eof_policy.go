package bfconfigs

import (
	"github.com/reusee/bfc/cmds"
	"github.com/reusee/bfc/configs"
	"github.com/reusee/bfc/streams"
	"github.com/reusee/bfc/vars"
)

var eofFlag = cmds.Var[string]("-eof")

func (Module) EOFPolicy(
	loader configs.Loader,
) streams.EOFPolicy {
	// not validated here, see streams.ParseEOFPolicy
	return vars.FirstNonZero(
		streams.EOFPolicy(*eofFlag),
		configs.First[streams.EOFPolicy](loader, "eof_policy"),
		streams.EOFFail,
	)
}

// EOFFlag is the -eof value, empty when not given on the command line.
func EOFFlag() streams.EOFPolicy {
	return streams.EOFPolicy(*eofFlag)
}
