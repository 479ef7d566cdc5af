package bfconfigs

import (
	"os"

	"github.com/reusee/bfc/cmds"
	"github.com/reusee/bfc/configs"
	"github.com/reusee/bfc/emits"
	"github.com/reusee/bfc/vars"
)

var ccFlag = cmds.Var[string]("-cc")

func (Module) CCompiler(
	loader configs.Loader,
) emits.CCompiler {
	return vars.FirstNonZero(
		emits.CCompiler(*ccFlag),
		configs.First[emits.CCompiler](loader, "cc"),
		emits.CCompiler(os.Getenv("CC")),
		emits.DefaultCCompiler,
	)
}
