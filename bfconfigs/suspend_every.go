package bfconfigs

import (
	"github.com/reusee/bfc/cmds"
	"github.com/reusee/bfc/configs"
	"github.com/reusee/bfc/vars"
	"github.com/reusee/bfc/vms"
)

var suspendEveryFlag = cmds.Var[int]("-suspend-every")

func (Module) SuspendEvery(
	loader configs.Loader,
) vms.SuspendEvery {
	return vms.SuspendEvery(vars.FirstNonZero(
		*suspendEveryFlag,
		configs.First[int](loader, "suspend_every"),
	))
}
