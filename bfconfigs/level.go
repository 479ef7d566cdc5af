package bfconfigs

import (
	"github.com/reusee/bfc/cmds"
	"github.com/reusee/bfc/configs"
	"github.com/reusee/bfc/lowers"
)

var levelFlag = cmds.Var[*int]("-O")

const DefaultLevel = lowers.LevelClear

func (Module) Level(
	loader configs.Loader,
) lowers.Level {
	// zero is a valid level, so presence matters more than value
	if *levelFlag != nil {
		return lowers.Level(**levelFlag)
	}
	var level int
	if err := loader.AssignFirst("optimization_level", &level); err == nil {
		return lowers.Level(level)
	}
	return DefaultLevel
}
