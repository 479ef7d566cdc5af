package modes

import (
	"context"
	"testing"

	"github.com/reusee/bfc/cmds"
	"github.com/reusee/dscope"
)

type ModuleForProduction struct {
	dscope.Module
}

func ForProduction() ModuleForProduction {
	return ModuleForProduction{}
}

var devFlag = cmds.Switch("-dev")

func init() {
	cmds.Describe("-dev", "check tape invariants after every instruction")
}

func (ModuleForProduction) T() *testing.T {
	return nil
}

func (ModuleForProduction) Mode() Mode {
	if *devFlag {
		return ModeDevelopment
	}
	return ModeProduction
}

func (ModuleForProduction) Context() context.Context {
	return context.Background()
}
