package main

import (
	"github.com/reusee/bfc/bfconfigs"
	"github.com/reusee/bfc/debugs"
	"github.com/reusee/bfc/interps"
	"github.com/reusee/bfc/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Logs    logs.Module
	Configs bfconfigs.Module
	Interps interps.Module
	Debugs  debugs.Module
}
