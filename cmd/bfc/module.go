package main

import (
	"github.com/reusee/bfc/bfconfigs"
	"github.com/reusee/bfc/debugs"
	"github.com/reusee/bfc/emits"
	"github.com/reusee/bfc/interps"
	"github.com/reusee/bfc/logs"
	"github.com/reusee/bfc/nets"
	"github.com/reusee/bfc/sources"
	"github.com/reusee/bfc/vms"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Logs    logs.Module
	Configs bfconfigs.Module
	Nets    nets.Module
	Sources sources.Module
	Interps interps.Module
	VMs     vms.Module
	Emits   emits.Module
	Debugs  debugs.Module
}
