package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/turing/debugs"
	"github.com/reusee/turing/displays"
	"github.com/reusee/turing/drivers"
	"github.com/reusee/turing/loaders"
	"github.com/reusee/turing/logs"
	"github.com/reusee/turing/nets"
	"github.com/reusee/turing/turingconfigs"
)

type Module struct {
	dscope.Module
	Logs     logs.Module
	Configs  turingconfigs.Module
	Nets     nets.Module
	Loaders  loaders.Module
	Drivers  drivers.Module
	Displays displays.Module
	Debugs   debugs.Module
}
