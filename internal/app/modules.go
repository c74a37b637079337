package app

import (
	"github.com/specialistvlad/rpinject/internal/registry"
	"github.com/specialistvlad/rpinject/modules/junit5"
	"github.com/specialistvlad/rpinject/modules/log4j"
	"github.com/specialistvlad/rpinject/modules/logback"
	"github.com/specialistvlad/rpinject/modules/testng"
)

// coreModules is the definitive list of all setups compiled into the
// rpinject binary, in the order they run.
var coreModules = []registry.Module{
	&junit5.Module{},
	&testng.Module{},
	&logback.Module{},
	&log4j.Module{},
}
