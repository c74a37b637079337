// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package descriptor

import (
	"path/filepath"

	"github.com/specialistvlad/rpinject/internal/artifact"
	"github.com/specialistvlad/rpinject/internal/configtree"
)

// ConfigurationName is the node name of every configuration tree root.
const ConfigurationName = "configuration"

// Project is a loaded build descriptor.
type Project struct {
	Group               string
	Artifact            string
	Version             string
	BuildDirectory      string
	TestOutputDirectory string

	Dependencies []artifact.Identity
	Plugins      []*Plugin

	// Source is the absolute path the project was loaded from, if any.
	Source string
}

// Plugin is a build plugin declaration.
type Plugin struct {
	Coordinates artifact.Identity
	// Configuration is nil when the descriptor declares none.
	Configuration *configtree.Node
	Executions    []*Execution
}

// Execution binds plugin goals to a lifecycle phase, optionally with its own
// configuration.
type Execution struct {
	ID            string
	Phase         string
	Goals         []string
	Configuration *configtree.Node
}

// Identity returns the project's own coordinates.
func (p *Project) Identity() artifact.Identity {
	return artifact.Identity{Group: p.Group, Artifact: p.Artifact, Version: p.Version}
}

// Dir returns the directory relative paths in the descriptor resolve
// against: the source file's directory, or "." for in-memory projects.
func (p *Project) Dir() string {
	if p.Source == "" {
		return "."
	}
	return filepath.Dir(p.Source)
}

// PluginsByKey returns every plugin declared under key (group:artifact), in
// declaration order.
func (p *Project) PluginsByKey(key string) []*Plugin {
	var out []*Plugin
	for _, pl := range p.Plugins {
		if pl.Coordinates.Key() == key {
			out = append(out, pl)
		}
	}
	return out
}

// FindPlugin returns the first plugin declared under key, or nil.
func (p *Project) FindPlugin(key string) *Plugin {
	for _, pl := range p.Plugins {
		if pl.Coordinates.Key() == key {
			return pl
		}
	}
	return nil
}

// AddPlugin appends a plugin declaration without configuration.
func (p *Project) AddPlugin(id artifact.Identity) *Plugin {
	pl := &Plugin{Coordinates: id}
	p.Plugins = append(p.Plugins, pl)
	return pl
}

// HasDependency reports whether a dependency with the same coordinates
// (ignoring scope) is already declared.
func (p *Project) HasDependency(id artifact.Identity) bool {
	for _, d := range p.Dependencies {
		if sameCoordinates(d, id) {
			return true
		}
	}
	return false
}

// AddDependency appends id to the declared dependencies.
func (p *Project) AddDependency(id artifact.Identity) {
	p.Dependencies = append(p.Dependencies, id)
}

func sameCoordinates(a, b artifact.Identity) bool {
	a.Scope, b.Scope = "", ""
	return a == b
}

// FindExecution returns the execution with the given id, or nil.
func (pl *Plugin) FindExecution(id string) *Execution {
	for _, e := range pl.Executions {
		if e.ID == id {
			return e
		}
	}
	return nil
}

// ExecutionForPhase returns the first execution bound to phase, or nil.
func (pl *Plugin) ExecutionForPhase(phase string) *Execution {
	for _, e := range pl.Executions {
		if e.Phase == phase {
			return e
		}
	}
	return nil
}

// AddExecution appends an execution with no goals or configuration.
func (pl *Plugin) AddExecution(id, phase string) *Execution {
	e := &Execution{ID: id, Phase: phase}
	pl.Executions = append(pl.Executions, e)
	return e
}

// EnsureConfiguration returns the plugin's configuration, creating an empty
// one when it has none.
func (pl *Plugin) EnsureConfiguration() *configtree.Node {
	if pl.Configuration == nil {
		pl.Configuration = configtree.New(ConfigurationName)
	}
	return pl.Configuration
}

// EnsureConfiguration returns the execution's configuration, creating an
// empty one when it has none.
func (e *Execution) EnsureConfiguration() *configtree.Node {
	if e.Configuration == nil {
		e.Configuration = configtree.New(ConfigurationName)
	}
	return e.Configuration
}
