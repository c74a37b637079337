// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package inject

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/specialistvlad/rpinject/internal/artifact"
	"github.com/specialistvlad/rpinject/internal/ctxlog"
	"github.com/specialistvlad/rpinject/internal/session"
)

const (
	// ElementsName is the configuration child holding extra classpath
	// entries.
	ElementsName = "additionalClasspathElements"
	// ElementName is the name of each entry inside ElementsName.
	ElementName = "additionalClasspathElement"
)

// ClasspathElements adds each artifact's file to the test runner's
// additional classpath.
type ClasspathElements struct {
	Target Target
	Dedupe bool
}

func (c *ClasspathElements) Kind() Kind { return KindClasspath }

func (c *ClasspathElements) Policy() artifact.Policy { return artifact.PolicyGroup }

// Inject finds (or declares) the target runner, its execution for the test
// phase and that execution's configuration, then appends one classpath
// element per artifact.
func (c *ClasspathElements) Inject(ctx context.Context, sess session.Session, refs []artifact.Ref) (Result, error) {
	logger := ctxlog.FromContext(ctx)

	plugin := sess.EnsureComponent(c.Target.Identity)
	exec := plugin.ExecutionForPhase(c.Target.Phase)
	if exec == nil {
		logger.Debug("Declaring test execution.", "plugin", plugin.Coordinates.Key(), "id", c.Target.ExecutionID, "phase", c.Target.Phase)
		exec = plugin.AddExecution(c.Target.ExecutionID, c.Target.Phase)
	}
	elements := exec.EnsureConfiguration().FindOrAddChild(ElementsName)

	present := make(map[string]struct{})
	for _, v := range elements.Values(ElementName) {
		present[v] = struct{}{}
	}

	var res Result
	for _, ref := range refs {
		if ref.File == "" {
			return res, fmt.Errorf("artifact %s has no resolved file", ref)
		}
		path, err := filepath.Abs(ref.File)
		if err != nil {
			return res, fmt.Errorf("failed to resolve path of artifact %s: %w", ref, err)
		}
		if _, dup := present[path]; dup && c.Dedupe {
			logger.Debug("Classpath element already present.", "path", path)
			res.Skipped++
			continue
		}
		elements.AddChild(ElementName, path)
		present[path] = struct{}{}
		res.Applied++
	}
	return res, nil
}
