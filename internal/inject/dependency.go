// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package inject

import (
	"context"

	"github.com/specialistvlad/rpinject/internal/artifact"
	"github.com/specialistvlad/rpinject/internal/ctxlog"
	"github.com/specialistvlad/rpinject/internal/session"
)

// TestScope is the scope injected dependencies are declared with.
const TestScope = "test"

// ProjectDependencies declares each artifact as a test-scoped project
// dependency.
type ProjectDependencies struct {
	Dedupe bool
}

func (d *ProjectDependencies) Kind() Kind { return KindDependency }

func (d *ProjectDependencies) Policy() artifact.Policy { return artifact.PolicyDeclared }

// Inject appends one dependency per artifact.
func (d *ProjectDependencies) Inject(ctx context.Context, sess session.Session, refs []artifact.Ref) (Result, error) {
	logger := ctxlog.FromContext(ctx)

	var res Result
	for _, ref := range refs {
		id := ref.Identity
		id.Scope = TestScope
		if d.Dedupe && sess.Project().HasDependency(id) {
			logger.Debug("Dependency already declared.", "id", id.ID())
			res.Skipped++
			continue
		}
		sess.AddDependency(id)
		res.Applied++
	}
	return res, nil
}
