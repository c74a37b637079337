// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package inject

import (
	"context"
	"fmt"

	"github.com/specialistvlad/rpinject/internal/artifact"
	"github.com/specialistvlad/rpinject/internal/ctxlog"
	"github.com/specialistvlad/rpinject/internal/descriptor"
	"github.com/specialistvlad/rpinject/internal/session"
)

// Resolve picks the strategy for mode. Auto mode uses the first supported
// target the project declares and copies when there is none. Classpath mode
// without a declared target falls back to the first table entry, which the
// strategy then declares.
func Resolve(mode Mode, project *descriptor.Project, opts Options) (Strategy, error) {
	switch mode {
	case ModeAuto:
		if t, ok := firstDeclaredTarget(project); ok {
			return newStrategy(t.Kind, t, opts), nil
		}
		return &PhysicalCopy{}, nil
	case ModeClasspath:
		t, ok := firstDeclaredTarget(project)
		if !ok {
			t = Targets[0]
		}
		return &ClasspathElements{Target: t, Dedupe: opts.Dedupe}, nil
	case ModeDependency:
		return &ProjectDependencies{Dedupe: opts.Dedupe}, nil
	case ModeCopy:
		return &PhysicalCopy{}, nil
	}
	return nil, fmt.Errorf("invalid injection mode %q", mode)
}

func newStrategy(kind Kind, t Target, opts Options) Strategy {
	switch kind {
	case KindDependency:
		return &ProjectDependencies{Dedupe: opts.Dedupe}
	case KindCopy:
		return &PhysicalCopy{}
	}
	return &ClasspathElements{Target: t, Dedupe: opts.Dedupe}
}

func firstDeclaredTarget(project *descriptor.Project) (Target, bool) {
	for _, t := range Targets {
		if project.FindPlugin(t.Identity.Key()) != nil {
			return t, true
		}
	}
	return Target{}, false
}

// Run resolves the strategy for mode, selects the eligible artifacts with
// the strategy's policy and injects them.
func Run(ctx context.Context, sess session.Session, mode Mode, opts Options) (Result, error) {
	logger := ctxlog.FromContext(ctx)

	strategy, err := Resolve(mode, sess.Project(), opts)
	if err != nil {
		return Result{}, err
	}

	refs := artifact.Select(sess.PluginArtifacts(), sess.PluginDependencies(), sess.Self(), strategy.Policy())
	logger.Debug("Artifacts selected for injection.",
		"strategy", strategy.Kind().String(),
		"policy", strategy.Policy().String(),
		"count", len(refs),
		"artifacts", refs,
	)
	if len(refs) == 0 {
		return Result{}, nil
	}

	return strategy.Inject(ctx, sess, refs)
}
