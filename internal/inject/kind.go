// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package inject

import (
	"context"
	"fmt"
	"strings"

	"github.com/specialistvlad/rpinject/internal/artifact"
	"github.com/specialistvlad/rpinject/internal/session"
)

// Kind identifies an injection strategy.
type Kind int

const (
	KindClasspath Kind = iota
	KindDependency
	KindCopy
)

func (k Kind) String() string {
	switch k {
	case KindClasspath:
		return "classpath"
	case KindDependency:
		return "dependency"
	case KindCopy:
		return "copy"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Mode selects how the strategy is chosen.
type Mode string

const (
	// ModeAuto uses the supported-target table and falls back to copying.
	ModeAuto       Mode = "auto"
	ModeClasspath  Mode = "classpath"
	ModeDependency Mode = "dependency"
	ModeCopy       Mode = "copy"
)

// Modes lists every accepted mode, in the order they are documented.
var Modes = []Mode{ModeAuto, ModeClasspath, ModeDependency, ModeCopy}

// ParseMode validates a user-supplied mode name. Matching is
// case-insensitive.
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Modes {
		if m == known {
			return m, nil
		}
	}
	names := make([]string, len(Modes))
	for i, known := range Modes {
		names[i] = string(known)
	}
	return "", fmt.Errorf("invalid injection mode %q: must be one of %s", s, strings.Join(names, ", "))
}

// Target describes a supported test runner.
type Target struct {
	Identity artifact.Identity
	// Phase is the lifecycle phase the runner executes tests in.
	Phase string
	// ExecutionID names the execution created when the runner has none
	// bound to Phase.
	ExecutionID string
	Kind        Kind
}

// Targets is the table of supported test runners, in preference order.
var Targets = []Target{
	{
		Identity:    artifact.MustParse("org.apache.maven.plugins:maven-surefire-plugin"),
		Phase:       "test",
		ExecutionID: "default-test",
		Kind:        KindClasspath,
	},
	{
		Identity:    artifact.MustParse("org.apache.maven.plugins:maven-failsafe-plugin"),
		Phase:       "integration-test",
		ExecutionID: "default-integration-test",
		Kind:        KindClasspath,
	},
}

// LookupTarget returns the supported target registered under key
// (group:artifact).
func LookupTarget(key string) (Target, bool) {
	for _, t := range Targets {
		if t.Identity.Key() == key {
			return t, true
		}
	}
	return Target{}, false
}

// Result counts what an injection did.
type Result struct {
	Applied int
	Skipped int
}

// Strategy injects selected artifacts into the session.
type Strategy interface {
	Kind() Kind
	// Policy is the artifact selection policy the strategy works with.
	Policy() artifact.Policy
	Inject(ctx context.Context, sess session.Session, refs []artifact.Ref) (Result, error)
}

// Options tune the append strategies.
type Options struct {
	// Dedupe skips entries that are already present. Without it every run
	// appends, matching how the host build treats repeated declarations.
	Dedupe bool
}
