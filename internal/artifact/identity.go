// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package artifact

import (
	"fmt"
	"strings"
)

// Identity names an artifact by its coordinates.
type Identity struct {
	Group      string
	Artifact   string
	Type       string
	Classifier string
	Version    string
	Scope      string
}

// Parse reads a coordinate string. Accepted shapes are group:artifact,
// group:artifact:version, group:artifact:type:version and
// group:artifact:type:classifier:version.
func Parse(coords string) (Identity, error) {
	parts := strings.Split(strings.TrimSpace(coords), ":")
	for _, p := range parts {
		if p == "" {
			return Identity{}, fmt.Errorf("invalid artifact coordinates %q: empty segment", coords)
		}
	}

	id := Identity{}
	switch len(parts) {
	case 2:
		id.Group, id.Artifact = parts[0], parts[1]
	case 3:
		id.Group, id.Artifact, id.Version = parts[0], parts[1], parts[2]
	case 4:
		id.Group, id.Artifact, id.Type, id.Version = parts[0], parts[1], parts[2], parts[3]
	case 5:
		id.Group, id.Artifact, id.Type, id.Classifier, id.Version = parts[0], parts[1], parts[2], parts[3], parts[4]
	default:
		return Identity{}, fmt.Errorf("invalid artifact coordinates %q: expected 2 to 5 segments, got %d", coords, len(parts))
	}
	return id, nil
}

// MustParse is like Parse but panics on malformed input. It is meant for
// package-level constants.
func MustParse(coords string) Identity {
	id, err := Parse(coords)
	if err != nil {
		panic(err)
	}
	return id
}

// Key returns group:artifact, the part of the identity that survives
// version and packaging changes.
func (id Identity) Key() string {
	return id.Group + ":" + id.Artifact
}

// ID returns the canonical coordinate string.
func (id Identity) ID() string {
	var b strings.Builder
	b.WriteString(id.Key())
	if id.Type != "" {
		b.WriteString(":" + id.Type)
		if id.Classifier != "" {
			b.WriteString(":" + id.Classifier)
		}
	}
	if id.Version != "" {
		b.WriteString(":" + id.Version)
	}
	return b.String()
}

// String implements fmt.Stringer.
func (id Identity) String() string {
	return id.ID()
}

// InGroup reports whether the identity's group is group itself or one of its
// dotted sub-groups.
func (id Identity) InGroup(group string) bool {
	return InGroup(id.Group, group)
}

// InGroup reports whether candidate equals group or is a dotted sub-group of
// it. "com.epam.reportportal.agents" belongs to "com.epam.reportportal";
// "com.epam.reportportalx" does not.
func InGroup(candidate, group string) bool {
	if group == "" {
		return false
	}
	return candidate == group || strings.HasPrefix(candidate, group+".")
}

// Ref is a resolved artifact: its identity, the file it resolved to, and the
// chain of identities from the resolution root down to it.
type Ref struct {
	Identity Identity
	File     string
	Trail    []Identity
}

// String implements fmt.Stringer.
func (r Ref) String() string {
	return r.Identity.ID()
}
