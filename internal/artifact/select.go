// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package artifact

import "fmt"

// Policy decides which resolved artifacts are eligible for injection.
type Policy int

const (
	// PolicyTrail selects artifacts pulled in through the tool's own group:
	// the second trail element belongs to the self group. Anything with a
	// test framework anywhere in its trail is left out.
	PolicyTrail Policy = iota
	// PolicyGroup selects artifacts whose own group belongs to the self
	// group, whatever their trail.
	PolicyGroup
	// PolicyDeclared selects from the dependencies declared on the tool's
	// own plugin entry rather than from resolved artifacts.
	PolicyDeclared
)

func (p Policy) String() string {
	switch p {
	case PolicyTrail:
		return "trail"
	case PolicyGroup:
		return "group"
	case PolicyDeclared:
		return "declared"
	}
	return fmt.Sprintf("Policy(%d)", int(p))
}

// TestFrameworks lists artifacts whose presence in a trail means the
// dependency belongs to the test framework, which the project already has.
var TestFrameworks = []Identity{
	MustParse("org.testng:testng"),
	MustParse("org.junit.jupiter:junit-jupiter-api"),
}

// Select filters candidates according to policy. self is excluded under
// every policy. Input order is preserved and an empty result is valid.
func Select(all []Ref, declared []Identity, self Identity, policy Policy) []Ref {
	var out []Ref
	switch policy {
	case PolicyDeclared:
		for _, id := range declared {
			if id.Key() == self.Key() || !id.InGroup(self.Group) {
				continue
			}
			out = append(out, Ref{Identity: id})
		}
	case PolicyGroup:
		for _, r := range all {
			if r.Identity.Key() == self.Key() || !r.Identity.InGroup(self.Group) {
				continue
			}
			out = append(out, r)
		}
	default:
		for _, r := range all {
			if r.Identity.Key() == self.Key() || !viaSelfGroup(r, self.Group) || hasTestFramework(r.Trail) {
				continue
			}
			out = append(out, r)
		}
	}
	return out
}

func viaSelfGroup(r Ref, group string) bool {
	return len(r.Trail) > 1 && r.Trail[1].InGroup(group)
}

func hasTestFramework(trail []Identity) bool {
	for _, id := range trail {
		for _, fw := range TestFrameworks {
			if id.Key() == fw.Key() {
				return true
			}
		}
	}
	return false
}
