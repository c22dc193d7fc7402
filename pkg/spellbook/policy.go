// SPDX-License-Identifier: MPL-2.0

package spellbook

import (
	"github.com/bmatcuk/doublestar/v4"
)

// PolicyKind enumerates the three fixed selection modes.
type PolicyKind int

const (
	// PolicyAll selects every task.
	PolicyAll PolicyKind = iota
	// PolicyOnly selects tasks matching at least one pattern (opt-in).
	PolicyOnly
	// PolicyExcept selects tasks matching no pattern (opt-out).
	PolicyExcept
)

// String returns a human-readable policy kind.
func (k PolicyKind) String() string {
	switch k {
	case PolicyAll:
		return "all"
	case PolicyOnly:
		return "only"
	case PolicyExcept:
		return "except"
	default:
		return "unknown"
	}
}

// Policy is a selection over dotted "module.task" names. Patterns use
// shell-style wildcards (*, ?), matched case-sensitively. A custom policy
// may carry both include and exclude patterns; exclude wins on overlap.
type Policy struct {
	kind    PolicyKind
	include []string
	exclude []string
}

// All selects every task.
func All() Policy {
	return Policy{kind: PolicyAll}
}

// Only selects tasks whose dotted name matches at least one pattern.
func Only(patterns ...string) Policy {
	return Policy{kind: PolicyOnly, include: patterns}
}

// Except selects every task whose dotted name matches no pattern.
func Except(patterns ...string) Policy {
	return Policy{kind: PolicyExcept, exclude: patterns}
}

// Filtered builds a custom policy carrying both include and exclude
// patterns. The three fixed policies never combine the two; when a custom
// policy does and both match a name, exclude wins.
func Filtered(include, exclude []string) Policy {
	return Policy{kind: PolicyOnly, include: include, exclude: exclude}
}

// Kind returns the policy's selection mode.
func (p Policy) Kind() PolicyKind { return p.kind }

// validate rejects malformed glob patterns up front, at compose time,
// rather than deferring the failure to listing time.
func (p Policy) validate() error {
	for _, pat := range append(append([]string{}, p.include...), p.exclude...) {
		if !doublestar.ValidatePattern(pat) {
			return &ConfigurationError{Reason: "malformed selection pattern", Pattern: pat}
		}
	}
	return nil
}

// allows reports whether the dotted name passes the policy. Patterns are
// pre-validated, so match errors cannot occur here.
func (p Policy) allows(dotted string) bool {
	for _, pat := range p.exclude {
		if ok, _ := doublestar.Match(pat, dotted); ok {
			return false
		}
	}
	if len(p.include) == 0 {
		return true
	}
	for _, pat := range p.include {
		if ok, _ := doublestar.Match(pat, dotted); ok {
			return true
		}
	}
	return false
}
