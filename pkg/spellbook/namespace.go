// SPDX-License-Identifier: MPL-2.0

package spellbook

import (
	"strings"

	"spellbook-cli/pkg/spell"
)

// Entry is one composed task under its final display name.
type Entry struct {
	// DisplayName is the name exposed to the CLI front-end
	// ("pre-commit.install", "switch", "cleanup-media").
	DisplayName string
	// Dotted is the canonical "module.task" name selection patterns
	// match against.
	Dotted string
	// Task is the composed task.
	Task spell.Task

	module *spell.Module
}

// Module returns the owning module.
func (e Entry) Module() *spell.Module { return e.module }

// Namespace is the final mapping from display name to task. It is built
// once per invocation by a Cast call and never mutated afterward; only
// visibility is computed lazily, because it depends on the working
// directory at listing time.
type Namespace struct {
	order   []string
	entries map[string]Entry
}

func newNamespace() *Namespace {
	return &Namespace{entries: make(map[string]Entry)}
}

func (n *Namespace) add(e Entry) {
	if _, exists := n.entries[e.DisplayName]; !exists {
		n.order = append(n.order, e.DisplayName)
	}
	n.entries[e.DisplayName] = e
}

func (n *Namespace) has(name string) bool {
	_, ok := n.entries[name]
	return ok
}

// Len returns the number of composed tasks.
func (n *Namespace) Len() int { return len(n.order) }

// Names returns all display names in composition order, visible or not.
func (n *Namespace) Names() []string {
	out := make([]string, len(n.order))
	copy(out, n.order)
	return out
}

// Lookup finds a task by display name regardless of visibility; hidden
// tasks stay runnable, they are just not advertised.
func (n *Namespace) Lookup(name string) (Entry, bool) {
	e, ok := n.entries[name]
	return e, ok
}

// Entries returns every entry in composition order.
func (n *Namespace) Entries() []Entry {
	out := make([]Entry, 0, len(n.order))
	for _, name := range n.order {
		out = append(out, n.entries[name])
	}
	return out
}

// Visible returns the entries whose effective visibility is true right
// now. Module predicates are evaluated once per module per call; nothing
// is cached across calls.
func (n *Namespace) Visible() []Entry {
	moduleFlags := make(map[*spell.Module]bool)
	out := make([]Entry, 0, len(n.order))
	for _, name := range n.order {
		e := n.entries[name]
		flag, seen := moduleFlags[e.module]
		if !seen {
			flag = e.module.ShouldDisplay()
			moduleFlags[e.module] = flag
		}
		if e.Task.ShouldDisplay(flag) {
			out = append(out, e)
		}
	}
	return out
}

// TaskNames returns the sorted-by-order display names of visible entries,
// the shape the CLI list view wants.
func (n *Namespace) TaskNames() []string {
	visible := n.Visible()
	out := make([]string, len(visible))
	for i, e := range visible {
		out[i] = e.DisplayName
	}
	return out
}

// MergeLocal merges a project-local namespace over the global one: every
// global task whose name does not collide with a local task is kept, every
// local task is present, and local wins silently on collision. Local
// customization overriding the defaults is the documented contract, not an
// error.
func MergeLocal(local, global *Namespace) *Namespace {
	merged := newNamespace()
	if global != nil {
		for _, name := range global.order {
			if local != nil && local.has(name) {
				merged.add(local.entries[name])
				continue
			}
			merged.add(global.entries[name])
		}
	}
	if local != nil {
		for _, name := range local.order {
			if !merged.has(name) {
				merged.add(local.entries[name])
			}
		}
	}
	return merged
}

// dottedName builds the canonical selection name for a task.
func dottedName(m *spell.Module, t spell.Task) string {
	return m.Slug() + "." + taskSlug(t)
}

// taskSlug normalizes a declared task name to its display form.
func taskSlug(t spell.Task) string {
	return strings.ReplaceAll(t.Name(), "_", "-")
}
