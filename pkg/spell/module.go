// SPDX-License-Identifier: MPL-2.0

package spell

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"spellbook-cli/pkg/visibility"
)

var (
	// ErrInvalidModuleName is returned when a module name does not match
	// the allowed pattern.
	ErrInvalidModuleName = errors.New("invalid module name")
	// ErrDuplicateTask is returned when two tasks in the same module share
	// a name.
	ErrDuplicateTask = errors.New("duplicate task name in module")
	// ErrEmptyModule is returned when a module is built without tasks.
	ErrEmptyModule = errors.New("module has no tasks")
)

var moduleNamePattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// Module is an ordered, immutable collection of tasks discovered from one
// source, with optional module-level visibility and a prefix flag.
type Module struct {
	name        string
	source      string
	prefix      bool
	visibleWhen visibility.Predicate
	tasks       []Task
}

// Name returns the module name as declared.
func (m *Module) Name() string { return m.name }

// Source describes where the module came from (file path or "builtin").
func (m *Module) Source() string { return m.source }

// Prefixed reports whether task display names get the module prefix.
// The module flag decides, never individual tasks.
func (m *Module) Prefixed() bool { return m.prefix }

// Slug returns the display form of the module name, with underscores
// normalized to dashes (module "pre_commit" prefixes tasks as "pre-commit").
func (m *Module) Slug() string {
	return strings.ReplaceAll(m.name, "_", "-")
}

// ShouldDisplay evaluates the module-level predicate now. Modules without
// a predicate are always visible.
func (m *Module) ShouldDisplay() bool {
	return visibility.Eval(m.visibleWhen)
}

// Tasks returns the module's tasks in declaration order.
func (m *Module) Tasks() []Task {
	out := make([]Task, len(m.tasks))
	copy(out, m.tasks)
	return out
}

// ModuleBuilder assembles a Module.
type ModuleBuilder struct {
	module Module
}

// NewModule starts building a module with the given name.
func NewModule(name string) *ModuleBuilder {
	return &ModuleBuilder{module: Module{name: name}}
}

// Source records where the module was discovered.
func (b *ModuleBuilder) Source(source string) *ModuleBuilder {
	b.module.source = source
	return b
}

// Prefix controls whether the composed display names carry the module
// prefix ("git.switch" instead of "switch").
func (b *ModuleBuilder) Prefix(on bool) *ModuleBuilder {
	b.module.prefix = on
	return b
}

// VisibleWhen attaches the module-level visibility predicate.
func (b *ModuleBuilder) VisibleWhen(p visibility.Predicate) *ModuleBuilder {
	b.module.visibleWhen = p
	return b
}

// Add appends tasks in order.
func (b *ModuleBuilder) Add(tasks ...Task) *ModuleBuilder {
	b.module.tasks = append(b.module.tasks, tasks...)
	return b
}

// Build validates the module and returns the immutable value.
func (b *ModuleBuilder) Build() (*Module, error) {
	if !moduleNamePattern.MatchString(b.module.name) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidModuleName, b.module.name)
	}
	if len(b.module.tasks) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrEmptyModule, b.module.name)
	}
	seen := make(map[string]struct{}, len(b.module.tasks))
	for _, t := range b.module.tasks {
		if _, dup := seen[t.name]; dup {
			return nil, fmt.Errorf("%w: %q in module %q", ErrDuplicateTask, t.name, b.module.name)
		}
		seen[t.name] = struct{}{}
	}
	m := b.module
	m.tasks = make([]Task, len(b.module.tasks))
	copy(m.tasks, b.module.tasks)
	return &m, nil
}

// MustBuild is Build for statically-declared modules. It panics on
// validation failure.
func (b *ModuleBuilder) MustBuild() *Module {
	m, err := b.Build()
	if err != nil {
		panic(err)
	}
	return m
}

// ModuleDescriptor is an explicit registration record: a named source plus
// a Load hook invoked once per composition. There is no dynamic import
// machinery; loading is always an explicit call through this descriptor.
type ModuleDescriptor struct {
	// Name is the module name the descriptor promises to load.
	Name string
	// Source describes where the module comes from, for diagnostics.
	Source string
	// Load produces the module. Errors are reported as load failures and
	// skip only this module during composition.
	Load func() (*Module, error)
}

// Describe wraps an already-built module in a descriptor. Builtin spell
// modules register through this.
func Describe(m *Module) ModuleDescriptor {
	return ModuleDescriptor{
		Name:   m.Name(),
		Source: m.Source(),
		Load:   func() (*Module, error) { return m, nil },
	}
}
