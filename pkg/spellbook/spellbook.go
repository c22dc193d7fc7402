// SPDX-License-Identifier: MPL-2.0

package spellbook

import (
	"fmt"

	"github.com/charmbracelet/log"

	"spellbook-cli/pkg/spell"
)

// Loader resolves a filesystem path (single spell file or a package
// directory) into module descriptors. The concrete implementation lives in
// internal/loader; the interface keeps the composer free of file-format
// knowledge.
type Loader interface {
	LoadPath(path string) ([]spell.ModuleDescriptor, error)
}

// Option configures a Spellbook.
type Option func(*Spellbook)

// WithLoader installs the loader used for paths registered via AddModules.
func WithLoader(l Loader) Option {
	return func(s *Spellbook) { s.loader = l }
}

// WithLogger replaces the default logger.
func WithLogger(logger *log.Logger) Option {
	return func(s *Spellbook) { s.log = logger }
}

// Spellbook is the central registry of spell modules. Descriptors and
// paths are accumulated first; a Cast call then resolves everything into a
// Namespace. The same book can be cast multiple times; each cast resolves
// from scratch.
type Spellbook struct {
	descriptors []spell.ModuleDescriptor
	paths       []string
	loader      Loader
	log         *log.Logger
}

// New creates an empty Spellbook.
func New(opts ...Option) *Spellbook {
	s := &Spellbook{log: log.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register adds module descriptors. Returns the book for chaining.
func (s *Spellbook) Register(descs ...spell.ModuleDescriptor) *Spellbook {
	s.descriptors = append(s.descriptors, descs...)
	return s
}

// AddModules registers external module sources (the user's own spell files
// or directories) to be resolved at cast time. Returns the book for
// chaining.
func (s *Spellbook) AddModules(paths ...string) *Spellbook {
	s.paths = append(s.paths, paths...)
	return s
}

// CastAll composes every registered module's tasks.
func (s *Spellbook) CastAll() (*Namespace, error) {
	return s.Cast(All())
}

// CastOnly composes only the tasks whose dotted name matches at least one
// pattern.
func (s *Spellbook) CastOnly(patterns ...string) (*Namespace, error) {
	return s.Cast(Only(patterns...))
}

// CastAllExcept composes everything except the tasks whose dotted name
// matches any pattern.
func (s *Spellbook) CastAllExcept(patterns ...string) (*Namespace, error) {
	return s.Cast(Except(patterns...))
}

// Cast composes the namespace under the given policy.
//
// Per-module failures (a path that does not resolve, a descriptor whose
// Load fails) are logged and skipped. Namespace-wide problems (malformed
// pattern, duplicate display name with no resolution rule) abort with a
// ConfigurationError.
func (s *Spellbook) Cast(policy Policy) (*Namespace, error) {
	if err := policy.validate(); err != nil {
		return nil, err
	}

	modules := s.resolve()
	ns := newNamespace()

	// Ownership is tracked by module identity, not by name: two distinct
	// modules sharing a name is an unresolvable ambiguity, whether or not
	// their task sets overlap.
	nameOwner := make(map[string]*spell.Module)
	prefixOwner := make(map[string]*spell.Module)

	for _, m := range modules {
		if owner, taken := nameOwner[m.Name()]; taken && owner != m {
			return nil, &ConfigurationError{
				Reason: "module name used by two different modules",
				Name:   m.Name(),
			}
		}
		nameOwner[m.Name()] = m

		if m.Prefixed() {
			slug := m.Slug()
			if owner, taken := prefixOwner[slug]; taken && owner != m {
				return nil, &ConfigurationError{
					Reason: fmt.Sprintf("prefix already used by module %q", owner.Name()),
					Name:   slug,
				}
			}
			prefixOwner[slug] = m
		}

		for _, t := range m.Tasks() {
			dotted := dottedName(m, t)
			if !policy.allows(dotted) {
				continue
			}

			display := taskSlug(t)
			if m.Prefixed() {
				display = m.Slug() + "." + display
			}

			if ns.has(display) {
				if m.Prefixed() {
					return nil, &ConfigurationError{
						Reason: "duplicate task name in composed namespace",
						Name:   display,
					}
				}
				// Unprefixed cross-module collision: the later task gets a
				// module-suffixed display name.
				display = display + "-" + m.Slug()
				if ns.has(display) {
					return nil, &ConfigurationError{
						Reason: "duplicate task name in composed namespace",
						Name:   display,
					}
				}
			}

			ns.add(Entry{
				DisplayName: display,
				Dotted:      dotted,
				Task:        t,
				module:      m,
			})
		}
	}

	return ns, nil
}

// resolve loads every registered descriptor and external path, skipping
// failures with a warning. Visibility is NOT evaluated here; that happens
// at listing time.
func (s *Spellbook) resolve() []*spell.Module {
	var modules []*spell.Module

	for _, desc := range s.descriptors {
		m, err := desc.Load()
		if err != nil {
			s.log.Warn("skipping spell module",
				"module", desc.Name, "source", desc.Source,
				"error", &ModuleLoadError{Source: desc.Source, Err: err})
			continue
		}
		modules = append(modules, m)
	}

	for _, path := range s.paths {
		if s.loader == nil {
			s.log.Warn("no loader configured, skipping external module path", "path", path)
			continue
		}
		descs, err := s.loader.LoadPath(path)
		if err != nil {
			s.log.Warn("skipping external spell source", "path", path, "error", err)
			continue
		}
		for _, desc := range descs {
			m, err := desc.Load()
			if err != nil {
				s.log.Warn("skipping spell module",
					"module", desc.Name, "source", desc.Source,
					"error", &ModuleLoadError{Source: desc.Source, Err: err})
				continue
			}
			modules = append(modules, m)
		}
	}

	return modules
}
