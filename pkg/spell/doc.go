// SPDX-License-Identifier: MPL-2.0

// Package spell defines the data model for task modules: an immutable Task
// (a named handler with optional visibility metadata), an immutable Module
// (an ordered set of tasks with module-level visibility and prefixing), and
// a ModuleDescriptor (an explicit registration record with a Load hook).
//
// Tasks and modules are constructed through fluent builders so that all
// validation happens in one place; once built, values never change.
package spell
