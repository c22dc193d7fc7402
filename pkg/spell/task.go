// SPDX-License-Identifier: MPL-2.0

package spell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"regexp"

	"spellbook-cli/pkg/visibility"
)

var (
	// ErrInvalidTaskName is returned when a task name does not match the
	// allowed pattern.
	ErrInvalidTaskName = errors.New("invalid task name")
	// ErrNilHandler is returned when a task is built without a handler.
	ErrNilHandler = errors.New("task handler must not be nil")
)

// taskNamePattern allows lowercase names with underscores or dashes as
// separators. Underscores are normalized to dashes in display names.
var taskNamePattern = regexp.MustCompile(`^[a-z][a-z0-9_-]*$`)

// Invocation carries the per-run inputs of a task handler: positional
// arguments and the I/O streams the handler should use instead of touching
// os.Stdout/os.Stderr directly.
type Invocation struct {
	// Args are the positional arguments after the task name.
	Args []string
	// Stdin is the input stream.
	Stdin io.Reader
	// Stdout is the output stream.
	Stdout io.Writer
	// Stderr is the error stream.
	Stderr io.Writer
}

// Handler is the callable behind a task.
type Handler func(ctx context.Context, inv *Invocation) error

// Task is a named handler with optional visibility metadata. Identity is
// the (module, name) pair; display names must be unique after prefixing
// within a composed namespace.
type Task struct {
	name          string
	summary       string
	handler       Handler
	visibleWhen   visibility.Predicate
	alwaysVisible bool
}

// Name returns the task name as declared (underscores not yet normalized).
func (t Task) Name() string { return t.name }

// Summary returns the one-line task description.
func (t Task) Summary() string { return t.summary }

// Handler returns the task's callable.
func (t Task) Handler() Handler { return t.handler }

// ShouldDisplay computes the task's effective visibility given the owning
// module's visibility flag, per the precedence rules:
//
//  1. A task-level predicate overrides everything and is evaluated now.
//  2. An always-visible task ignores module visibility.
//  3. Otherwise the task inherits the module flag.
func (t Task) ShouldDisplay(moduleVisible bool) bool {
	if t.visibleWhen != nil {
		return visibility.Eval(t.visibleWhen)
	}
	if t.alwaysVisible {
		return true
	}
	return moduleVisible
}

// TaskBuilder assembles a Task. Zero or more options are applied before
// Build validates and freezes the value.
type TaskBuilder struct {
	task Task
}

// NewTask starts building a task with the given name and handler.
func NewTask(name string, handler Handler) *TaskBuilder {
	return &TaskBuilder{task: Task{name: name, handler: handler}}
}

// Summary sets the one-line description shown in listings.
func (b *TaskBuilder) Summary(summary string) *TaskBuilder {
	b.task.summary = summary
	return b
}

// AlwaysVisible marks the task visible even when its owning module's
// predicate reports hidden.
func (b *TaskBuilder) AlwaysVisible() *TaskBuilder {
	b.task.alwaysVisible = true
	return b
}

// VisibleWhen attaches a task-level predicate that overrides both the
// always-visible flag and the module's visibility.
func (b *TaskBuilder) VisibleWhen(p visibility.Predicate) *TaskBuilder {
	b.task.visibleWhen = p
	return b
}

// Build validates the task and returns the immutable value.
func (b *TaskBuilder) Build() (Task, error) {
	if !taskNamePattern.MatchString(b.task.name) {
		return Task{}, fmt.Errorf("%w: %q", ErrInvalidTaskName, b.task.name)
	}
	if b.task.handler == nil {
		return Task{}, fmt.Errorf("%w: task %q", ErrNilHandler, b.task.name)
	}
	return b.task, nil
}

// MustBuild is Build for statically-declared tasks where the inputs are
// compile-time constants. It panics on validation failure.
func (b *TaskBuilder) MustBuild() Task {
	t, err := b.Build()
	if err != nil {
		panic(err)
	}
	return t
}
