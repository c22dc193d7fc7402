// SPDX-License-Identifier: MPL-2.0

package tui

import (
	"errors"

	"github.com/charmbracelet/huh"
)

// ErrCancelled is returned when the user aborts a prompt (esc / ctrl+c).
var ErrCancelled = errors.New("cancelled by user")

// ChooseManyOptions configures the multi-select picker.
type ChooseManyOptions struct {
	// Title is the prompt displayed above the options.
	Title string
	// Options is the list of values to choose from.
	Options []string
	// Preselected marks options that start selected.
	Preselected []string
	// Height limits the number of visible options (0 for auto).
	Height int
}

// ChooseMany runs a multi-select prompt and returns the chosen values in
// display order. An aborted form returns ErrCancelled.
func ChooseMany(opts ChooseManyOptions) ([]string, error) {
	pre := make(map[string]bool, len(opts.Preselected))
	for _, p := range opts.Preselected {
		pre[p] = true
	}

	huhOpts := make([]huh.Option[string], len(opts.Options))
	for i, opt := range opts.Options {
		huhOpts[i] = huh.NewOption(opt, opt).Selected(pre[opt])
	}

	var results []string
	sel := huh.NewMultiSelect[string]().
		Title(opts.Title).
		Options(huhOpts...).
		Value(&results)
	if opts.Height > 0 {
		sel = sel.Height(opts.Height)
	}

	if err := huh.NewForm(huh.NewGroup(sel)).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil, ErrCancelled
		}
		return nil, err
	}
	return results, nil
}

// Confirm runs a yes/no prompt. An aborted form returns ErrCancelled.
func Confirm(title string) (bool, error) {
	var answer bool
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(title).
			Affirmative("Yes").
			Negative("No").
			Value(&answer),
	))
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, ErrCancelled
		}
		return false, err
	}
	return answer, nil
}
