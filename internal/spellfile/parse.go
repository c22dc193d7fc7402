// SPDX-License-Identifier: MPL-2.0

package spellfile

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
)

//go:embed schema.cue
var schema string

const schemaRoot = "#Spellfile"

// maxFileSize bounds spell file size so a stray large file cannot balloon
// memory during CUE compilation.
const maxFileSize = 1 << 20

// Parse reads and validates a spell file from disk.
func Parse(path string) (*Spellfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading spell file: %w", err)
	}
	sf, err := ParseBytes(data, path)
	if err != nil {
		return nil, err
	}
	sf.FilePath = path
	return sf, nil
}

// ParseBytes validates data against the embedded schema and decodes it.
// The three-step flow: compile the schema, compile and unify the user
// document, then validate concretely and decode.
func ParseBytes(data []byte, filename string) (*Spellfile, error) {
	if len(data) > maxFileSize {
		return nil, fmt.Errorf("%s: file exceeds %d bytes", filename, maxFileSize)
	}

	ctx := cuecontext.New()

	schemaValue := ctx.CompileString(schema)
	if schemaValue.Err() != nil {
		return nil, fmt.Errorf("internal error: failed to compile spellfile schema: %w", schemaValue.Err())
	}

	userValue := ctx.CompileBytes(data, cue.Filename(filename))
	if userValue.Err() != nil {
		return nil, formatError(userValue.Err(), filename)
	}

	root := schemaValue.LookupPath(cue.ParsePath(schemaRoot))
	if root.Err() != nil {
		return nil, fmt.Errorf("internal error: schema definition %s not found: %w", schemaRoot, root.Err())
	}

	unified := root.Unify(userValue)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return nil, formatError(err, filename)
	}

	var sf Spellfile
	if err := unified.Decode(&sf); err != nil {
		return nil, formatError(err, filename)
	}
	return &sf, nil
}

// formatError prefixes CUE errors with the file path and the CUE path to
// the invalid value, yielding messages like
// "git.spell.cue: tasks[0].script: incomplete value".
func formatError(err error, filename string) error {
	cueErrs := cueerrors.Errors(err)
	if len(cueErrs) == 0 {
		return fmt.Errorf("%s: %w", filename, err)
	}

	var msgs []string
	for _, e := range cueErrs {
		path := strings.Join(e.Path(), ".")
		format, args := e.Msg()
		msg := fmt.Sprintf(format, args...)
		if path != "" {
			msgs = append(msgs, fmt.Sprintf("%s: %s", path, msg))
		} else {
			msgs = append(msgs, msg)
		}
	}
	return fmt.Errorf("%s: %s", filename, strings.Join(msgs, "; "))
}
