package fcc

import (
	"errors"
	"fmt"
)

// ErrEmptyInput is returned when a policy buffer is empty or whitespace-only.
var ErrEmptyInput = errors.New("fcc: input policy is empty")

// BadIndentationError reports a structural parse error: a line whose
// indentation could not be reconciled with its siblings.
type BadIndentationError struct {
	Line string
}

func (e *BadIndentationError) Error() string {
	return fmt.Sprintf("fcc: indentation incoherence line: %q", e.Line)
}

// UnknownOptionError reports a "#[name]" directive whose name is not one
// of the recognised options.
type UnknownOptionError struct {
	Name string
}

func (e *UnknownOptionError) Error() string {
	return fmt.Sprintf("fcc: unable to parse unknown option: %q", e.Name)
}

// MalformedOptionError reports a directive that carries an argument its
// option does not take, or is missing an argument its option requires.
type MalformedOptionError struct {
	Text string
}

func (e *MalformedOptionError) Error() string {
	return fmt.Sprintf("fcc: unable to parse malformed option and argument: %q", e.Text)
}

// DuplicatedOptionError reports the same directive name appearing twice in
// one buffered run of directives.
type DuplicatedOptionError struct {
	Name string
}

func (e *DuplicatedOptionError) Error() string {
	return fmt.Sprintf("fcc: duplicated option: %q", e.Name)
}

// InvalidOptionArgumentError reports a directive argument that is not one
// of its recognised values (e.g. "#[state=banana]").
type InvalidOptionArgumentError struct {
	Arg  string
	Text string
}

func (e *InvalidOptionArgumentError) Error() string {
	return fmt.Sprintf("fcc: unable to parse option argument %q from %q", e.Arg, e.Text)
}

// InvalidRegexError reports a policy key that failed to compile as an
// anchored regular expression because it was marked "#[regex]".
type InvalidRegexError struct {
	Key string
	Err error
}

func (e *InvalidRegexError) Error() string {
	return fmt.Sprintf("fcc: invalid regex %q: %v", e.Key, e.Err)
}

func (e *InvalidRegexError) Unwrap() error {
	return e.Err
}
