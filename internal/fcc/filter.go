package fcc

import (
	"regexp"
	"strings"
)

// directiveRegex matches a "#[name]" or "#[name=value]" pseudo-line. It is
// a pure constant, compiled once per process (see spec design notes).
var directiveRegex = regexp.MustCompile(`^\s*#\[(\w+)(?:=(\w+))?\]\s*$`)

// isDirectiveLine reports whether line is a compliance directive pseudo-line.
func isDirectiveLine(line string) bool {
	return directiveRegex.MatchString(line)
}

// isASCIIWhitespace mirrors Rust's char::is_ascii_whitespace: space, tab,
// CR, LF, form feed, vertical tab.
func isASCIIWhitespace(b byte) bool {
	switch b {
	case ' ', '\t', '\r', '\n', '\f', '\v':
		return true
	}
	return false
}

// IndentWidth counts the leading ASCII-whitespace characters of line.
// Mixed tabs and spaces are permitted: characters are counted, not
// converted to a display width.
func IndentWidth(line string) int {
	n := 0
	for n < len(line) && isASCIIWhitespace(line[n]) {
		n++
	}
	return n
}

// filterOptions configures filterLine.
type filterOptions struct {
	ignoreDirectives bool
	regexFilter      *regexp.Regexp
}

// filterLine reports whether line survives the line filter: it is not
// blank, is kept or dropped depending on whether it is a directive line
// and ignoreDirectives, and does not match an optional user regex filter.
func filterLine(line string, opts filterOptions) bool {
	if strings.TrimSpace(line) == "" {
		return false
	}

	if isDirectiveLine(line) {
		return !opts.ignoreDirectives
	}

	if opts.regexFilter != nil && opts.regexFilter.MatchString(line) {
		return false
	}

	return true
}
