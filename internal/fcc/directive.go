package fcc

import (
	"fmt"
	"regexp"

	"github.com/sirupsen/logrus"
)

// directiveOption is one parsed "#[name]" / "#[name=value]" pseudo-line,
// still unattached to the item it modifies.
type directiveOption struct {
	name  string
	value string
	text  string
}

// parseDirectiveLine extracts name/value from a line already known to
// match directiveRegex.
func parseDirectiveLine(line string) directiveOption {
	m := directiveRegex.FindStringSubmatch(line)
	return directiveOption{name: m[1], value: m[2], text: line}
}

// resolveDirectives walks a raw item tree (as produced by buildTree, where
// directive pseudo-lines are still ordinary Line items) and rewrites it
// into its final form: directive runs are consumed and turned into
// ComplianceOptions on the item that immediately follows them, and a
// Parent that is absent or left with no children after its directives are
// stripped is demoted to a Line.
func resolveDirectives(items []Item) ([]Item, error) {
	out := make([]Item, 0, len(items))
	var pending []directiveOption

	flushOnto := func(it Item) error {
		if len(pending) == 0 {
			return nil
		}
		opts, err := buildOptions(pending)
		if err != nil {
			return err
		}
		logrus.WithField("key", it.Key()).WithField("options", opts).Trace("attached directives to item")
		it.SetOptions(opts)
		pending = nil
		return nil
	}

	for _, item := range items {
		if lineItem, ok := item.(*Line); ok && isDirectiveLine(lineItem.Key()) {
			pending = append(pending, parseDirectiveLine(lineItem.Key()))
			continue
		}

		if parent, ok := item.(*Parent); ok && isDirectiveLine(parent.Key()) {
			return nil, &BadIndentationError{Line: parent.Key()}
		}

		if err := flushOnto(item); err != nil {
			return nil, err
		}

		if parent, ok := item.(*Parent); ok {
			// A Parent whose state resolved to absent carries no useful
			// children (invariant 2): demote it to a Line and discard its
			// subtree without ever directive-resolving it, the way the
			// original never recurses into an absent parent's children.
			if parent.Options().State == StateAbsent {
				out = append(out, parent.asLine())
				continue
			}

			children, err := resolveDirectives(parent.Children())
			if err != nil {
				return nil, err
			}
			parent.SetChildren(children)

			// A Parent that lost all its children to directive resolution
			// is demoted too (invariant 1).
			if len(children) == 0 {
				out = append(out, parent.asLine())
				continue
			}
		}

		out = append(out, item)
	}

	// A trailing run of directives with no following item to attach to is
	// silently dropped, matching the original's end-of-loop behavior.
	return out, nil
}

var knownOptionNames = map[string]bool{
	"regex": true, "state": true, "match": true, "debug": true,
}

// buildOptions reduces a run of directives into ComplianceOptions,
// rejecting unknown names, duplicates, malformed syntax, and invalid
// argument values, then fills in the match-scope default: "all" if the
// item is a regex or forbidden (state=absent), "first" otherwise.
func buildOptions(directives []directiveOption) (ComplianceOptions, error) {
	opts := DefaultComplianceOptions()
	matchExplicit := false
	seen := map[string]bool{}

	for _, d := range directives {
		if !knownOptionNames[d.name] {
			return opts, &UnknownOptionError{Name: d.name}
		}
		if seen[d.name] {
			return opts, &DuplicatedOptionError{Name: d.name}
		}
		seen[d.name] = true

		switch d.name {
		case "regex":
			if d.value != "" {
				return opts, &MalformedOptionError{Text: d.text}
			}
			opts.Regex = true

		case "debug":
			if d.value != "" {
				return opts, &MalformedOptionError{Text: d.text}
			}
			// no-op, kept only so existing policy files with "#[debug]" parse

		case "state":
			switch d.value {
			case "present":
				opts.State = StatePresent
			case "optional":
				opts.State = StateOptional
			case "absent":
				opts.State = StateAbsent
			case "":
				return opts, &MalformedOptionError{Text: d.text}
			default:
				return opts, &InvalidOptionArgumentError{Arg: d.value, Text: d.text}
			}

		case "match":
			switch d.value {
			case "first":
				opts.Match = MatchFirst
			case "all":
				opts.Match = MatchAll
			case "":
				return opts, &MalformedOptionError{Text: d.text}
			default:
				return opts, &InvalidOptionArgumentError{Arg: d.value, Text: d.text}
			}
			matchExplicit = true
		}
	}

	if !matchExplicit {
		if opts.Regex || opts.State == StateAbsent {
			opts.Match = MatchAll
		} else {
			opts.Match = MatchFirst
		}
	}

	return opts, nil
}

// compileKeyRegex compiles an item's key as an anchored regular expression.
// Called only for items whose resolved ComplianceOptions.Regex is true.
func compileKeyRegex(key string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(fmt.Sprintf("^%s$", key))
	if err != nil {
		return nil, &InvalidRegexError{Key: key, Err: err}
	}
	return re, nil
}

// ParsePolicy builds a policy tree from raw text: directives are honored,
// and an all-blank or empty buffer is rejected outright since a policy
// with zero items can never produce a verdict.
func ParsePolicy(text string) ([]Item, error) {
	lines := splitFiltered(text, filterOptions{ignoreDirectives: false})
	if len(lines) == 0 {
		return nil, ErrEmptyInput
	}

	raw, err := buildTree(lines)
	if err != nil {
		return nil, err
	}

	items, err := resolveDirectives(raw)
	if err != nil {
		return nil, err
	}

	if err := validateRegexes(items); err != nil {
		return nil, err
	}

	return items, nil
}

// ParseConfiguration builds a configuration tree from raw text: directive
// pseudo-lines are filtered out (a configuration dump is not annotated),
// and every item keeps the default ComplianceOptions.
func ParseConfiguration(text string) ([]Item, error) {
	lines := splitFiltered(text, filterOptions{ignoreDirectives: true})
	return buildTree(lines)
}

func splitFiltered(text string, opts filterOptions) []string {
	var out []string
	for _, l := range splitLines(text) {
		if filterLine(l, opts) {
			out = append(out, l)
		}
	}
	return out
}

func splitLines(text string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			lines = append(lines, text[start:i])
			start = i + 1
		}
	}
	if start < len(text) {
		lines = append(lines, text[start:])
	}
	return lines
}

// validateRegexes walks a resolved policy tree compiling every
// regex-flagged item's key, surfacing the first invalid pattern.
func validateRegexes(items []Item) error {
	for _, item := range items {
		if item.Options().Regex {
			re, err := compileKeyRegex(item.Key())
			if err != nil {
				return err
			}
			item.setRegexp(re)
		}
		if parent, ok := item.(*Parent); ok {
			if err := validateRegexes(parent.Children()); err != nil {
				return err
			}
		}
	}
	return nil
}
