package fcc

import (
	"fmt"
	"strings"
)

// String renders a verdict as a stable, human-readable line:
//
//	Policy(match: first) "interface Ethernet0" found: "interface Ethernet0"
//	Policy(match: all, regex=true) "interface Eth.*" no match found.
func (v Verdict) String() string {
	return fmt.Sprintf("%s \"%s\" %s", v.header(), v.Policy.Key(), v.outcomeText())
}

func (v Verdict) header() string {
	var b strings.Builder
	b.WriteString("Policy(match: ")
	b.WriteString(v.Policy.Options().Match.String())
	if v.Policy.Options().Regex {
		b.WriteString(", regex=true")
	}
	b.WriteString(")")
	return b.String()
}

func (v Verdict) outcomeText() string {
	switch v.Outcome {
	case OutcomePresent:
		return fmt.Sprintf("found: \"%s\"", v.Matched.Key())
	case OutcomeOptionalAbsent:
		return "no match found but it's ok."
	case OutcomeAbsent:
		return "nothing found, as it should be."
	case OutcomeShouldBePresentIsAbsent:
		return "no match found."
	case OutcomeShouldBeAbsentIsPresent:
		return fmt.Sprintf("found something that should not be there: \"%s\"", v.Matched.Key())
	default:
		return "unknown outcome"
	}
}
