package fcc

import "github.com/sirupsen/logrus"

// Check runs the compliance engine: every item of the policy tree is
// checked against the pool of configuration siblings at the same level,
// producing one Verdict (and, for Parent-vs-Parent matches, its nested
// verdicts) per policy item, in policy order.
func Check(policy, config []Item) []Verdict {
	return walk(policy, config)
}

// walk checks one level of the policy tree against a mutable pool of
// configuration siblings. Matched configuration items are removed from
// the pool as they are consumed, so a later policy item never matches an
// item already claimed by an earlier one.
func walk(policyItems, configPool []Item) []Verdict {
	pool := append([]Item(nil), configPool...)
	var verdicts []Verdict

	for _, p := range policyItems {
		matches, rest := takeMatches(p, pool)
		pool = rest
		verdicts = append(verdicts, evaluateMatches(p, matches)...)
	}

	return verdicts
}

// itemEqual reports whether a candidate configuration item satisfies a
// policy item's key, honoring the regex directive. Variant equality
// (Parent vs Parent, or Line vs Line) is additionally required only when
// the policy item's state is "present": an absent/optional item intends
// to match configuration regardless of whether it is shaped as a Line or
// a Parent, since the whole point is to detect its existence.
func itemEqual(p, candidate Item, re interface{ MatchString(string) bool }) bool {
	var keyOK bool
	if re != nil {
		keyOK = re.MatchString(candidate.Key())
	} else {
		keyOK = keyEqual(p, candidate)
	}
	if !keyOK {
		return false
	}
	if p.Options().State == StatePresent {
		return variantEqual(p, candidate)
	}
	return true
}

// takeMatches scans pool for every configuration item matching policy
// item p, honoring p's match scope ("first" stops after one hit, "all"
// collects every hit), and returns the matches alongside the pool with
// those matches removed.
func takeMatches(p Item, pool []Item) (matches []Item, rest []Item) {
	var re interface{ MatchString(string) bool }
	if p.Options().Regex {
		if compiled := p.regexp(); compiled != nil {
			re = compiled
		}
	}

	rest = make([]Item, 0, len(pool))
	for i, candidate := range pool {
		if itemEqual(p, candidate, re) {
			matches = append(matches, candidate)
			if p.Options().Match == MatchFirst {
				rest = append(rest, pool[i+1:]...)
				break
			}
			continue
		}
		rest = append(rest, candidate)
	}

	logrus.WithField("key", p.Key()).WithField("matches", len(matches)).Trace("evaluated policy item")
	return matches, rest
}

// evaluateMatches turns the matches collected for one policy item into
// its verdict(s), recursing into matched Parent pairs so that a
// Parent-vs-Parent match also checks the policy item's children against
// the matched configuration item's children.
func evaluateMatches(p Item, matches []Item) []Verdict {
	state := p.Options().State

	if len(matches) == 0 {
		switch state {
		case StateAbsent:
			return []Verdict{{Policy: p, Outcome: OutcomeAbsent}}
		case StateOptional:
			return []Verdict{{Policy: p, Outcome: OutcomeOptionalAbsent}}
		default: // StatePresent
			return []Verdict{{Policy: p, Outcome: OutcomeShouldBePresentIsAbsent}}
		}
	}

	if state == StateAbsent {
		verdicts := make([]Verdict, 0, len(matches))
		for _, m := range matches {
			verdicts = append(verdicts, Verdict{Policy: p, Outcome: OutcomeShouldBeAbsentIsPresent, Matched: m})
		}
		return verdicts
	}

	var verdicts []Verdict
	for _, m := range matches {
		verdicts = append(verdicts, Verdict{Policy: p, Outcome: OutcomePresent, Matched: m})

		pParent, pIsParent := p.(*Parent)
		mParent, mIsParent := m.(*Parent)
		if pIsParent && mIsParent {
			verdicts = append(verdicts, walk(pParent.Children(), mParent.Children())...)
		}
	}
	return verdicts
}
