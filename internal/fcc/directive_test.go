package fcc

import "testing"

func TestParsePolicyDefaults(t *testing.T) {
	items, err := ParsePolicy("interface Ethernet0\n  shutdown\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("want 1 item, got %d", len(items))
	}
	opts := items[0].Options()
	if opts.Regex || opts.State != StatePresent || opts.Match != MatchFirst {
		t.Errorf("unexpected default options: %+v", opts)
	}
}

func TestParsePolicyDirectiveAttachesToNextItem(t *testing.T) {
	items, err := ParsePolicy("#[state=absent]\ninterface Ethernet0\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("want 1 item, got %d", len(items))
	}
	if items[0].Options().State != StateAbsent {
		t.Errorf("want state=absent, got %v", items[0].Options().State)
	}
	// absent-state default match scope is "all"
	if items[0].Options().Match != MatchAll {
		t.Errorf("want match=all by default for state=absent, got %v", items[0].Options().Match)
	}
}

func TestParsePolicyRegexDefaultsMatchAll(t *testing.T) {
	items, err := ParsePolicy("#[regex]\nEthernet[0-9]+\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if items[0].Options().Match != MatchAll {
		t.Errorf("want match=all by default for regex items, got %v", items[0].Options().Match)
	}
}

func TestParsePolicyExplicitMatchOverridesDefault(t *testing.T) {
	items, err := ParsePolicy("#[regex]\n#[match=first]\nEthernet[0-9]+\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if items[0].Options().Match != MatchFirst {
		t.Errorf("want explicit match=first to stick, got %v", items[0].Options().Match)
	}
}

func TestParsePolicyUnknownOption(t *testing.T) {
	_, err := ParsePolicy("#[bogus]\ninterface Ethernet0\n")
	if _, ok := err.(*UnknownOptionError); !ok {
		t.Fatalf("want *UnknownOptionError, got %T (%v)", err, err)
	}
}

func TestParsePolicyInvalidOptionArgument(t *testing.T) {
	_, err := ParsePolicy("#[state=maybe]\ninterface Ethernet0\n")
	if _, ok := err.(*InvalidOptionArgumentError); !ok {
		t.Fatalf("want *InvalidOptionArgumentError, got %T (%v)", err, err)
	}
}

func TestParsePolicyDuplicatedOption(t *testing.T) {
	_, err := ParsePolicy("#[state=present]\n#[state=absent]\ninterface Ethernet0\n")
	if _, ok := err.(*DuplicatedOptionError); !ok {
		t.Fatalf("want *DuplicatedOptionError, got %T (%v)", err, err)
	}
}

func TestParsePolicyTrailingDirectiveIsSilentlyDropped(t *testing.T) {
	items, err := ParsePolicy("interface Ethernet0\n#[state=absent]\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 || items[0].Key() != "interface Ethernet0" {
		t.Fatalf("want the trailing directive dropped with no effect, got %+v", items)
	}
	if items[0].Options().State != StatePresent {
		t.Errorf("unattached trailing directive must not affect any item, got state=%v", items[0].Options().State)
	}
}

func TestParsePolicyEmptyInput(t *testing.T) {
	_, err := ParsePolicy("   \n\n")
	if err != ErrEmptyInput {
		t.Fatalf("want ErrEmptyInput, got %v", err)
	}
}

func TestParsePolicyInvalidRegex(t *testing.T) {
	_, err := ParsePolicy("#[regex]\n[unterminated\n")
	if _, ok := err.(*InvalidRegexError); !ok {
		t.Fatalf("want *InvalidRegexError, got %T (%v)", err, err)
	}
}

func TestParsePolicyDirectiveWithNestedContentIsBadIndentation(t *testing.T) {
	_, err := ParsePolicy("#[state=absent]\n  nested under a directive\n")
	if _, ok := err.(*BadIndentationError); !ok {
		t.Fatalf("want *BadIndentationError for content nested under a directive, got %T (%v)", err, err)
	}
}

func TestParseConfigurationIgnoresDirectives(t *testing.T) {
	items, err := ParseConfiguration("#[regex]\ninterface Ethernet0\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("want 1 item (directive line dropped), got %d", len(items))
	}
	if items[0].Key() != "interface Ethernet0" {
		t.Errorf("got key %q", items[0].Key())
	}
}
