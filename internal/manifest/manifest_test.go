package manifest

import "testing"

func TestParseValid(t *testing.T) {
	raw := []byte(`
[[policies]]
paths = ["policy1.txt"]

[[configs]]
paths = ["config1.txt"]
`)

	m, err := Parse(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(m.Policies) != 1 || len(m.Configs) != 1 {
		t.Fatalf("got %+v", m)
	}
}

func TestParseRejectsEmptyPolicies(t *testing.T) {
	raw := []byte(`
[[configs]]
paths = ["config1.txt"]
`)
	if _, err := Parse(raw); err != ErrEmptyPolicies {
		t.Fatalf("want ErrEmptyPolicies, got %v", err)
	}
}

func TestParseRejectsEmptyConfigs(t *testing.T) {
	raw := []byte(`
[[policies]]
paths = ["policy1.txt"]
`)
	if _, err := Parse(raw); err != ErrEmptyConfigs {
		t.Fatalf("want ErrEmptyConfigs, got %v", err)
	}
}

func TestParseRejectsConfigWithNoRetrievalMethod(t *testing.T) {
	raw := []byte(`
[[policies]]
paths = ["policy1.txt"]

[[configs]]
`)
	if _, err := Parse(raw); err != ErrEmptyConfigMethod {
		t.Fatalf("want ErrEmptyConfigMethod, got %v", err)
	}
}

func TestParseAcceptsSSHExecOnlyConfigGroup(t *testing.T) {
	raw := []byte(`
[[policies]]
paths = ["policy1.txt"]

[[configs]]
[[configs.ssh-exec]]
cmd = "show running-config"
user = "admin"
hosts = ["10.0.0.1:22"]
`)
	m, err := Parse(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(m.Configs[0].SSHExec) != 1 {
		t.Fatalf("got %+v", m.Configs[0])
	}
}

func TestParseRejectsEmptyHosts(t *testing.T) {
	raw := []byte(`
[[policies]]
paths = ["policy1.txt"]

[[configs]]
[[configs.ssh-exec]]
cmd = "show running-config"
user = "admin"
hosts = []
`)
	if _, err := Parse(raw); err != ErrEmptyHosts {
		t.Fatalf("want ErrEmptyHosts, got %v", err)
	}
}

func TestSSHExecRetrievalIsUnimplemented(t *testing.T) {
	s := SSHExecConfig{Cmd: "show running-config", User: "admin", Hosts: []string{"router1:22"}}
	if _, err := s.RetrieveConfigurations(); err != ErrUnimplemented {
		t.Fatalf("want ErrUnimplemented, got %v", err)
	}
}
