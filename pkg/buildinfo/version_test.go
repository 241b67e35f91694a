package buildinfo

import (
	"strings"
	"testing"
)

func TestCurrent(t *testing.T) {
	orig := Version
	defer func() { Version = orig }()

	Version = "v1.2.3"
	if got := Current().Version; got != "v1.2.3" {
		t.Errorf("Current().Version = %q, want %q", got, "v1.2.3")
	}
	if !strings.Contains(Template(), "version v1.2.3") {
		t.Errorf("Template() = %q, want the stamped version", Template())
	}
}
