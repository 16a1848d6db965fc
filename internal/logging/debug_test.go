package logging

import (
	"testing"
)

func TestDebugEnabled(t *testing.T) {
	t.Setenv("AS_DEBUG", "")
	if DebugEnabled() {
		t.Error("DebugEnabled() should return false when AS_DEBUG is empty")
	}

	t.Setenv("AS_DEBUG", "1")
	if !DebugEnabled() {
		t.Error("DebugEnabled() should return true when AS_DEBUG is set")
	}

	t.Setenv("AS_DEBUG", "true")
	if !DebugEnabled() {
		t.Error("DebugEnabled() should return true when AS_DEBUG is 'true'")
	}
}

func TestDebugf(t *testing.T) {
	// Only verifies that Debugf doesn't panic in either mode
	t.Setenv("AS_DEBUG", "")
	Debugf("This should not appear: %s", "test")

	t.Setenv("AS_DEBUG", "1")
	Debugf("This should appear: %s\n", "test")
}

func TestDebugln(t *testing.T) {
	t.Setenv("AS_DEBUG", "")
	Debugln("This should not appear")

	t.Setenv("AS_DEBUG", "1")
	Debugln("This should appear")
}
