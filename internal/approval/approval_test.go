package approval

import "testing"

// Under go test stdin is not a terminal, so Ask must auto-deny rather than
// hang waiting for input.
func TestAsk_NonInteractiveDenies(t *testing.T) {
	if IsInteractive() {
		t.Skip("test requires non-interactive stdin")
	}
	res := Ask(Prompt{Dest: "/tmp/out", Profiles: 3})
	if res.Approved {
		t.Error("non-interactive Ask must not approve")
	}
	if res.UserAction != "auto_deny_non_interactive" {
		t.Errorf("UserAction = %q", res.UserAction)
	}
}
