package nfa

import "testing"

func TestConstructionErrorMessage(t *testing.T) {
	err := &ConstructionError{Message: "working stack did not reduce to exactly one fragment"}
	want := "nfa: construction invariant violated: working stack did not reduce to exactly one fragment"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
