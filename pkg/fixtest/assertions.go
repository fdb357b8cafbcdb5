package fixtest

import (
	"testing"

	"github.com/qfu/fixmatch/pkg/matching"
)

// AssertMatches reports a test error when msg does not satisfy m.
func AssertMatches(t testing.TB, m Matcher, msg matching.Message) bool {
	t.Helper()

	ok, err := m.Matches(msg)
	if err != nil {
		t.Fatalf("invalid FIX matcher: %v", err)
		return false
	}
	if !ok {
		t.Errorf("FIX message does not match\nExpected: %s\n     but: %s", m.Describe(), m.DescribeMismatch(msg))
	}
	return ok
}

// AssertNotMatches reports a test error when msg satisfies m.
func AssertNotMatches(t testing.TB, m Matcher, msg matching.Message) bool {
	t.Helper()
	return AssertMatches(t, Not(m), msg)
}

// RequireMatches is like AssertMatches but stops the test on mismatch.
func RequireMatches(t testing.TB, m Matcher, msg matching.Message) {
	t.Helper()
	if !AssertMatches(t, m, msg) {
		t.FailNow()
	}
}
