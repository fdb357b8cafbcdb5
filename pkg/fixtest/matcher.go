package fixtest

import (
	"github.com/qfu/fixmatch/pkg/fix"
	"github.com/qfu/fixmatch/pkg/matching"
)

// IsFIXMessage starts a matcher for any FIX message.
func IsFIXMessage() *matching.Builder {
	return matching.NewBuilder()
}

// IsFIXMessageOfType starts a matcher for messages of type t.
func IsFIXMessageOfType(t fix.MsgType) *matching.Builder {
	return matching.NewBuilder().OfType(t)
}

// Matcher checks a message and describes the outcome.
type Matcher interface {
	// Matches reports whether msg is accepted. The error is non-nil only
	// when the matcher itself is misconfigured.
	Matches(msg matching.Message) (bool, error)
	Describe() string
	DescribeMismatch(msg matching.Message) string
}

// Match builds b into a Matcher. A build error is returned by every call
// to Matches.
func Match(b *matching.Builder) Matcher {
	c, err := b.Build()
	return &criteriaMatcher{criteria: c, err: err, evaluator: matching.NewEvaluator()}
}

// MatchCriteria wraps already built criteria.
func MatchCriteria(c *matching.Criteria) Matcher {
	return &criteriaMatcher{criteria: c, evaluator: matching.NewEvaluator()}
}

type criteriaMatcher struct {
	criteria  *matching.Criteria
	err       error
	evaluator *matching.Evaluator
}

func (m *criteriaMatcher) Matches(msg matching.Message) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	return m.evaluator.Evaluate(m.criteria, msg)
}

func (m *criteriaMatcher) Describe() string {
	return matching.Describe(m.criteria)
}

func (m *criteriaMatcher) DescribeMismatch(msg matching.Message) string {
	return matching.DescribeMismatch(m.criteria, msg)
}

// Not negates m. Configuration errors are passed through unchanged.
func Not(m Matcher) Matcher {
	return notMatcher{inner: m}
}

type notMatcher struct {
	inner Matcher
}

func (n notMatcher) Matches(msg matching.Message) (bool, error) {
	ok, err := n.inner.Matches(msg)
	if err != nil {
		return false, err
	}
	return !ok, nil
}

func (n notMatcher) Describe() string {
	return "not " + n.inner.Describe()
}

func (n notMatcher) DescribeMismatch(msg matching.Message) string {
	return n.inner.DescribeMismatch(msg)
}
