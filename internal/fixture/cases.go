package fixture

import (
	"github.com/qfu/fixmatch/pkg/matching"
)

// CaseResult is the outcome of one case.
type CaseResult struct {
	Name    string
	Expect  Expectation
	Outcome Expectation
	// Err is the configuration error when Outcome is ExpectError.
	Err error
	// Mismatch explains a no-match outcome.
	Mismatch *matching.Mismatch
}

// Passed reports whether the outcome is the declared one.
func (r CaseResult) Passed() bool {
	return r.Outcome == r.Expect
}

// RunCases evaluates every case of f with e.
func RunCases(e *matching.Evaluator, f *File) []CaseResult {
	results := make([]CaseResult, 0, len(f.Cases))
	for _, c := range f.Cases {
		results = append(results, RunCase(e, c))
	}
	return results
}

// RunCase evaluates one case. Conversion and evaluation errors both count
// as the error outcome.
func RunCase(e *matching.Evaluator, c CaseDoc) CaseResult {
	r := CaseResult{Name: c.Name, Expect: c.Expect}

	criteria, err := ToCriteria(c.Criteria)
	if err != nil {
		r.Outcome, r.Err = ExpectError, err
		return r
	}

	var msg matching.Message
	if c.Message != nil {
		msg = ToMessage(c.Message)
	}

	res, err := e.Explain(criteria, msg)
	switch {
	case err != nil:
		r.Outcome, r.Err = ExpectError, err
	case res.Matched:
		r.Outcome = ExpectMatch
	default:
		r.Outcome, r.Mismatch = ExpectNoMatch, res.Mismatch
	}
	return r
}
