package matching

import (
	"fmt"
	"strconv"
	"strings"
)

// CheckResult is the outcome of one check in a Breakdown.
type CheckResult struct {
	Gate     string        `json:"gate"`
	Group    *GroupAddress `json:"group,omitempty"`
	Tag      int           `json:"tag,omitempty"`
	Kind     string        `json:"kind,omitempty"`
	Expected string        `json:"expected"`
	Actual   string        `json:"actual,omitempty"`
	Present  bool          `json:"present"`
	Matched  bool          `json:"matched"`
}

// Breakdown lists every check of a criteria against one message.
type Breakdown struct {
	Matched bool          `json:"matched"`
	Passed  int           `json:"passed"`
	Total   int           `json:"total"`
	Checks  []CheckResult `json:"checks"`
	Reason  string        `json:"reason"`
}

// Breakdown evaluates every check of c against m without short-circuiting,
// so a report can show all failures at once. Checks for a missing group
// occurrence are reported as failed. Configuration errors abort as in Evaluate.
func (e *Evaluator) Breakdown(c *Criteria, m Message) (*Breakdown, error) {
	result := &Breakdown{}
	if c == nil {
		result.Matched = true
		result.Reason = GenerateReason(nil)
		return result, nil
	}

	// Type
	if c.hasType {
		var actual string
		matched := false
		if m != nil {
			actual = actualType(m).Name()
			matched = m.IsInstanceOf(c.msgType)
		}
		result.Checks = append(result.Checks, CheckResult{
			Gate:     GateType.String(),
			Expected: c.msgType.Name(),
			Actual:   actual,
			Present:  actual != "",
			Matched:  matched,
		})
	}

	var body, header FieldContainer
	if m != nil {
		body, header = m, m.HeaderFields()
	}

	// Body and header
	for _, part := range []struct {
		gate      Gate
		container FieldContainer
		fields    []FieldExpectation
	}{
		{GateBody, body, c.body},
		{GateHeader, header, c.header},
	} {
		for _, f := range part.fields {
			cr, err := e.checkField(part.gate, nil, part.container, f)
			if err != nil {
				return nil, err
			}
			result.Checks = append(result.Checks, cr)
		}
	}

	// Groups
	for i := range c.groups {
		g := c.groups[i]
		addr := g.Address
		var gc FieldContainer
		found := false
		if m != nil {
			gc, found = e.locator.Locate(m, addr)
		}
		result.Checks = append(result.Checks, CheckResult{
			Gate:     GateGroup.String(),
			Group:    &addr,
			Expected: "present",
			Actual:   presence(found),
			Present:  found,
			Matched:  found,
		})
		for _, f := range g.Fields {
			if !found {
				if !f.Value.Valid() {
					return nil, &UnsupportedValueError{Tag: f.Tag, Value: f.Value.raw}
				}
				result.Checks = append(result.Checks, CheckResult{
					Gate:     GateGroup.String(),
					Group:    &addr,
					Tag:      f.Tag,
					Kind:     f.Value.Kind().String(),
					Expected: f.Value.String(),
				})
				continue
			}
			cr, err := e.checkField(GateGroup, &addr, gc, f)
			if err != nil {
				return nil, err
			}
			result.Checks = append(result.Checks, cr)
		}
	}

	result.Total = len(result.Checks)
	for _, cr := range result.Checks {
		if cr.Matched {
			result.Passed++
		}
	}
	result.Matched = result.Passed == result.Total
	result.Reason = GenerateReason(result.Checks)
	return result, nil
}

func (e *Evaluator) checkField(gate Gate, addr *GroupAddress, container FieldContainer, f FieldExpectation) (CheckResult, error) {
	ok, err := e.dispatcher.Equals(container, f.Tag, f.Value)
	if err != nil {
		return CheckResult{}, err
	}
	actual, present := e.accessor.Field(container, f.Tag)
	return CheckResult{
		Gate:     gate.String(),
		Group:    addr,
		Tag:      f.Tag,
		Kind:     f.Value.Kind().String(),
		Expected: f.Value.String(),
		Actual:   actual,
		Present:  present,
		Matched:  ok,
	}, nil
}

func presence(found bool) string {
	if found {
		return "present"
	}
	return "(missing)"
}

// GenerateReason explains which checks passed and which one failed first.
func GenerateReason(checks []CheckResult) string {
	if len(checks) == 0 {
		return "no checks to run"
	}

	var matched []string
	var firstMismatch *CheckResult

	for i := range checks {
		if checks[i].Matched {
			matched = append(matched, checkLabel(&checks[i]))
		} else if firstMismatch == nil {
			firstMismatch = &checks[i]
		}
	}

	if firstMismatch == nil {
		return "all checks matched"
	}

	if len(matched) == 0 {
		return formatMismatch(firstMismatch)
	}

	return joinLabels(matched) + " matched, but " + formatMismatch(firstMismatch)
}

// checkLabel names a check, e.g. "body 11" or "1. group 73 field 11".
func checkLabel(c *CheckResult) string {
	switch {
	case c.Gate == GateType.String():
		return "type"
	case c.Group != nil && c.Tag == 0:
		return c.Group.String()
	case c.Group != nil:
		return c.Group.String() + " field " + strconv.Itoa(c.Tag)
	default:
		return c.Gate + " " + strconv.Itoa(c.Tag)
	}
}

// formatMismatch describes a failed check.
func formatMismatch(c *CheckResult) string {
	switch {
	case c.Gate == GateType.String():
		if c.Actual == "" {
			return fmt.Sprintf("type expected %s, message has no type", c.Expected)
		}
		return fmt.Sprintf("type expected %s, got %s", c.Expected, c.Actual)
	case c.Group != nil && c.Tag == 0:
		return c.Group.String() + " missing"
	case !c.Present:
		return fmt.Sprintf("%s expected %q, field missing", checkLabel(c), c.Expected)
	default:
		return fmt.Sprintf("%s expected %q, got %q", checkLabel(c), c.Expected, c.Actual)
	}
}

// joinLabels joins check labels with commas and "and".
func joinLabels(labels []string) string {
	switch len(labels) {
	case 0:
		return ""
	case 1:
		return labels[0]
	case 2:
		return labels[0] + " and " + labels[1]
	default:
		return strings.Join(labels[:len(labels)-1], ", ") + ", and " + labels[len(labels)-1]
	}
}
