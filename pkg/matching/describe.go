package matching

import (
	"fmt"
	"strconv"
	"strings"
)

// Describe renders c as a sentence, e.g.
//
//	a fix message of type 'NewOrderList' with header values: [50 = XYZ] with values: [11 = ABC] with 1. group 73 values: [11 = DEF]
func Describe(c *Criteria) string {
	var sb strings.Builder
	sb.WriteString("a fix message")
	if c == nil {
		return sb.String()
	}
	if c.hasType {
		fmt.Fprintf(&sb, " of type '%s'", c.msgType.Name())
	}
	if len(c.header) > 0 {
		sb.WriteString(" with header values: ")
		writeExpected(&sb, c.header)
	}
	if len(c.body) > 0 {
		sb.WriteString(" with values: ")
		writeExpected(&sb, c.body)
	}
	for _, g := range c.groups {
		fmt.Fprintf(&sb, " with %s", g.Address)
		if len(g.Fields) == 0 {
			sb.WriteString(" present")
			continue
		}
		sb.WriteString(" values: ")
		writeExpected(&sb, g.Fields)
	}
	return sb.String()
}

// DescribeMismatch renders the parts of m that c looks at, in the same
// layout as Describe.
func DescribeMismatch(c *Criteria, m Message) string {
	if m == nil {
		return "was nil"
	}
	var sb strings.Builder
	sb.WriteString("was a message")
	if c == nil {
		return sb.String()
	}
	if c.hasType {
		name := actualType(m).Name()
		if name == "" {
			name = "untyped"
		}
		fmt.Fprintf(&sb, " of type '%s'", name)
	}
	if len(c.header) > 0 {
		sb.WriteString(" with header values: ")
		writeActual(&sb, m.HeaderFields(), c.header)
	}
	if len(c.body) > 0 {
		sb.WriteString(" with values: ")
		writeActual(&sb, m, c.body)
	}
	locator := DefaultGroupLocator{}
	for _, g := range c.groups {
		gc, ok := locator.Locate(m, g.Address)
		if !ok {
			fmt.Fprintf(&sb, " with %s missing", g.Address)
			continue
		}
		fmt.Fprintf(&sb, " with %s values: ", g.Address)
		writeActual(&sb, gc, g.Fields)
	}
	return sb.String()
}

func writeExpected(sb *strings.Builder, fields []FieldExpectation) {
	sb.WriteByte('[')
	for i, f := range fields {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(f.String())
	}
	sb.WriteByte(']')
}

func writeActual(sb *strings.Builder, c FieldContainer, fields []FieldExpectation) {
	accessor := DefaultFieldAccessor{}
	sb.WriteByte('[')
	for i, f := range fields {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(f.Tag))
		if raw, ok := accessor.Field(c, f.Tag); ok {
			sb.WriteString(" = ")
			sb.WriteString(raw)
		} else {
			sb.WriteString(" is undefined")
		}
	}
	sb.WriteByte(']')
}

// String renders the mismatch as a short sentence.
func (mm *Mismatch) String() string {
	if mm == nil {
		return ""
	}
	switch mm.Gate {
	case GateType:
		if mm.ActualType == "" {
			return fmt.Sprintf("expected message of type '%s' but message has no type", mm.ExpectedType.Name())
		}
		return fmt.Sprintf("expected message of type '%s' but was '%s'", mm.ExpectedType.Name(), mm.ActualType.Name())
	case GateGroup:
		if mm.GroupMissing {
			return fmt.Sprintf("expected %s but it is missing", mm.Group)
		}
		return fmt.Sprintf("%s: %s", mm.Group, fieldMismatch(mm))
	default:
		return fmt.Sprintf("%s: %s", mm.Gate, fieldMismatch(mm))
	}
}

func fieldMismatch(mm *Mismatch) string {
	if !mm.Present {
		return fmt.Sprintf("expected %d = %s but %d is undefined", mm.Tag, mm.Expected, mm.Tag)
	}
	return fmt.Sprintf("expected %d = %s but was %d = %s", mm.Tag, mm.Expected, mm.Tag, mm.Actual)
}
