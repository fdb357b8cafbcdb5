package fixture

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/qfu/fixmatch/pkg/matching"
)

// File is the content of one fixture file.
type File struct {
	Criteria *CriteriaDoc `yaml:"criteria,omitempty"`
	Message  *MessageDoc  `yaml:"message,omitempty"`
	Cases    []CaseDoc    `yaml:"cases,omitempty"`

	// Path is the file the content was loaded from.
	Path string `yaml:"-"`
}

// CriteriaDoc declares a matching.Criteria.
type CriteriaDoc struct {
	// Type is a message name such as NewOrderSingle, a hierarchy constraint
	// (Message, AdminMessage, AppMessage) or a raw tag 35 value.
	Type   string        `yaml:"type,omitempty"`
	Body   []FieldDoc    `yaml:"body,omitempty"`
	Header []FieldDoc    `yaml:"header,omitempty"`
	Groups []GroupExpDoc `yaml:"groups,omitempty"`
}

// GroupExpDoc declares the expectations for one group occurrence.
type GroupExpDoc struct {
	Occurrence int        `yaml:"occurrence"`
	Tag        int        `yaml:"tag"`
	Fields     []FieldDoc `yaml:"fields,omitempty"`
}

// FieldDoc is one expectation: a tag plus exactly one kind key holding the
// expected value, e.g. {tag: 44, decimal: "1.25"}.
type FieldDoc struct {
	Tag   int
	Kind  matching.Kind
	Value string
}

// UnmarshalYAML reads the tag and the single kind key.
func (f *FieldDoc) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: field expectation must be a mapping", node.Line)
	}
	kinds := 0
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]
		if key.Value == "tag" {
			if err := val.Decode(&f.Tag); err != nil {
				return fmt.Errorf("line %d: tag: %w", val.Line, err)
			}
			continue
		}
		kind, err := matching.ParseKind(key.Value)
		if err != nil {
			return fmt.Errorf("line %d: %w", key.Line, err)
		}
		if val.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: %s value must be a scalar", val.Line, key.Value)
		}
		f.Kind = kind
		f.Value = val.Value
		kinds++
	}
	if kinds != 1 {
		return fmt.Errorf("line %d: field expectation needs exactly one value kind, got %d", node.Line, kinds)
	}
	return nil
}

// MessageDoc declares a fix.Message.
type MessageDoc struct {
	Type    string     `yaml:"type,omitempty"`
	Header  []RawField `yaml:"header,omitempty"`
	Body    []RawField `yaml:"body,omitempty"`
	Trailer []RawField `yaml:"trailer,omitempty"`
	Groups  []GroupDoc `yaml:"groups,omitempty"`
}

// GroupDoc is one group occurrence, numbered by its position among groups
// with the same tag.
type GroupDoc struct {
	Tag    int        `yaml:"tag"`
	Fields []RawField `yaml:"fields,omitempty"`
}

// RawField is a tag with its FIX text value.
type RawField struct {
	Tag   int
	Value string
}

// UnmarshalYAML accepts any scalar as the value so that 1.25 and "1.25"
// are read the same way.
func (r *RawField) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: field must be a mapping", node.Line)
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]
		switch key.Value {
		case "tag":
			if err := val.Decode(&r.Tag); err != nil {
				return fmt.Errorf("line %d: tag: %w", val.Line, err)
			}
		case "value":
			if val.Kind != yaml.ScalarNode {
				return fmt.Errorf("line %d: value must be a scalar", val.Line)
			}
			r.Value = val.Value
		default:
			return fmt.Errorf("line %d: unknown key %q", key.Line, key.Value)
		}
	}
	return nil
}

// Expectation is the outcome a case declares.
type Expectation string

// Case outcomes.
const (
	ExpectMatch   Expectation = "match"
	ExpectNoMatch Expectation = "no-match"
	ExpectError   Expectation = "error"
)

// CaseDoc pairs criteria with a message and the expected outcome.
type CaseDoc struct {
	Name     string       `yaml:"name"`
	Criteria *CriteriaDoc `yaml:"criteria"`
	Message  *MessageDoc  `yaml:"message"`
	Expect   Expectation  `yaml:"expect"`
}
