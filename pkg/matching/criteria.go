package matching

import (
	"github.com/mitchellh/hashstructure/v2"

	"github.com/qfu/fixmatch/pkg/fix"
)

// Criteria is an immutable set of expectations produced by Builder.Build.
// It is safe for concurrent use.
type Criteria struct {
	msgType fix.MsgType
	hasType bool

	body   []FieldExpectation
	header []FieldExpectation
	groups []GroupExpectations
	index  map[GroupAddress]int
}

// MsgType returns the type constraint and whether one was set.
func (c *Criteria) MsgType() (fix.MsgType, bool) {
	if c == nil {
		return "", false
	}
	return c.msgType, c.hasType
}

// Body returns the body expectations in declaration order.
func (c *Criteria) Body() []FieldExpectation {
	if c == nil {
		return nil
	}
	return cloneFields(c.body)
}

// Header returns the header expectations in declaration order.
func (c *Criteria) Header() []FieldExpectation {
	if c == nil {
		return nil
	}
	return cloneFields(c.header)
}

// Groups returns the group expectations in the order their addresses were
// first declared.
func (c *Criteria) Groups() []GroupExpectations {
	if c == nil {
		return nil
	}
	return cloneGroups(c.groups)
}

// GroupFields returns the expectations declared for addr.
func (c *Criteria) GroupFields(addr GroupAddress) ([]FieldExpectation, bool) {
	if c == nil {
		return nil, false
	}
	i, ok := c.index[addr]
	if !ok {
		return nil, false
	}
	return cloneFields(c.groups[i].Fields), true
}

// Len returns the number of field checks, not counting the type constraint.
func (c *Criteria) Len() int {
	if c == nil {
		return 0
	}
	n := len(c.body) + len(c.header)
	for _, g := range c.groups {
		n += len(g.Fields)
	}
	return n
}

// Equal reports structural equality: the same type constraint and the same
// expectations per list regardless of declaration order.
func (c *Criteria) Equal(o *Criteria) bool {
	if c == nil || o == nil {
		return c == o
	}
	if c.hasType != o.hasType || c.msgType != o.msgType {
		return false
	}
	if !sameExpectations(c.body, o.body) || !sameExpectations(c.header, o.header) {
		return false
	}
	if len(c.groups) != len(o.groups) {
		return false
	}
	for _, g := range c.groups {
		i, ok := o.index[g.Address]
		if !ok || !sameExpectations(g.Fields, o.groups[i].Fields) {
			return false
		}
	}
	return true
}

// Hash returns a hash consistent with Equal.
func (c *Criteria) Hash() uint64 {
	if c == nil {
		return 0
	}
	h, err := hashstructure.Hash(c.hashKey(), hashstructure.FormatV2, nil)
	if err != nil {
		// hashKey only holds strings, ints and slices of them.
		return 0
	}
	return h
}

// Matches evaluates m with a default Evaluator.
func (c *Criteria) Matches(m Message) (bool, error) {
	return defaultEvaluator.Evaluate(c, m)
}

func (c *Criteria) String() string {
	return Describe(c)
}

type expectationKey struct {
	Tag   int
	Kind  Kind
	Value string
}

type groupKey struct {
	Occurrence int
	Tag        int
	Fields     []expectationKey `hash:"set"`
}

type criteriaKey struct {
	MsgType string
	HasType bool
	Body    []expectationKey `hash:"set"`
	Header  []expectationKey `hash:"set"`
	Groups  []groupKey       `hash:"set"`
}

func (c *Criteria) hashKey() criteriaKey {
	k := criteriaKey{
		MsgType: string(c.msgType),
		HasType: c.hasType,
		Body:    expectationKeys(c.body),
		Header:  expectationKeys(c.header),
	}
	for _, g := range c.groups {
		k.Groups = append(k.Groups, groupKey{
			Occurrence: g.Address.Occurrence,
			Tag:        g.Address.Tag,
			Fields:     expectationKeys(g.Fields),
		})
	}
	return k
}

func expectationKeys(fields []FieldExpectation) []expectationKey {
	keys := make([]expectationKey, 0, len(fields))
	for _, f := range fields {
		keys = append(keys, expectationKey{Tag: f.Tag, Kind: f.Value.kind, Value: f.Value.canonical()})
	}
	return keys
}

func cloneFields(fields []FieldExpectation) []FieldExpectation {
	if fields == nil {
		return nil
	}
	return append([]FieldExpectation(nil), fields...)
}

func cloneGroups(groups []GroupExpectations) []GroupExpectations {
	if groups == nil {
		return nil
	}
	out := make([]GroupExpectations, len(groups))
	for i, g := range groups {
		out[i] = GroupExpectations{Address: g.Address, Fields: cloneFields(g.Fields)}
	}
	return out
}
