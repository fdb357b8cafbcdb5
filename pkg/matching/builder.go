package matching

import (
	"fmt"

	"github.com/qfu/fixmatch/pkg/fix"
)

// Builder accumulates expectations using a fluent API. It is not safe for
// concurrent use; call Build to obtain an immutable Criteria.
type Builder struct {
	msgType fix.MsgType
	hasType bool

	body   []FieldExpectation
	header []FieldExpectation
	groups []GroupExpectations
	index  map[GroupAddress]int

	err error // First error encountered during building
}

// NewBuilder returns an empty Builder. Criteria built from it without
// further calls match every message.
func NewBuilder() *Builder {
	return &Builder{index: make(map[GroupAddress]int)}
}

// setError records the first error encountered during building.
// Subsequent errors are ignored (first error wins pattern).
func (b *Builder) setError(err error) {
	if b.err == nil {
		b.err = err
	}
}

// Err returns any error encountered during building.
func (b *Builder) Err() error {
	return b.err
}

// OfType constrains the message type. It may be called once; a second call
// records a *TypeAlreadyDefinedError and leaves the builder unchanged.
func (b *Builder) OfType(t fix.MsgType) *Builder {
	if b.hasType {
		b.setError(&TypeAlreadyDefinedError{Existing: b.msgType, Attempted: t})
		return b
	}
	b.msgType = t
	b.hasType = true
	return b
}

// With appends a body expectation, see ValueOf for the accepted Go types.
func (b *Builder) With(tag int, v any) *Builder {
	return b.WithField(Field(tag, v))
}

// WithValue appends a body expectation.
func (b *Builder) WithValue(tag int, v Value) *Builder {
	return b.WithField(FieldExpectation{Tag: tag, Value: v})
}

// WithField appends a body expectation.
func (b *Builder) WithField(e FieldExpectation) *Builder {
	b.body = append(b.body, e)
	return b
}

// WithHeaderField appends a header expectation.
func (b *Builder) WithHeaderField(tag int, v any) *Builder {
	b.header = append(b.header, Field(tag, v))
	return b
}

// WithHeader appends every expectation of h to the header expectations.
func (b *Builder) WithHeader(h *HeaderSpec) *Builder {
	if h == nil {
		return b
	}
	b.header = append(b.header, h.fields...)
	return b
}

// WithGroup appends the expectations of g to its address. The address is
// required to exist in the message even when g has no expectations.
func (b *Builder) WithGroup(g *GroupSpec) *Builder {
	if g == nil {
		return b
	}
	if !g.addr.Valid() {
		b.setError(fmt.Errorf("%w: occurrence %d of group %d (occurrences start at 1)",
			ErrInvalidGroupAddress, g.addr.Occurrence, g.addr.Tag))
		return b
	}
	i := b.group(g.addr)
	b.groups[i].Fields = append(b.groups[i].Fields, g.fields...)
	return b
}

// WithGroupField appends a single expectation for the occurrence-th group
// groupTag.
func (b *Builder) WithGroupField(occurrence, groupTag, tag int, v any) *Builder {
	return b.WithGroup(Group(occurrence, groupTag).With(tag, v))
}

func (b *Builder) group(addr GroupAddress) int {
	if b.index == nil {
		b.index = make(map[GroupAddress]int)
	}
	if i, ok := b.index[addr]; ok {
		return i
	}
	b.groups = append(b.groups, GroupExpectations{Address: addr})
	b.index[addr] = len(b.groups) - 1
	return len(b.groups) - 1
}

// Build returns an immutable snapshot of the accumulated expectations, or the
// first error recorded while building. The builder stays usable and later
// calls do not affect criteria already built.
func (b *Builder) Build() (*Criteria, error) {
	if b.err != nil {
		return nil, b.err
	}
	c := &Criteria{
		msgType: b.msgType,
		hasType: b.hasType,
		body:    cloneFields(b.body),
		header:  cloneFields(b.header),
		groups:  cloneGroups(b.groups),
		index:   make(map[GroupAddress]int, len(b.index)),
	}
	for addr, i := range b.index {
		c.index[addr] = i
	}
	return c, nil
}

// MustBuild is like Build but panics on error.
func (b *Builder) MustBuild() *Criteria {
	c, err := b.Build()
	if err != nil {
		panic(err)
	}
	return c
}

// HeaderSpec collects header expectations for Builder.WithHeader.
type HeaderSpec struct {
	fields []FieldExpectation
}

// Header starts a header expectation list.
func Header() *HeaderSpec {
	return &HeaderSpec{}
}

// With appends a header expectation.
func (h *HeaderSpec) With(tag int, v any) *HeaderSpec {
	h.fields = append(h.fields, Field(tag, v))
	return h
}

// WithValue appends a header expectation.
func (h *HeaderSpec) WithValue(tag int, v Value) *HeaderSpec {
	h.fields = append(h.fields, FieldExpectation{Tag: tag, Value: v})
	return h
}

// GroupSpec collects expectations for one group occurrence.
type GroupSpec struct {
	addr   GroupAddress
	fields []FieldExpectation
}

// Group starts an expectation list for the occurrence-th (1-based) group tag.
func Group(occurrence, tag int) *GroupSpec {
	return &GroupSpec{addr: GroupAddress{Occurrence: occurrence, Tag: tag}}
}

// Address returns the group address.
func (g *GroupSpec) Address() GroupAddress {
	return g.addr
}

// With appends a group field expectation.
func (g *GroupSpec) With(tag int, v any) *GroupSpec {
	g.fields = append(g.fields, Field(tag, v))
	return g
}

// WithValue appends a group field expectation.
func (g *GroupSpec) WithValue(tag int, v Value) *GroupSpec {
	g.fields = append(g.fields, FieldExpectation{Tag: tag, Value: v})
	return g
}
