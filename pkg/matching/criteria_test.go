package matching

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/woodsbury/decimal128"

	"github.com/qfu/fixmatch/pkg/fix"
)

func TestBuilder_Build(t *testing.T) {
	c, err := NewBuilder().
		OfType(fix.MsgTypeNewOrderList).
		With(fix.TagClOrdID, "ABC").
		With(fix.TagSide, fix.SideBuy).
		WithHeader(Header().With(fix.TagSenderSubID, "XYZ")).
		WithHeaderField(fix.TagTargetCompID, "EXCH").
		WithGroup(Group(1, fix.TagNoOrders).With(fix.TagClOrdID, "DEF")).
		WithGroupField(1, fix.TagNoOrders, fix.TagSide, fix.SideSell).
		WithGroup(Group(2, fix.TagNoOrders)).
		Build()
	require.NoError(t, err)

	mt, ok := c.MsgType()
	assert.True(t, ok)
	assert.Equal(t, fix.MsgTypeNewOrderList, mt)

	assert.Equal(t, []FieldExpectation{Field(fix.TagClOrdID, "ABC"), Field(fix.TagSide, fix.SideBuy)}, c.Body())
	assert.Equal(t, []FieldExpectation{Field(fix.TagSenderSubID, "XYZ"), Field(fix.TagTargetCompID, "EXCH")}, c.Header())

	groups := c.Groups()
	require.Len(t, groups, 2)
	assert.Equal(t, GroupAddress{Occurrence: 1, Tag: fix.TagNoOrders}, groups[0].Address)
	assert.Equal(t, []FieldExpectation{Field(fix.TagClOrdID, "DEF"), Field(fix.TagSide, fix.SideSell)}, groups[0].Fields)
	assert.Equal(t, GroupAddress{Occurrence: 2, Tag: fix.TagNoOrders}, groups[1].Address)
	assert.Empty(t, groups[1].Fields)

	fields, ok := c.GroupFields(GroupAddress{Occurrence: 2, Tag: fix.TagNoOrders})
	assert.True(t, ok, "an address with no fields is still declared")
	assert.Empty(t, fields)
	_, ok = c.GroupFields(GroupAddress{Occurrence: 3, Tag: fix.TagNoOrders})
	assert.False(t, ok)

	assert.Equal(t, 6, c.Len())
}

func TestBuilder_EmptyCriteria(t *testing.T) {
	c, err := NewBuilder().Build()
	require.NoError(t, err)

	_, ok := c.MsgType()
	assert.False(t, ok)
	assert.Empty(t, c.Body())
	assert.Empty(t, c.Header())
	assert.Empty(t, c.Groups())
	assert.Equal(t, 0, c.Len())
}

func TestBuilder_DuplicateTypeConstraint(t *testing.T) {
	b := NewBuilder().
		OfType(fix.MsgTypeNewOrderSingle).
		With(fix.TagClOrdID, "ABC")

	b.OfType(fix.MsgTypeExecutionReport)

	err := b.Err()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTypeAlreadyDefined))

	var te *TypeAlreadyDefinedError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, fix.MsgTypeNewOrderSingle, te.Existing)
	assert.Equal(t, fix.MsgTypeExecutionReport, te.Attempted)

	// Prior state is untouched.
	assert.Equal(t, fix.MsgTypeNewOrderSingle, b.msgType)
	assert.True(t, b.hasType)
	assert.Equal(t, []FieldExpectation{Field(fix.TagClOrdID, "ABC")}, b.body)

	_, err = b.Build()
	assert.True(t, errors.Is(err, ErrTypeAlreadyDefined))
	assert.Panics(t, func() { b.MustBuild() })
}

func TestBuilder_SameTypeTwiceIsStillAnError(t *testing.T) {
	b := NewBuilder().OfType(fix.MsgTypeNewOrderSingle).OfType(fix.MsgTypeNewOrderSingle)
	assert.True(t, errors.Is(b.Err(), ErrTypeAlreadyDefined))
}

func TestBuilder_FirstErrorWins(t *testing.T) {
	b := NewBuilder().
		WithGroup(Group(0, fix.TagNoOrders).With(fix.TagClOrdID, "X")).
		OfType(fix.MsgTypeLogon).
		OfType(fix.MsgTypeLogout)

	assert.True(t, errors.Is(b.Err(), ErrInvalidGroupAddress))
	assert.False(t, errors.Is(b.Err(), ErrTypeAlreadyDefined))
	assert.Empty(t, b.groups, "rejected address must not be recorded")
}

func TestBuilder_UnsupportedValueIsAcceptedUntilComparison(t *testing.T) {
	c, err := NewBuilder().With(fix.TagClOrdID, []byte("ABC")).Build()
	require.NoError(t, err)
	assert.False(t, c.Body()[0].Value.Valid())
}

func TestBuilder_BuildSnapshotsState(t *testing.T) {
	b := NewBuilder().With(fix.TagClOrdID, "ABC").WithGroupField(1, fix.TagNoOrders, fix.TagClOrdID, "DEF")
	c := b.MustBuild()

	b.With(fix.TagSide, fix.SideBuy).WithGroupField(1, fix.TagNoOrders, fix.TagSide, fix.SideBuy)

	assert.Len(t, c.Body(), 1)
	fields, _ := c.GroupFields(GroupAddress{Occurrence: 1, Tag: fix.TagNoOrders})
	assert.Len(t, fields, 1)
}

func TestCriteria_AccessorsReturnCopies(t *testing.T) {
	c := NewBuilder().
		With(fix.TagClOrdID, "ABC").
		WithGroupField(1, fix.TagNoOrders, fix.TagClOrdID, "DEF").
		MustBuild()

	body := c.Body()
	body[0] = Field(fix.TagClOrdID, "changed")
	groups := c.Groups()
	groups[0].Fields[0] = Field(fix.TagClOrdID, "changed")

	assert.Equal(t, Field(fix.TagClOrdID, "ABC"), c.Body()[0])
	assert.Equal(t, Field(fix.TagClOrdID, "DEF"), c.Groups()[0].Fields[0])
}

func TestCriteria_Equal(t *testing.T) {
	build := func(order []int) *Criteria {
		b := NewBuilder().OfType(fix.MsgTypeNewOrderList)
		fields := []FieldExpectation{
			Field(fix.TagClOrdID, "ABC"),
			Field(fix.TagPrice, decimal128.MustParse("1.25")),
			Field(fix.TagSide, fix.SideBuy),
		}
		for _, i := range order {
			b.WithField(fields[i])
		}
		return b.
			WithHeader(Header().With(fix.TagSenderSubID, "XYZ")).
			WithGroup(Group(1, fix.TagNoOrders).With(fix.TagClOrdID, "DEF").With(fix.TagSide, fix.SideSell)).
			WithGroup(Group(2, fix.TagNoOrders)).
			MustBuild()
	}

	a := build([]int{0, 1, 2})
	b := build([]int{2, 0, 1})
	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))
	assert.Equal(t, a.Hash(), b.Hash())

	t.Run("group order and field order ignored", func(t *testing.T) {
		x := NewBuilder().
			WithGroup(Group(2, fix.TagNoOrders).With(fix.TagClOrdID, "2")).
			WithGroup(Group(1, fix.TagNoOrders).With(fix.TagClOrdID, "1").With(fix.TagSide, fix.SideBuy)).
			MustBuild()
		y := NewBuilder().
			WithGroup(Group(1, fix.TagNoOrders).With(fix.TagSide, fix.SideBuy).With(fix.TagClOrdID, "1")).
			WithGroup(Group(2, fix.TagNoOrders).With(fix.TagClOrdID, "2")).
			MustBuild()
		assert.True(t, x.Equal(y))
		assert.Equal(t, x.Hash(), y.Hash())
	})

	t.Run("decimal scale ignored", func(t *testing.T) {
		x := NewBuilder().With(fix.TagPrice, decimal128.MustParse("1.25")).MustBuild()
		y := NewBuilder().With(fix.TagPrice, decimal128.MustParse("1.2500")).MustBuild()
		assert.True(t, x.Equal(y))
		assert.Equal(t, x.Hash(), y.Hash())
	})

	t.Run("duplicates are counted", func(t *testing.T) {
		x := NewBuilder().With(1, "a").With(1, "a").With(2, "b").MustBuild()
		y := NewBuilder().With(1, "a").With(2, "b").With(2, "b").MustBuild()
		assert.False(t, x.Equal(y))
	})

	unequal := map[string]*Criteria{
		"different type":        NewBuilder().OfType(fix.MsgTypeNewOrderSingle).MustBuild(),
		"type vs no type":       NewBuilder().MustBuild(),
		"body value differs":    build([]int{0, 1}).withBody(Field(fix.TagSide, fix.SideSell)),
		"body kind differs":     build([]int{0, 1}).withBody(Field(fix.TagSide, "1")),
		"body moved to header":  build([]int{0, 1}).withHeader(Field(fix.TagSide, fix.SideBuy)),
		"missing group address": build([]int{0, 1, 2}).withoutGroup(GroupAddress{Occurrence: 2, Tag: fix.TagNoOrders}),
		"group address differs": build([]int{0, 1, 2}).withoutGroup(GroupAddress{Occurrence: 2, Tag: fix.TagNoOrders}).withGroup(GroupAddress{Occurrence: 3, Tag: fix.TagNoOrders}),
		"header value differs":  build([]int{0, 1, 2}).replaceHeader(Field(fix.TagSenderSubID, "XYZZ")),
		"extra group field":     build([]int{0, 1, 2}).withGroupField(GroupAddress{Occurrence: 2, Tag: fix.TagNoOrders}, Field(fix.TagClOrdID, "GHI")),
	}
	for name, other := range unequal {
		t.Run(name, func(t *testing.T) {
			assert.False(t, a.Equal(other))
			assert.False(t, other.Equal(a))
		})
	}

	assert.False(t, a.Equal(nil))
	var nilCriteria *Criteria
	assert.True(t, nilCriteria.Equal(nil))
}

func TestCriteria_String(t *testing.T) {
	c := NewBuilder().OfType(fix.MsgTypeNewOrderSingle).With(fix.TagClOrdID, "ABC").MustBuild()
	assert.Equal(t, "a fix message of type 'NewOrderSingle' with values: [11 = ABC]", c.String())
}

// Helpers that derive a modified copy of a criteria for equality tests.

func (c *Criteria) toBuilder() *Builder {
	b := NewBuilder()
	if c.hasType {
		b.OfType(c.msgType)
	}
	for _, f := range c.body {
		b.WithField(f)
	}
	for _, f := range c.header {
		b.header = append(b.header, f)
	}
	for _, g := range c.groups {
		spec := Group(g.Address.Occurrence, g.Address.Tag)
		spec.fields = append(spec.fields, g.Fields...)
		b.WithGroup(spec)
	}
	return b
}

func (c *Criteria) withBody(f FieldExpectation) *Criteria {
	return c.toBuilder().WithField(f).MustBuild()
}

func (c *Criteria) withHeader(f FieldExpectation) *Criteria {
	b := c.toBuilder()
	b.header = append(b.header, f)
	return b.MustBuild()
}

func (c *Criteria) replaceHeader(f FieldExpectation) *Criteria {
	b := c.toBuilder()
	b.header = []FieldExpectation{f}
	return b.MustBuild()
}

func (c *Criteria) withGroup(addr GroupAddress) *Criteria {
	return c.toBuilder().WithGroup(Group(addr.Occurrence, addr.Tag)).MustBuild()
}

func (c *Criteria) withGroupField(addr GroupAddress, f FieldExpectation) *Criteria {
	spec := Group(addr.Occurrence, addr.Tag)
	spec.fields = append(spec.fields, f)
	return c.toBuilder().WithGroup(spec).MustBuild()
}

func (c *Criteria) withoutGroup(addr GroupAddress) *Criteria {
	b := NewBuilder()
	if c.hasType {
		b.OfType(c.msgType)
	}
	b.body = cloneFields(c.body)
	b.header = cloneFields(c.header)
	for _, g := range c.groups {
		if g.Address == addr {
			continue
		}
		spec := Group(g.Address.Occurrence, g.Address.Tag)
		spec.fields = append(spec.fields, g.Fields...)
		b.WithGroup(spec)
	}
	return b.MustBuild()
}
