package matching

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/woodsbury/decimal128"

	"github.com/qfu/fixmatch/pkg/fix"
)

func TestValueDispatcher_Equals(t *testing.T) {
	ts := time.Date(2024, 3, 1, 10, 15, 30, 123_000_000, time.UTC)

	fm := fix.NewFieldMap()
	fm.SetString(fix.TagClOrdID, "ABC").
		SetChar(fix.TagSide, fix.SideBuy).
		SetInt(fix.TagOrderQty, 100).
		SetFloat(fix.TagPrice, 1.25).
		SetDecimal(fix.TagAvgPx, decimal128.MustParse("1.25")).
		SetUTCTimestamp(fix.TagTransactTime, ts).
		SetBool(fix.TagSolicitedFlag, true).
		SetField(fix.TagSettlDate, "20240301")

	d := NewDispatcher(nil)

	tests := []struct {
		name string
		tag  int
		want Value
		ok   bool
	}{
		{"text equal", fix.TagClOrdID, Text("ABC"), true},
		{"text unequal", fix.TagClOrdID, Text("abc"), false},
		{"char equal", fix.TagSide, Char(fix.SideBuy), true},
		{"char unequal", fix.TagSide, Char(fix.SideSell), false},
		{"int equal", fix.TagOrderQty, Int(100), true},
		{"int unequal", fix.TagOrderQty, Int(101), false},
		{"float equal", fix.TagPrice, Float(1.25), true},
		{"float unequal", fix.TagPrice, Float(1.2500001), false},
		{"decimal same text", fix.TagAvgPx, Decimal(decimal128.MustParse("1.25")), true},
		{"decimal other scale", fix.TagAvgPx, Decimal(decimal128.MustParse("1.250")), true},
		{"decimal from parts", fix.TagAvgPx, Decimal(decimal128.New(125, -2)), true},
		{"decimal unequal", fix.TagAvgPx, Decimal(decimal128.MustParse("3.5")), false},
		{"decimal reads float field", fix.TagPrice, Decimal(decimal128.MustParse("1.25")), true},
		{"timestamp equal", fix.TagTransactTime, Timestamp(ts), true},
		{"timestamp sub-millisecond", fix.TagTransactTime, Timestamp(ts.Add(999 * time.Microsecond)), true},
		{"timestamp unequal", fix.TagTransactTime, Timestamp(ts.Add(time.Millisecond)), false},
		{"timestamp against date-only", fix.TagSettlDate, Timestamp(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)), false},
		{"bool equal", fix.TagSolicitedFlag, Bool(true), true},
		{"bool unequal", fix.TagSolicitedFlag, Bool(false), false},
		{"text does not read as int", fix.TagClOrdID, Int(0), false},
		{"int field as text", fix.TagOrderQty, Text("100"), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := d.Equals(fm, tt.tag, tt.want)
			require.NoError(t, err)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestValueDispatcher_AbsentFieldIsNoMatch(t *testing.T) {
	d := NewDispatcher(nil)
	fm := fix.NewFieldMap()

	for _, v := range []Value{Text("x"), Char('x'), Int(1), Float(1), Decimal(decimal128.New(1, 0)), Timestamp(time.Now()), Bool(true)} {
		ok, err := d.Equals(fm, 999, v)
		require.NoError(t, err, v.Kind().String())
		assert.False(t, ok, v.Kind().String())
	}

	ok, err := d.Equals(nil, 1, Text("x"))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestValueDispatcher_UnsupportedValue(t *testing.T) {
	d := NewDispatcher(nil)
	fm := fix.NewFieldMap()
	fm.SetString(fix.TagClOrdID, "ABC")

	type custom struct{ ID string }

	for _, tag := range []int{fix.TagClOrdID, 999} {
		ok, err := d.Equals(fm, tag, ValueOf(custom{ID: "ABC"}))
		require.Error(t, err)
		assert.False(t, ok)
		assert.True(t, errors.Is(err, ErrUnsupportedValue))

		var uv *UnsupportedValueError
		require.True(t, errors.As(err, &uv))
		assert.Equal(t, tag, uv.Tag)
		assert.Contains(t, err.Error(), "matching.custom")
	}
}

type recordingAccessor struct {
	tags []int
}

func (a *recordingAccessor) Field(c FieldContainer, tag int) (string, bool) {
	a.tags = append(a.tags, tag)
	return DefaultFieldAccessor{}.Field(c, tag)
}

func TestNewDispatcher_UsesAccessor(t *testing.T) {
	acc := &recordingAccessor{}
	d := NewDispatcher(acc)
	fm := fix.NewFieldMap()
	fm.SetString(1, "a")

	ok, err := d.Equals(fm, 1, Text("a"))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []int{1}, acc.tags)
}

func TestDefaultGroupLocator(t *testing.T) {
	msg := fix.NewMessage(fix.MsgTypeNewOrderList)
	g := fix.NewGroup(fix.TagNoOrders)
	g.SetString(fix.TagClOrdID, "DEF")
	msg.AddGroup(g)

	loc := DefaultGroupLocator{}

	c, ok := loc.Locate(msg, GroupAddress{Occurrence: 1, Tag: fix.TagNoOrders})
	require.True(t, ok)
	v, _ := c.Lookup(fix.TagClOrdID)
	assert.Equal(t, "DEF", v)

	for _, addr := range []GroupAddress{{0, fix.TagNoOrders}, {-1, fix.TagNoOrders}, {2, fix.TagNoOrders}, {1, fix.TagNoPartyIDs}} {
		_, ok := loc.Locate(msg, addr)
		assert.False(t, ok, addr.String())
	}

	_, ok = loc.Locate(nil, GroupAddress{Occurrence: 1, Tag: fix.TagNoOrders})
	assert.False(t, ok)
}
