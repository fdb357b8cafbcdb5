package matching

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/woodsbury/decimal128"

	"github.com/qfu/fixmatch/pkg/fix"
)

func TestValueOf(t *testing.T) {
	ts := time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)
	tests := []struct {
		name string
		in   any
		kind Kind
	}{
		{"string", "ABC", KindText},
		{"rune", 'x', KindChar},
		{"untyped rune constant", fix.SideBuy, KindChar},
		{"int", 42, KindInt},
		{"int64", int64(42), KindInt},
		{"uint16", uint16(7), KindInt},
		{"float64", 1.5, KindFloat},
		{"float32", float32(1.5), KindFloat},
		{"decimal", decimal128.MustParse("1.25"), KindDecimal},
		{"time", ts, KindTimestamp},
		{"bool", true, KindBool},
		{"value", Text("x"), KindText},
		{"struct", struct{}{}, KindInvalid},
		{"slice", []string{"a"}, KindInvalid},
		{"nil", nil, KindInvalid},
		{"huge uint64", uint64(1 << 63), KindInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := ValueOf(tt.in)
			assert.Equal(t, tt.kind, v.Kind())
			assert.Equal(t, tt.kind != KindInvalid, v.Valid())
		})
	}
}

func TestValue_Equal(t *testing.T) {
	ts := time.Date(2024, 5, 6, 7, 8, 9, 123_000_000, time.UTC)

	assert.True(t, Text("a").Equal(Text("a")))
	assert.False(t, Text("1").Equal(Int(1)), "kinds differ")
	assert.False(t, Char('1').Equal(Text("1")), "kinds differ")
	assert.True(t, Decimal(decimal128.MustParse("1.25")).Equal(Decimal(decimal128.MustParse("1.250"))))
	assert.False(t, Decimal(decimal128.MustParse("1.25")).Equal(Decimal(decimal128.MustParse("3.5"))))
	assert.True(t, Timestamp(ts).Equal(Timestamp(ts.Add(400*time.Microsecond))))
	assert.True(t, Timestamp(ts).Equal(Timestamp(ts.In(time.FixedZone("CET", 3600)))))
	assert.False(t, Timestamp(ts).Equal(Timestamp(ts.Add(time.Millisecond))))
	assert.True(t, Float(0.1).Equal(Float(0.1)))
	a, b := 0.1, 0.2
	assert.False(t, Float(a+b).Equal(Float(0.3)), "no tolerance")
	assert.True(t, ValueOf(struct{ A int }{1}).Equal(ValueOf(struct{ A int }{1})))
}

func TestValue_String(t *testing.T) {
	ts := time.Date(2024, 5, 6, 7, 8, 9, 123_000_000, time.UTC)
	assert.Equal(t, "ABC", Text("ABC").String())
	assert.Equal(t, "1", Char('1').String())
	assert.Equal(t, "-12", Int(-12).String())
	assert.Equal(t, "1.25", Float(1.25).String())
	assert.Equal(t, "20240506-07:08:09.123", Timestamp(ts).String())
	assert.Equal(t, "Y", Bool(true).String())
}

func TestParseValue(t *testing.T) {
	v, err := ParseValue(KindDecimal, "101.50")
	require.NoError(t, err)
	assert.True(t, v.Equal(Decimal(decimal128.New(1015, -1))))

	v, err = ParseValue(KindChar, "2")
	require.NoError(t, err)
	assert.True(t, v.Equal(Char(fix.SideSell)))

	v, err = ParseValue(KindTimestamp, "20240506-07:08:09.123")
	require.NoError(t, err)
	assert.Equal(t, KindTimestamp, v.Kind())

	_, err = ParseValue(KindInt, "1.5")
	assert.Error(t, err)

	_, err = ParseValue(KindInvalid, "x")
	assert.True(t, errors.Is(err, ErrUnsupportedValue))
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("Decimal")
	require.NoError(t, err)
	assert.Equal(t, KindDecimal, k)

	_, err = ParseKind("invalid")
	assert.Error(t, err)
	_, err = ParseKind("regex")
	assert.Error(t, err)
}

func TestValue_CanonicalConsistentWithEqual(t *testing.T) {
	pairs := [][2]Value{
		{Decimal(decimal128.MustParse("1.25")), Decimal(decimal128.MustParse("1.2500"))},
		{Decimal(decimal128.MustParse("0")), Decimal(decimal128.MustParse("-0.00"))},
		{Decimal(decimal128.MustParse("100")), Decimal(decimal128.New(1, 2))},
		{Float(0), Float(math.Copysign(0, -1))},
		{Timestamp(time.Unix(10, 5e6)), Timestamp(time.Unix(10, 5e6+999))},
	}
	for _, p := range pairs {
		require.True(t, p[0].Equal(p[1]), "%s vs %s", p[0], p[1])
		assert.Equal(t, p[0].canonical(), p[1].canonical())
	}
}
