package matching

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/woodsbury/decimal128"

	"github.com/qfu/fixmatch/pkg/fix"
)

// Kind identifies how an expected value is compared against a field.
type Kind uint8

// Supported kinds. KindInvalid marks a value built from an unsupported Go type.
const (
	KindInvalid Kind = iota
	KindText
	KindChar
	KindInt
	KindFloat
	KindDecimal
	KindTimestamp
	KindBool
)

var kindNames = [...]string{
	KindInvalid:   "invalid",
	KindText:      "text",
	KindChar:      "char",
	KindInt:       "int",
	KindFloat:     "float",
	KindDecimal:   "decimal",
	KindTimestamp: "timestamp",
	KindBool:      "bool",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// ParseKind resolves a kind name as produced by Kind.String.
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, name := range kindNames {
		if k != int(KindInvalid) && name == s {
			return Kind(k), nil
		}
	}
	return KindInvalid, fmt.Errorf("unknown value kind %q", s)
}

// Value is an expected field value tagged with its Kind.
type Value struct {
	kind Kind

	s string
	c rune
	i int64
	f float64
	d decimal128.Decimal
	t time.Time
	b bool

	// raw holds the original Go value when kind is KindInvalid.
	raw any
}

// Text returns a value compared by exact string equality.
func Text(s string) Value { return Value{kind: KindText, s: s} }

// Char returns a value compared as a single character.
func Char(c rune) Value { return Value{kind: KindChar, c: c} }

// Int returns a value compared by integer equality.
func Int(i int64) Value { return Value{kind: KindInt, i: i} }

// Float returns a value compared by exact float64 equality, without tolerance.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// Decimal returns a value compared by numeric value, ignoring scale.
func Decimal(d decimal128.Decimal) Value { return Value{kind: KindDecimal, d: d} }

// Timestamp returns a value compared as a UTC instant at millisecond precision.
func Timestamp(t time.Time) Value {
	return Value{kind: KindTimestamp, t: t.UTC().Truncate(time.Millisecond)}
}

// Bool returns a value compared against a Y/N field.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// ValueOf maps a Go value to its Value. Strings are text, runes are chars,
// other integer types are ints. A Go type with no corresponding kind yields an
// invalid Value that fails when it is compared.
func ValueOf(v any) Value {
	switch x := v.(type) {
	case Value:
		return x
	case string:
		return Text(x)
	case rune:
		return Char(x)
	case int:
		return Int(int64(x))
	case int8:
		return Int(int64(x))
	case int16:
		return Int(int64(x))
	case int64:
		return Int(x)
	case uint8:
		return Int(int64(x))
	case uint16:
		return Int(int64(x))
	case uint32:
		return Int(int64(x))
	case uint:
		if uint64(x) > math.MaxInt64 {
			break
		}
		return Int(int64(x))
	case uint64:
		if x > math.MaxInt64 {
			break
		}
		return Int(int64(x))
	case float32:
		return Float(float64(x))
	case float64:
		return Float(x)
	case decimal128.Decimal:
		return Decimal(x)
	case time.Time:
		return Timestamp(x)
	case bool:
		return Bool(x)
	}
	return Value{raw: v}
}

// ParseValue reads s as a value of kind k, using the FIX text conventions.
func ParseValue(k Kind, s string) (Value, error) {
	switch k {
	case KindText:
		return Text(s), nil
	case KindChar:
		c, err := fix.ParseChar(s)
		if err != nil {
			return Value{}, err
		}
		return Char(c), nil
	case KindInt:
		i, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return Value{}, err
		}
		return Int(i), nil
	case KindFloat:
		f, err := fix.ParseFloat(s)
		if err != nil {
			return Value{}, err
		}
		return Float(f), nil
	case KindDecimal:
		d, err := fix.ParseDecimal(s)
		if err != nil {
			return Value{}, err
		}
		return Decimal(d), nil
	case KindTimestamp:
		t, err := fix.ParseUTCTimestamp(s)
		if err != nil {
			return Value{}, err
		}
		return Timestamp(t), nil
	case KindBool:
		b, err := fix.ParseBool(s)
		if err != nil {
			return Value{}, err
		}
		return Bool(b), nil
	}
	return Value{}, fmt.Errorf("%w: kind %s", ErrUnsupportedValue, k)
}

// Kind returns the value's kind.
func (v Value) Kind() Kind { return v.kind }

// Valid reports whether the value has a supported kind.
func (v Value) Valid() bool { return v.kind != KindInvalid }

// Interface returns the value as a plain Go value.
func (v Value) Interface() any {
	switch v.kind {
	case KindText:
		return v.s
	case KindChar:
		return v.c
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	case KindDecimal:
		return v.d
	case KindTimestamp:
		return v.t
	case KindBool:
		return v.b
	}
	return v.raw
}

// String renders the value in FIX text form.
func (v Value) String() string {
	switch v.kind {
	case KindText:
		return v.s
	case KindChar:
		return fix.FormatChar(v.c)
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return fix.FormatFloat(v.f)
	case KindDecimal:
		return fix.FormatDecimal(v.d)
	case KindTimestamp:
		return fix.FormatUTCTimestamp(v.t)
	case KindBool:
		return fix.FormatBool(v.b)
	}
	return fmt.Sprintf("%v (%T)", v.raw, v.raw)
}

// Equal reports whether v and o have the same kind and the same value under
// that kind's equality.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindText:
		return v.s == o.s
	case KindChar:
		return v.c == o.c
	case KindInt:
		return v.i == o.i
	case KindFloat:
		return v.f == o.f
	case KindDecimal:
		return v.d.Equal(o.d)
	case KindTimestamp:
		return v.t.Equal(o.t)
	case KindBool:
		return v.b == o.b
	}
	return reflect.DeepEqual(v.raw, o.raw)
}

// canonical is a string form that is identical for Equal values.
func (v Value) canonical() string {
	switch v.kind {
	case KindFloat:
		if v.f == 0 {
			return "0"
		}
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindDecimal:
		if v.d.IsZero() {
			return "0"
		}
		return fix.FormatDecimal(v.d.Canonical())
	case KindTimestamp:
		return strconv.FormatInt(v.t.UnixMilli(), 10)
	}
	return v.String()
}

// matchRaw compares the raw text of a field with v. Text that cannot be read
// as v's kind does not match.
func (v Value) matchRaw(raw string) (bool, error) {
	switch v.kind {
	case KindText:
		return raw == v.s, nil
	case KindChar:
		c, err := fix.ParseChar(raw)
		return err == nil && c == v.c, nil
	case KindInt:
		i, err := strconv.ParseInt(raw, 10, 64)
		return err == nil && i == v.i, nil
	case KindFloat:
		f, err := fix.ParseFloat(raw)
		return err == nil && f == v.f, nil
	case KindDecimal:
		d, err := fix.ParseDecimal(raw)
		return err == nil && d.Equal(v.d), nil
	case KindTimestamp:
		t, err := fix.ParseUTCTimestamp(raw)
		return err == nil && t.Equal(v.t), nil
	case KindBool:
		b, err := fix.ParseBool(raw)
		return err == nil && b == v.b, nil
	case KindInvalid:
		return false, ErrUnsupportedValue
	}
	return false, fmt.Errorf("%w: kind %s", ErrUnsupportedValue, v.kind)
}
