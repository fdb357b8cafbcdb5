package fix

import (
	"errors"
	"fmt"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/woodsbury/decimal128"
)

// Time layouts used by the UTC field types.
const (
	UTCTimestampLayout = "20060102-15:04:05.000"
	UTCDateOnlyLayout  = "20060102"
	UTCTimeOnlyLayout  = "15:04:05.000"

	// Parsing accepts any fractional second precision after the seconds field.
	utcTimestampParseLayout = "20060102-15:04:05"
	utcTimeOnlyParseLayout  = "15:04:05"
)

// Boolean field values.
const (
	BoolTrue  = "Y"
	BoolFalse = "N"
)

var errEmptyValue = errors.New("empty value")

// FormatChar encodes a single character field.
func FormatChar(c rune) string {
	return string(c)
}

// ParseChar decodes a single character field.
func ParseChar(s string) (rune, error) {
	if s == "" {
		return 0, errEmptyValue
	}
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || size != len(s) {
		return 0, fmt.Errorf("expected a single character, got %q", s)
	}
	return r, nil
}

// FormatInt encodes an integer field.
func FormatInt(i int) string {
	return strconv.Itoa(i)
}

// ParseInt decodes an integer field.
func ParseInt(s string) (int, error) {
	return strconv.Atoi(s)
}

// FormatFloat encodes a floating point field with the shortest exact representation.
func FormatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// ParseFloat decodes a floating point field.
func ParseFloat(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}

// FormatDecimal encodes a decimal field without an exponent.
func FormatDecimal(d decimal128.Decimal) string {
	return decimal128.Format(d, 'f', -1)
}

// ParseDecimal decodes a decimal field.
func ParseDecimal(s string) (decimal128.Decimal, error) {
	if s == "" {
		return decimal128.Decimal{}, errEmptyValue
	}
	d, err := decimal128.Parse(s)
	if err != nil {
		return decimal128.Decimal{}, err
	}
	if d.IsNaN() || d.IsInf(0) {
		return decimal128.Decimal{}, fmt.Errorf("non-finite decimal %q", s)
	}
	return d, nil
}

// FormatUTCTimestamp encodes a UTC timestamp with millisecond precision.
func FormatUTCTimestamp(t time.Time) string {
	return t.UTC().Format(UTCTimestampLayout)
}

// ParseUTCTimestamp decodes a UTC timestamp. Precision beyond milliseconds is dropped.
func ParseUTCTimestamp(s string) (time.Time, error) {
	t, err := time.ParseInLocation(utcTimestampParseLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	return t.Truncate(time.Millisecond), nil
}

// FormatUTCDateOnly encodes the date part of t.
func FormatUTCDateOnly(t time.Time) string {
	return t.UTC().Format(UTCDateOnlyLayout)
}

// ParseUTCDateOnly decodes a date-only field as midnight UTC.
func ParseUTCDateOnly(s string) (time.Time, error) {
	return time.ParseInLocation(UTCDateOnlyLayout, s, time.UTC)
}

// FormatUTCTimeOnly encodes the time-of-day part of t.
func FormatUTCTimeOnly(t time.Time) string {
	return t.UTC().Format(UTCTimeOnlyLayout)
}

// ParseUTCTimeOnly decodes a time-only field on the zero date.
func ParseUTCTimeOnly(s string) (time.Time, error) {
	t, err := time.ParseInLocation(utcTimeOnlyParseLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	return t.Truncate(time.Millisecond), nil
}

// FormatBool encodes a boolean field as Y or N.
func FormatBool(b bool) string {
	if b {
		return BoolTrue
	}
	return BoolFalse
}

// ParseBool decodes a Y/N boolean field.
func ParseBool(s string) (bool, error) {
	switch s {
	case BoolTrue:
		return true, nil
	case BoolFalse:
		return false, nil
	default:
		return false, fmt.Errorf("expected %s or %s, got %q", BoolTrue, BoolFalse, s)
	}
}
