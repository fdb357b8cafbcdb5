package fix

import (
	"time"

	"github.com/woodsbury/decimal128"
)

// FieldMap is an ordered tag/value container. The zero value is ready to use.
//
// Values are held in their FIX text form. Setting a tag that already exists
// replaces its value and keeps its original position.
type FieldMap struct {
	values map[int]string
	order  []int
}

// NewFieldMap returns an empty FieldMap.
func NewFieldMap() *FieldMap {
	return &FieldMap{}
}

// Lookup returns the raw text of tag and whether it is present.
func (m *FieldMap) Lookup(tag int) (string, bool) {
	if m == nil || m.values == nil {
		return "", false
	}
	v, ok := m.values[tag]
	return v, ok
}

// Has reports whether tag is present.
func (m *FieldMap) Has(tag int) bool {
	_, ok := m.Lookup(tag)
	return ok
}

// Len returns the number of fields.
func (m *FieldMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.order)
}

// Tags returns the tags in insertion order.
func (m *FieldMap) Tags() []int {
	if m == nil {
		return nil
	}
	return append([]int(nil), m.order...)
}

// Remove deletes tag if present.
func (m *FieldMap) Remove(tag int) {
	if m == nil || m.values == nil {
		return
	}
	if _, ok := m.values[tag]; !ok {
		return
	}
	delete(m.values, tag)
	for i, t := range m.order {
		if t == tag {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
}

// SetField stores raw as the text of tag.
func (m *FieldMap) SetField(tag int, raw string) *FieldMap {
	if m.values == nil {
		m.values = make(map[int]string)
	}
	if _, ok := m.values[tag]; !ok {
		m.order = append(m.order, tag)
	}
	m.values[tag] = raw
	return m
}

// SetString sets a string field.
func (m *FieldMap) SetString(tag int, v string) *FieldMap {
	return m.SetField(tag, v)
}

// SetChar sets a single character field.
func (m *FieldMap) SetChar(tag int, v rune) *FieldMap {
	return m.SetField(tag, FormatChar(v))
}

// SetInt sets an integer field.
func (m *FieldMap) SetInt(tag int, v int) *FieldMap {
	return m.SetField(tag, FormatInt(v))
}

// SetFloat sets a floating point field.
func (m *FieldMap) SetFloat(tag int, v float64) *FieldMap {
	return m.SetField(tag, FormatFloat(v))
}

// SetDecimal sets a decimal field.
func (m *FieldMap) SetDecimal(tag int, v decimal128.Decimal) *FieldMap {
	return m.SetField(tag, FormatDecimal(v))
}

// SetUTCTimestamp sets a UTC timestamp field with millisecond precision.
func (m *FieldMap) SetUTCTimestamp(tag int, v time.Time) *FieldMap {
	return m.SetField(tag, FormatUTCTimestamp(v))
}

// SetUTCDateOnly sets a UTC date field.
func (m *FieldMap) SetUTCDateOnly(tag int, v time.Time) *FieldMap {
	return m.SetField(tag, FormatUTCDateOnly(v))
}

// SetUTCTimeOnly sets a UTC time-of-day field.
func (m *FieldMap) SetUTCTimeOnly(tag int, v time.Time) *FieldMap {
	return m.SetField(tag, FormatUTCTimeOnly(v))
}

// SetBool sets a Y/N boolean field.
func (m *FieldMap) SetBool(tag int, v bool) *FieldMap {
	return m.SetField(tag, FormatBool(v))
}

// GetString returns the text of tag.
func (m *FieldMap) GetString(tag int) (string, error) {
	v, ok := m.Lookup(tag)
	if !ok {
		return "", &FieldNotFoundError{Tag: tag}
	}
	return v, nil
}

// GetChar returns tag as a single character.
func (m *FieldMap) GetChar(tag int) (rune, error) {
	return get(m, tag, "char", ParseChar)
}

// GetInt returns tag as an integer.
func (m *FieldMap) GetInt(tag int) (int, error) {
	return get(m, tag, "int", ParseInt)
}

// GetFloat returns tag as a float64.
func (m *FieldMap) GetFloat(tag int) (float64, error) {
	return get(m, tag, "float", ParseFloat)
}

// GetDecimal returns tag as a decimal.
func (m *FieldMap) GetDecimal(tag int) (decimal128.Decimal, error) {
	return get(m, tag, "decimal", ParseDecimal)
}

// GetUTCTimestamp returns tag as a UTC timestamp truncated to milliseconds.
func (m *FieldMap) GetUTCTimestamp(tag int) (time.Time, error) {
	return get(m, tag, "UTCTimestamp", ParseUTCTimestamp)
}

// GetUTCDateOnly returns tag as a UTC date.
func (m *FieldMap) GetUTCDateOnly(tag int) (time.Time, error) {
	return get(m, tag, "UTCDateOnly", ParseUTCDateOnly)
}

// GetUTCTimeOnly returns tag as a UTC time of day.
func (m *FieldMap) GetUTCTimeOnly(tag int) (time.Time, error) {
	return get(m, tag, "UTCTimeOnly", ParseUTCTimeOnly)
}

// GetBool returns tag as a boolean.
func (m *FieldMap) GetBool(tag int) (bool, error) {
	return get(m, tag, "bool", ParseBool)
}

func get[T any](m *FieldMap, tag int, typeName string, parse func(string) (T, error)) (T, error) {
	var zero T
	raw, ok := m.Lookup(tag)
	if !ok {
		return zero, &FieldNotFoundError{Tag: tag}
	}
	v, err := parse(raw)
	if err != nil {
		return zero, &ConversionError{Tag: tag, Value: raw, Type: typeName, Err: err}
	}
	return v, nil
}
