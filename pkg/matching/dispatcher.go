package matching

// Dispatcher compares the field tag of a container with an expected value.
// Implementations must be stateless so one instance can serve concurrent
// evaluations.
type Dispatcher interface {
	Equals(c FieldContainer, tag int, want Value) (bool, error)
}

// ValueDispatcher selects the comparison from the kind of the expected value.
type ValueDispatcher struct {
	accessor FieldAccessor
}

// NewDispatcher returns a ValueDispatcher reading fields through accessor,
// or through DefaultFieldAccessor when accessor is nil.
func NewDispatcher(accessor FieldAccessor) *ValueDispatcher {
	if accessor == nil {
		accessor = DefaultFieldAccessor{}
	}
	return &ValueDispatcher{accessor: accessor}
}

// Equals reports whether the field holds want. An absent field is a
// non-match. An invalid want fails with *UnsupportedValueError whether or not
// the field is present.
func (d *ValueDispatcher) Equals(c FieldContainer, tag int, want Value) (bool, error) {
	if !want.Valid() {
		return false, &UnsupportedValueError{Tag: tag, Value: want.raw}
	}
	raw, ok := d.accessor.Field(c, tag)
	if !ok {
		return false, nil
	}
	matched, err := want.matchRaw(raw)
	if err != nil {
		return false, &UnsupportedValueError{Tag: tag, Value: want.Interface()}
	}
	return matched, nil
}
