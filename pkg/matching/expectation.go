package matching

import "fmt"

// FieldExpectation requires field Tag to hold Value.
type FieldExpectation struct {
	Tag   int
	Value Value
}

// Field builds an expectation from a Go value, see ValueOf.
func Field(tag int, v any) FieldExpectation {
	return FieldExpectation{Tag: tag, Value: ValueOf(v)}
}

// Equal reports whether both the tags and the values are equal.
func (e FieldExpectation) Equal(o FieldExpectation) bool {
	return e.Tag == o.Tag && e.Value.Equal(o.Value)
}

func (e FieldExpectation) String() string {
	return fmt.Sprintf("%d = %s", e.Tag, e.Value)
}

// GroupAddress identifies the Occurrence-th (1-based) instance of the
// repeating group Tag, counted in attachment order.
type GroupAddress struct {
	Occurrence int `json:"occurrence"`
	Tag        int `json:"tag"`
}

// Valid reports whether the occurrence index is at least 1.
func (a GroupAddress) Valid() bool {
	return a.Occurrence >= 1
}

func (a GroupAddress) String() string {
	return fmt.Sprintf("%d. group %d", a.Occurrence, a.Tag)
}

// GroupExpectations are the field expectations for one group occurrence. An
// empty Fields list still requires the occurrence to exist.
type GroupExpectations struct {
	Address GroupAddress
	Fields  []FieldExpectation
}

// sameExpectations reports whether a and b hold the same multiset of
// expectations, ignoring order.
func sameExpectations(a, b []FieldExpectation) bool {
	if len(a) != len(b) {
		return false
	}
	used := make([]bool, len(b))
outer:
	for _, x := range a {
		for j, y := range b {
			if !used[j] && x.Equal(y) {
				used[j] = true
				continue outer
			}
		}
		return false
	}
	return true
}
