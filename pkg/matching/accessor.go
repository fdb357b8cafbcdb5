package matching

import "github.com/qfu/fixmatch/pkg/fix"

// FieldContainer is any flat tag/value container: a message body, its header
// or a group occurrence.
type FieldContainer = fix.FieldReader

// Message is the read-only view of a candidate message used during evaluation.
// The embedded FieldContainer is the message body. *fix.Message implements it.
type Message interface {
	FieldContainer
	HeaderFields() FieldContainer
	GroupInstance(occurrence, tag int) (FieldContainer, bool)
	IsInstanceOf(t fix.MsgType) bool
}

// FieldAccessor reads the raw text of a field from any container.
type FieldAccessor interface {
	Field(c FieldContainer, tag int) (raw string, found bool)
}

// GroupLocator resolves a group address against a message.
type GroupLocator interface {
	Locate(m Message, addr GroupAddress) (FieldContainer, bool)
}

// DefaultFieldAccessor reads fields through FieldContainer.Lookup.
type DefaultFieldAccessor struct{}

// Field returns the raw value of tag. A nil container has no fields.
func (DefaultFieldAccessor) Field(c FieldContainer, tag int) (string, bool) {
	if c == nil {
		return "", false
	}
	return c.Lookup(tag)
}

// DefaultGroupLocator resolves addresses through Message.GroupInstance.
type DefaultGroupLocator struct{}

// Locate returns the addressed group occurrence. Occurrence indexes below 1
// are never found.
func (DefaultGroupLocator) Locate(m Message, addr GroupAddress) (FieldContainer, bool) {
	if m == nil || !addr.Valid() {
		return nil, false
	}
	c, ok := m.GroupInstance(addr.Occurrence, addr.Tag)
	if !ok || c == nil {
		return nil, false
	}
	return c, true
}
