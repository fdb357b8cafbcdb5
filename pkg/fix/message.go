package fix

// Group is one occurrence of a repeating group.
type Group struct {
	FieldMap
	tag int
}

// NewGroup returns an empty occurrence of the group identified by tag.
func NewGroup(tag int) *Group {
	return &Group{tag: tag}
}

// Tag returns the group's count tag (e.g. NoOrders).
func (g *Group) Tag() int {
	return g.tag
}

// Message is a FIX message split into header, body and trailer, plus its
// repeating groups in the order they were attached.
type Message struct {
	Header  FieldMap
	Body    FieldMap
	Trailer FieldMap

	groups []*Group
}

// NewMessage returns a message with tag 35 set to msgType.
func NewMessage(msgType MsgType) *Message {
	m := &Message{}
	if msgType != "" {
		m.Header.SetString(TagMsgType, string(msgType))
	}
	return m
}

// MsgType returns the value of header tag 35, or "" when unset.
func (m *Message) MsgType() MsgType {
	v, _ := m.Header.Lookup(TagMsgType)
	return MsgType(v)
}

// IsInstanceOf reports whether the message is of type t or of a hierarchy
// constraint that includes it.
func (m *Message) IsInstanceOf(t MsgType) bool {
	return m.MsgType().Satisfies(t)
}

// AddGroup attaches a group occurrence. Occurrences of the same tag are
// numbered in attachment order starting at 1.
func (m *Message) AddGroup(g *Group) *Message {
	if g != nil {
		m.groups = append(m.groups, g)
	}
	return m
}

// Group returns the occurrence-th attached group with the given tag.
func (m *Message) Group(occurrence, tag int) (*Group, error) {
	if occurrence >= 1 {
		seen := 0
		for _, g := range m.groups {
			if g.tag != tag {
				continue
			}
			seen++
			if seen == occurrence {
				return g, nil
			}
		}
	}
	return nil, &GroupNotFoundError{Occurrence: occurrence, Tag: tag}
}

// GroupCount returns how many occurrences of tag are attached.
func (m *Message) GroupCount(tag int) int {
	n := 0
	for _, g := range m.groups {
		if g.tag == tag {
			n++
		}
	}
	return n
}

// Groups returns all attached groups in attachment order.
func (m *Message) Groups() []*Group {
	return append([]*Group(nil), m.groups...)
}

// FieldReader is read access to a field container by tag.
type FieldReader interface {
	Lookup(tag int) (string, bool)
}

// Lookup reads a body field.
func (m *Message) Lookup(tag int) (string, bool) {
	return m.Body.Lookup(tag)
}

// HeaderFields returns the header container.
func (m *Message) HeaderFields() FieldReader {
	return &m.Header
}

// GroupInstance returns the occurrence-th group with tag, or false when the
// message has fewer occurrences.
func (m *Message) GroupInstance(occurrence, tag int) (FieldReader, bool) {
	g, err := m.Group(occurrence, tag)
	if err != nil {
		return nil, false
	}
	return g, true
}
