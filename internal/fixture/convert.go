package fixture

import (
	"fmt"
	"strings"

	"github.com/qfu/fixmatch/pkg/fix"
	"github.com/qfu/fixmatch/pkg/matching"
)

// Expected parses the declared value as its kind. Bool fields accept YAML
// true and false alongside the FIX Y and N.
func (f FieldDoc) Expected() (matching.Value, error) {
	s := f.Value
	if f.Kind == matching.KindBool {
		switch strings.ToLower(s) {
		case "true":
			s = fix.BoolTrue
		case "false":
			s = fix.BoolFalse
		}
	}
	v, err := matching.ParseValue(f.Kind, s)
	if err != nil {
		return matching.Value{}, fmt.Errorf("tag %d: invalid %s %q: %w", f.Tag, f.Kind, f.Value, err)
	}
	return v, nil
}

// ToCriteria builds criteria from d. Configuration errors recorded by the
// builder are returned as is.
func ToCriteria(d *CriteriaDoc) (*matching.Criteria, error) {
	if d == nil {
		return nil, nil
	}
	b := matching.NewBuilder()
	if d.Type != "" {
		b.OfType(fix.ParseMsgType(d.Type))
	}

	for _, f := range d.Body {
		v, err := f.Expected()
		if err != nil {
			return nil, err
		}
		b.WithValue(f.Tag, v)
	}

	if len(d.Header) > 0 {
		h := matching.Header()
		for _, f := range d.Header {
			v, err := f.Expected()
			if err != nil {
				return nil, err
			}
			h.WithValue(f.Tag, v)
		}
		b.WithHeader(h)
	}

	for _, g := range d.Groups {
		spec := matching.Group(g.Occurrence, g.Tag)
		for _, f := range g.Fields {
			v, err := f.Expected()
			if err != nil {
				return nil, err
			}
			spec.WithValue(f.Tag, v)
		}
		b.WithGroup(spec)
	}

	return b.Build()
}

// ToMessage builds a message from d. Group occurrences are numbered in the
// order they are listed.
func ToMessage(d *MessageDoc) *fix.Message {
	if d == nil {
		return nil
	}
	m := fix.NewMessage(fix.ParseMsgType(d.Type))
	setRaw(&m.Header, d.Header)
	setRaw(&m.Body, d.Body)
	setRaw(&m.Trailer, d.Trailer)
	for _, g := range d.Groups {
		grp := fix.NewGroup(g.Tag)
		setRaw(&grp.FieldMap, g.Fields)
		m.AddGroup(grp)
	}
	return m
}

func setRaw(fm *fix.FieldMap, fields []RawField) {
	for _, f := range fields {
		fm.SetField(f.Tag, f.Value)
	}
}
