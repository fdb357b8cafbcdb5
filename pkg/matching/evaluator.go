package matching

import (
	"log/slog"

	"github.com/qfu/fixmatch/pkg/fix"
	"github.com/qfu/fixmatch/pkg/logging"
)

// Gate is one evaluation stage. Gates run in declaration order of the constants.
type Gate int

// Evaluation gates.
const (
	GateType Gate = iota
	GateBody
	GateHeader
	GateGroup
)

func (g Gate) String() string {
	switch g {
	case GateType:
		return "type"
	case GateBody:
		return "body"
	case GateHeader:
		return "header"
	case GateGroup:
		return "group"
	default:
		return "unknown"
	}
}

// Mismatch describes the first check that failed.
type Mismatch struct {
	Gate Gate

	// ExpectedType and ActualType are set for GateType.
	ExpectedType fix.MsgType
	ActualType   fix.MsgType

	// Group is set for GateGroup. GroupMissing reports that the occurrence
	// does not exist, in which case no field check ran.
	Group        GroupAddress
	GroupMissing bool

	// Field check details, unset when the type gate failed or the group is missing.
	Tag      int
	Expected Value
	Present  bool
	Actual   string
}

// Result is the outcome of Explain.
type Result struct {
	Matched  bool
	Mismatch *Mismatch
}

// Evaluator runs criteria against messages. It holds no per-evaluation state
// and is safe for concurrent use when its collaborators are.
type Evaluator struct {
	dispatcher Dispatcher
	accessor   FieldAccessor
	locator    GroupLocator
	logger     *slog.Logger
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithDispatcher replaces the value comparison.
func WithDispatcher(d Dispatcher) Option {
	return func(e *Evaluator) {
		e.dispatcher = d
	}
}

// WithFieldAccessor replaces field reads. Unless WithDispatcher is also given
// the default dispatcher reads through the same accessor.
func WithFieldAccessor(a FieldAccessor) Option {
	return func(e *Evaluator) {
		e.accessor = a
	}
}

// WithGroupLocator replaces group resolution.
func WithGroupLocator(l GroupLocator) Option {
	return func(e *Evaluator) {
		e.locator = l
	}
}

// WithLogger sets the logger for evaluation diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(e *Evaluator) {
		e.logger = l
	}
}

// NewEvaluator returns an Evaluator using the default collaborators unless
// overridden by opts.
func NewEvaluator(opts ...Option) *Evaluator {
	e := &Evaluator{}
	for _, opt := range opts {
		opt(e)
	}
	if e.accessor == nil {
		e.accessor = DefaultFieldAccessor{}
	}
	if e.locator == nil {
		e.locator = DefaultGroupLocator{}
	}
	if e.dispatcher == nil {
		e.dispatcher = NewDispatcher(e.accessor)
	}
	if e.logger == nil {
		e.logger = logging.Nop()
	}
	return e
}

var defaultEvaluator = NewEvaluator()

// Evaluate reports whether m satisfies c using a default Evaluator.
func Evaluate(c *Criteria, m Message) (bool, error) {
	return defaultEvaluator.Evaluate(c, m)
}

// Explain evaluates m against c using a default Evaluator.
func Explain(c *Criteria, m Message) (Result, error) {
	return defaultEvaluator.Explain(c, m)
}

// Evaluate reports whether m satisfies every expectation of c. The error is
// non-nil only for configuration errors, which abort the evaluation.
func (e *Evaluator) Evaluate(c *Criteria, m Message) (bool, error) {
	r, err := e.Explain(c, m)
	return r.Matched, err
}

// Explain evaluates m against c like Evaluate and also returns the first
// failing check. Nil criteria match every message.
func (e *Evaluator) Explain(c *Criteria, m Message) (Result, error) {
	if c == nil {
		return Result{Matched: true}, nil
	}
	if m == nil {
		return e.fail(&Mismatch{Gate: GateType, ExpectedType: c.msgType}), nil
	}

	// Type gate
	if c.hasType && !m.IsInstanceOf(c.msgType) {
		return e.fail(&Mismatch{Gate: GateType, ExpectedType: c.msgType, ActualType: actualType(m)}), nil
	}

	// Body gate
	if mm, err := e.checkAll(GateBody, GroupAddress{}, m, c.body); err != nil || mm != nil {
		return e.fail(mm), err
	}

	// Header gate
	if mm, err := e.checkAll(GateHeader, GroupAddress{}, m.HeaderFields(), c.header); err != nil || mm != nil {
		return e.fail(mm), err
	}

	// Group gate
	for _, g := range c.groups {
		gc, ok := e.locator.Locate(m, g.Address)
		if !ok {
			return e.fail(&Mismatch{Gate: GateGroup, Group: g.Address, GroupMissing: true}), nil
		}
		if mm, err := e.checkAll(GateGroup, g.Address, gc, g.Fields); err != nil || mm != nil {
			return e.fail(mm), err
		}
	}

	return Result{Matched: true}, nil
}

// checkAll runs fields against container in order and stops at the first
// failure or configuration error.
func (e *Evaluator) checkAll(gate Gate, addr GroupAddress, container FieldContainer, fields []FieldExpectation) (*Mismatch, error) {
	for _, f := range fields {
		ok, err := e.dispatcher.Equals(container, f.Tag, f.Value)
		if err != nil {
			e.logger.Debug("configuration error during evaluation",
				"gate", gate.String(),
				"tag", f.Tag,
				"error", err,
			)
			return nil, err
		}
		if ok {
			continue
		}
		actual, present := e.accessor.Field(container, f.Tag)
		return &Mismatch{
			Gate:     gate,
			Group:    addr,
			Tag:      f.Tag,
			Expected: f.Value,
			Present:  present,
			Actual:   actual,
		}, nil
	}
	return nil, nil
}

func (e *Evaluator) fail(mm *Mismatch) Result {
	if mm == nil {
		return Result{}
	}
	e.logger.Debug("message did not match",
		"gate", mm.Gate.String(),
		"tag", mm.Tag,
		"expected", mm.Expected.String(),
		"present", mm.Present,
		"actual", mm.Actual,
	)
	return Result{Mismatch: mm}
}

func actualType(m Message) fix.MsgType {
	h := m.HeaderFields()
	if h == nil {
		return ""
	}
	v, _ := h.Lookup(fix.TagMsgType)
	return fix.MsgType(v)
}
