// Package matching evaluates declarative expectations against FIX messages.
//
// A Criteria is accumulated with a Builder and frozen by Build. It holds an
// optional message type constraint plus ordered field expectations for the
// body, the header and any number of addressed group occurrences:
//
//	c, err := matching.NewBuilder().
//	    OfType(fix.MsgTypeNewOrderList).
//	    With(fix.TagClOrdID, "ABC").
//	    WithHeader(matching.Header().With(fix.TagSenderSubID, "XYZ")).
//	    WithGroup(matching.Group(1, fix.TagNoOrders).With(fix.TagClOrdID, "DEF")).
//	    Build()
//
//	ok, err := c.Matches(msg)
//
// Evaluation runs four gates in a fixed order and stops at the first failure:
//
//   - Type: the message must be an instance of the constrained type
//   - Body: every body expectation in declaration order
//   - Header: every header expectation in declaration order
//   - Groups: every addressed occurrence must exist and satisfy its expectations
//
// Comparison is driven by the kind of the expected Value, never by a field
// schema. Missing fields, missing group occurrences and unequal values are
// ordinary non-matches. An expected value of an unsupported Go type is a
// configuration error returned at comparison time, and so is declaring the
// type constraint twice on one Builder.
//
// Key types:
//
//   - Value: closed set of comparable kinds (text, char, int, float, decimal, timestamp, bool)
//   - Criteria: immutable expectations with structural Equal and Hash
//   - Evaluator: runs the gates using an injectable Dispatcher, FieldAccessor and GroupLocator
//   - Result and Mismatch: the first failing check, for diagnostics
package matching
