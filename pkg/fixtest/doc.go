// Package fixtest provides FIX message assertions for Go tests.
//
// Expectations are declared with the matching builder and checked with the
// Assert helpers, which report the expected and actual field values on
// failure:
//
//	func TestOrderRouting(t *testing.T) {
//	    msg := route(order)
//
//	    fixtest.AssertMatches(t, fixtest.Match(
//	        fixtest.IsFIXMessageOfType(fix.MsgTypeNewOrderSingle).
//	            With(fix.TagClOrdID, "ord-1").
//	            With(fix.TagSide, fix.SideBuy).
//	            WithHeader(matching.Header().With(fix.TagSenderSubID, "desk-1")),
//	    ), msg)
//	}
//
// A misconfigured matcher, such as one that declares its message type twice
// or expects a value of an unsupported Go type, stops the test with Fatalf
// instead of being reported as a mismatch.
package fixtest
