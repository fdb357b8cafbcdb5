// Package fix provides a minimal tag/value message model for FIX messages.
//
// A Message carries three flat field containers (header, body, trailer) and
// any number of repeating groups kept in attachment order. Values are stored as
// their FIX text representation and converted on read by the typed getters,
// so a container never needs a schema to be queried.
//
// # Usage
//
//	msg := fix.NewMessage(fix.MsgTypeNewOrderSingle)
//	msg.Header.SetString(fix.TagSenderSubID, "desk-1")
//	msg.Body.
//	    SetString(fix.TagClOrdID, "ord-1").
//	    SetChar(fix.TagSide, fix.SideBuy).
//	    SetFloat(fix.TagPrice, 1.25)
//
//	leg := fix.NewGroup(fix.TagNoOrders)
//	leg.SetString(fix.TagClOrdID, "leg-1")
//	msg.AddGroup(leg)
//
//	price, err := msg.Body.GetDecimal(fix.TagPrice)
//
// Group occurrences are addressed 1-based per group tag:
//
//	first, err := msg.Group(1, fix.TagNoOrders)
//
// This package does not parse or serialize the FIX wire format.
package fix
