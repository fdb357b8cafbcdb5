package fix

// MsgType is the value of tag 35 identifying a message.
type MsgType string

// Session-level message types.
const (
	MsgTypeHeartbeat     MsgType = "0"
	MsgTypeTestRequest   MsgType = "1"
	MsgTypeResendRequest MsgType = "2"
	MsgTypeReject        MsgType = "3"
	MsgTypeSequenceReset MsgType = "4"
	MsgTypeLogout        MsgType = "5"
	MsgTypeLogon         MsgType = "A"
)

// Application message types.
const (
	MsgTypeExecutionReport    MsgType = "8"
	MsgTypeOrderCancelReject  MsgType = "9"
	MsgTypeNewOrderSingle     MsgType = "D"
	MsgTypeNewOrderList       MsgType = "E"
	MsgTypeOrderCancelRequest MsgType = "F"
	MsgTypeOrderCancelReplace MsgType = "G"
	MsgTypeOrderStatusRequest MsgType = "H"
	MsgTypeQuoteRequest       MsgType = "R"
	MsgTypeQuote              MsgType = "S"
	MsgTypeMarketDataRequest  MsgType = "V"
)

// Hierarchy constraints accepted by Message.IsInstanceOf. They are not valid
// tag 35 values.
const (
	// AnyMessage is satisfied by every message.
	AnyMessage MsgType = "*"
	// AdminMessage is satisfied by session-level messages.
	AdminMessage MsgType = "admin"
	// AppMessage is satisfied by every typed message that is not session-level.
	AppMessage MsgType = "app"
)

var adminTypes = map[MsgType]bool{
	MsgTypeHeartbeat:     true,
	MsgTypeTestRequest:   true,
	MsgTypeResendRequest: true,
	MsgTypeReject:        true,
	MsgTypeSequenceReset: true,
	MsgTypeLogout:        true,
	MsgTypeLogon:         true,
}

var typeNames = map[MsgType]string{
	MsgTypeHeartbeat:          "Heartbeat",
	MsgTypeTestRequest:        "TestRequest",
	MsgTypeResendRequest:      "ResendRequest",
	MsgTypeReject:             "Reject",
	MsgTypeSequenceReset:      "SequenceReset",
	MsgTypeLogout:             "Logout",
	MsgTypeLogon:              "Logon",
	MsgTypeExecutionReport:    "ExecutionReport",
	MsgTypeOrderCancelReject:  "OrderCancelReject",
	MsgTypeNewOrderSingle:     "NewOrderSingle",
	MsgTypeNewOrderList:       "NewOrderList",
	MsgTypeOrderCancelRequest: "OrderCancelRequest",
	MsgTypeOrderCancelReplace: "OrderCancelReplaceRequest",
	MsgTypeOrderStatusRequest: "OrderStatusRequest",
	MsgTypeQuoteRequest:       "QuoteRequest",
	MsgTypeQuote:              "Quote",
	MsgTypeMarketDataRequest:  "MarketDataRequest",
	AnyMessage:                "Message",
	AdminMessage:              "AdminMessage",
	AppMessage:                "AppMessage",
}

// IsAdmin reports whether t is a session-level message type.
func (t MsgType) IsAdmin() bool {
	return adminTypes[t]
}

// IsConstraint reports whether t is one of the hierarchy constraints rather
// than a concrete message type.
func (t MsgType) IsConstraint() bool {
	return t == AnyMessage || t == AdminMessage || t == AppMessage
}

// Name returns the message name for well-known types and the raw value otherwise.
func (t MsgType) Name() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return string(t)
}

// Satisfies reports whether a message of type t is an instance of want.
func (t MsgType) Satisfies(want MsgType) bool {
	switch want {
	case AnyMessage:
		return true
	case AdminMessage:
		return t.IsAdmin()
	case AppMessage:
		return t != "" && !t.IsAdmin() && !t.IsConstraint()
	default:
		return t == want
	}
}

// ParseMsgType resolves a message name (e.g. "NewOrderSingle") or raw tag 35
// value to a MsgType.
func ParseMsgType(s string) MsgType {
	for t, name := range typeNames {
		if name == s {
			return t
		}
	}
	return MsgType(s)
}
