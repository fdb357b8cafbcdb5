package fix

// Standard header tags.
const (
	TagBeginString  = 8
	TagBodyLength   = 9
	TagMsgType      = 35
	TagMsgSeqNum    = 34
	TagSenderCompID = 49
	TagSenderSubID  = 50
	TagSendingTime  = 52
	TagTargetCompID = 56
	TagTargetSubID  = 57
)

// Standard trailer tags.
const (
	TagCheckSum = 10
)

// Body and group tags.
const (
	TagAvgPx           = 6
	TagClOrdID         = 11
	TagCumQty          = 14
	TagExecID          = 17
	TagOrderQty        = 38
	TagOrdStatus       = 39
	TagOrdType         = 40
	TagPrice           = 44
	TagSide            = 54
	TagSymbol          = 55
	TagText            = 58
	TagTimeInForce     = 59
	TagTransactTime    = 60
	TagSettlDate       = 64
	TagListID          = 66
	TagTotNoOrders     = 68
	TagNoOrders        = 73
	TagPossResend      = 97
	TagExecType        = 150
	TagLeavesQty       = 151
	TagNumDaysInterest = 157
	TagNoPartyIDs      = 453
	TagPartyID         = 448
	TagPartyRole       = 452
	TagBidType         = 394
	TagSolicitedFlag   = 377
	TagPriceType       = 423
	TagMDReqID         = 262
)

// Side values.
const (
	SideBuy  = '1'
	SideSell = '2'
)

// OrdType values.
const (
	OrdTypeMarket       = '1'
	OrdTypeLimit        = '2'
	OrdTypeForexMarket  = 'C'
	OrdTypePreviouslyQt = 'D'
)

// BidType values.
const (
	BidTypeNonDisclosed = 1
	BidTypeDisclosed    = 2
	BidTypeNoBidding    = 3
)

// PriceType values.
const (
	PriceTypePercentage  = 1
	PriceTypePerUnit     = 2
	PriceTypeFixedAmount = 3
	PriceTypeDiscount    = 4
)
