package application

const (
	MsgDispatchFailed   = "Failed to dispatch shirts!"
	MsgInvalidOrderNum  = "Invalid Order Num"
	MsgNoShirts         = "No shirts to deliver"
	MsgDispatched       = "shirts delivery dispatched"
	returnedMessageTmpl = "Order: %s returned"
)

// Roll denominators for Dispatch, consumed in this order until one fires.
const (
	DispatchRollDenominator = 5
	OrderNumRollDenominator = 10
	ShirtsRollDenominator   = 10
)

// DefaultLedgerLimit bounds Deliveries when the caller passes a non-positive limit.
const DefaultLedgerLimit = 50
