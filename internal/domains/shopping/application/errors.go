package application

const (
	// MsgMenuFailed wraps any Styling failure while fetching the menu.
	MsgMenuFailed = "Failed to fetch shopping menu!"
	// MsgOrderFailed is returned for both local and downstream failures of Order.
	MsgOrderFailed = "Failed to order shirts!"
)

// OrderRollDenominator gives Order a 1-in-10 simulated outage.
const OrderRollDenominator = 10
