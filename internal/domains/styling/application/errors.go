package application

// MsgMakeFailed is returned for both local and downstream failures of Make.
const MsgMakeFailed = "Failed to make shirts!"

// MakeRollDenominator gives Make a 1-in-5 simulated outage.
const MakeRollDenominator = 5
