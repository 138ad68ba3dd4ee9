package types

// Signal column names. A signal column holds 1 on rows where the signal
// fires and NaN elsewhere; the host treats NaN as "no signal".
const (
	ColumnEnterLong = "enter_long"
	ColumnExitLong  = "exit_long"
)

// SignalValue is the truthy marker written to a signal column.
const SignalValue = 1.0
