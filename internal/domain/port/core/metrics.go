package core

import "time"

// MetricsRecorder receives domain events worth counting
type MetricsRecorder interface {
	// TransitionApplied records a successful lifecycle change
	TransitionApplied(operation, from, to string)
	// TransitionRejected records an operation refused with a typed error
	TransitionRejected(operation string, errorCode int)
	// PayoutAttempted records one call to the payout provider
	PayoutAttempted(role, result string)
	// ObserveRelease records how long a full settlement took
	ObserveRelease(kind string, duration time.Duration)
	// DisputeStatusChanged records a dispute entering a status
	DisputeStatusChanged(status string)
}
