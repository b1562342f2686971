package metrics

import (
	"time"

	coreport "github.com/amirhossein-jamali/neighborhood-escrow/internal/domain/port/core"
)

// NoopRecorder discards every measurement
type NoopRecorder struct{}

var _ coreport.MetricsRecorder = NoopRecorder{}

func (NoopRecorder) TransitionApplied(string, string, string) {}
func (NoopRecorder) TransitionRejected(string, int) {}
func (NoopRecorder) PayoutAttempted(string, string) {}
func (NoopRecorder) ObserveRelease(string, time.Duration) {}
func (NoopRecorder) DisputeStatusChanged(string) {}
