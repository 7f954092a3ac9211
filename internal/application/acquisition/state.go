package acquisition

import (
	"time"

	"github.com/turtacn/DevFolio/internal/domain/portfolio"
)

// Source names where the current model came from.
type Source string

const (
	SourceNone     Source = ""
	SourceBackend  Source = "backend"
	SourceFallback Source = "fallback"
)

// Outcome classifies a completed attempt.
type Outcome string

const (
	OutcomeSuccess         Outcome = "success"
	OutcomeHealthFailed    Outcome = "health_failed"
	OutcomeFetchFailed     Outcome = "fetch_failed"
	OutcomeTransformFailed Outcome = "transform_failed"
	OutcomeSuperseded      Outcome = "superseded"
)

// Failure messages recorded in State.Error.
const (
	DefaultFetchError = "Failed to fetch portfolio data"
	TransformError    = "transform failed"
	CanceledError     = "canceled"
)

// State is the observable acquisition state.  While Loading is true Data is
// nil; once an attempt completes Data is always populated.
type State struct {
	Loading  bool                 `json:"loading"`
	Error    string               `json:"error"`
	IsOnline bool                 `json:"isOnline"`
	Data     *portfolio.ViewModel `json:"data"`

	Source          Source    `json:"source"`
	Attempt         uint64    `json:"attempt"`
	CompletedAt     time.Time `json:"completedAt"`
	NoticeDismissed bool      `json:"noticeDismissed"`
}

// initialState is the state before the first attempt completes.
func initialState() State {
	return State{Loading: true, IsOnline: true}
}

// Completed reports whether at least one attempt has committed.
func (s State) Completed() bool { return !s.CompletedAt.IsZero() }

// clone deep-copies the model so callers cannot mutate service state.
func (s State) clone() State {
	s.Data = s.Data.Clone()
	return s
}
