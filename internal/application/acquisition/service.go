// Package acquisition sequences the health probe, the portfolio fetch and the
// transformation, and falls back to the built-in dataset whenever any stage
// fails.  It owns the acquisition state exposed to the HTTP and CLI surfaces.
package acquisition

import (
	"context"
	"sync"
	"time"

	"github.com/turtacn/DevFolio/internal/domain/portfolio"
	"github.com/turtacn/DevFolio/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/DevFolio/pkg/client"
	ptypes "github.com/turtacn/DevFolio/pkg/types/portfolio"
)

// PortfolioSource is the part of the API client the service needs.
// *client.Client satisfies it.
type PortfolioSource interface {
	HealthCheck(ctx context.Context) client.Result[ptypes.Health]
	GetPortfolioData(ctx context.Context) client.Result[*ptypes.Envelope]
}

// Metrics receives attempt outcomes.  *prometheus.AppMetrics satisfies it.
type Metrics interface {
	RecordAttempt(outcome string, d time.Duration)
	SetBackendOnline(online bool)
}

type noopMetrics struct{}

func (noopMetrics) RecordAttempt(string, time.Duration) {}
func (noopMetrics) SetBackendOnline(bool)               {}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger.  Nil is ignored.
func WithLogger(l logging.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMetrics sets the metrics sink.  Nil is ignored.
func WithMetrics(m Metrics) Option {
	return func(s *Service) {
		if m != nil {
			s.metrics = m
		}
	}
}

// WithTransformer replaces portfolio.Transform.  Nil is ignored.
func WithTransformer(fn portfolio.TransformFunc) Option {
	return func(s *Service) {
		if fn != nil {
			s.transform = fn
		}
	}
}

// WithClock replaces time.Now.  Nil is ignored.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithNoticeDuration sets how long a notice stays visible.  Values <= 0 are
// ignored.
func WithNoticeDuration(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.noticeDuration = d
		}
	}
}

// Service runs acquisition attempts.  A new attempt cancels the one in
// flight and only the newest attempt commits its result.
type Service struct {
	source         PortfolioSource
	fallback       *portfolio.ViewModel
	transform      portfolio.TransformFunc
	logger         logging.Logger
	metrics        Metrics
	now            func() time.Time
	noticeDuration time.Duration

	mu         sync.Mutex
	state      State
	generation uint64
	cancel     context.CancelFunc
	closed     bool
}

// NewService builds a Service.  A nil fallback means portfolio.Fallback().
func NewService(source PortfolioSource, fallback *portfolio.ViewModel, opts ...Option) *Service {
	if fallback == nil {
		fallback = portfolio.Fallback()
	}
	s := &Service{
		source:         source,
		fallback:       fallback.Clone(),
		transform:      portfolio.Transform,
		logger:         logging.NewNopLogger(),
		metrics:        noopMetrics{},
		now:            time.Now,
		noticeDuration: DefaultNoticeDuration,
		state:          initialState(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.Named("acquisition")
	return s
}

// outcome is the result of one run before it is committed.
type outcome struct {
	kind   Outcome
	data   *portfolio.ViewModel
	online bool
	err    string
}

// Acquire runs one attempt and returns the resulting state.  When a newer
// attempt supersedes this one, the returned state is whatever the service
// holds at that moment.
func (s *Service) Acquire(ctx context.Context) State {
	s.mu.Lock()
	if s.closed {
		st := s.state.clone()
		s.mu.Unlock()
		return st
	}
	if s.cancel != nil {
		s.cancel()
	}
	s.generation++
	gen := s.generation
	attemptCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	s.state.Loading = true
	s.state.Error = ""
	s.state.Data = nil
	s.state.Source = SourceNone
	s.state.Attempt = gen
	s.state.NoticeDismissed = false
	s.mu.Unlock()

	log := s.logger.With(logging.Int64("attempt", int64(gen)))
	log.Debug("acquisition started")

	start := s.now()
	res := s.run(attemptCtx, log)
	cancel()
	elapsed := s.now().Sub(start)

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation || s.closed {
		s.metrics.RecordAttempt(string(OutcomeSuperseded), elapsed)
		log.Debug("acquisition superseded, result discarded")
		return s.state.clone()
	}
	s.cancel = nil

	s.state.Loading = false
	s.state.Error = res.err
	s.state.IsOnline = res.online
	s.state.Data = res.data
	s.state.CompletedAt = s.now()
	if res.online {
		s.state.Source = SourceBackend
	} else {
		s.state.Source = SourceFallback
	}

	s.metrics.RecordAttempt(string(res.kind), elapsed)
	s.metrics.SetBackendOnline(res.online)
	log.Info("acquisition completed",
		logging.String("outcome", string(res.kind)),
		logging.Bool("online", res.online),
		logging.Duration("duration", elapsed))

	return s.state.clone()
}

// run executes health, fetch and transform strictly in sequence.  The health
// probe always runs first; a failed probe skips the fetch.
func (s *Service) run(ctx context.Context, log logging.Logger) outcome {
	health := s.source.HealthCheck(ctx)
	if health.Failed() {
		log.Warn("backend health check failed, using fallback data",
			logging.String("error", health.Error),
			logging.Code(health.Err()))
		return outcome{kind: OutcomeHealthFailed, data: s.fallback.Clone()}
	}

	fetched := s.source.GetPortfolioData(ctx)
	if fetched.Failed() {
		msg := fetched.Error
		if msg == "" {
			msg = DefaultFetchError
		}
		log.Warn("portfolio fetch failed, using fallback data",
			logging.String("error", msg),
			logging.Code(fetched.Err()))
		return outcome{kind: OutcomeFetchFailed, data: s.fallback.Clone(), err: msg}
	}

	model := s.transform(fetched.Data)
	if model == nil {
		log.Warn("portfolio payload could not be transformed, using fallback data")
		return outcome{kind: OutcomeTransformFailed, data: s.fallback.Clone(), err: TransformError}
	}
	return outcome{kind: OutcomeSuccess, data: model, online: true}
}

// Retry re-runs the full acquisition sequence.
func (s *Service) Retry(ctx context.Context) State { return s.Acquire(ctx) }

// Refetch is an alias for Retry.
func (s *Service) Refetch(ctx context.Context) State { return s.Retry(ctx) }

// State returns a deep copy of the current state.
func (s *Service) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

// Ready reports whether any attempt has completed.
func (s *Service) Ready() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Completed()
}

// Dismiss hides the notice of the current result.  The next attempt shows
// its own notice again.
func (s *Service) Dismiss() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.Completed() && !s.state.Loading {
		s.state.NoticeDismissed = true
	}
}

// Notice returns the banner for the current state in lang, or nil when none
// is visible.
func (s *Service) Notice(lang ptypes.Lang) *Notice {
	s.mu.Lock()
	st := s.state
	s.mu.Unlock()
	return noticeFor(st, lang, s.now(), s.noticeDuration)
}

// NoticeDuration returns the configured notice visibility window.
func (s *Service) NoticeDuration() time.Duration { return s.noticeDuration }

// Close cancels the attempt in flight and freezes the state.  A state still
// loading at that point is settled on the fallback data with CanceledError.
// It is safe to call more than once.
func (s *Service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	if s.state.Loading {
		s.state.Loading = false
		s.state.Error = CanceledError
		s.state.IsOnline = false
		s.state.Data = s.fallback.Clone()
		s.state.Source = SourceFallback
		s.state.CompletedAt = s.now()
	}
	s.logger.Debug("acquisition service closed")
}
