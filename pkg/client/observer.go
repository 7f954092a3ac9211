package client

import (
	"context"
	"time"
)

// RequestInfo describes an outgoing request.
type RequestInfo struct {
	Method    string
	Path      string // relative to /api, e.g. "/portfolio"
	URL       string
	RequestID string
}

// ResponseInfo describes how a request resolved.  Err is non-nil whenever
// the call failed, including a 2xx whose body exceeded the size cap.
type ResponseInfo struct {
	StatusCode int
	Duration   time.Duration
	Err        error
}

// Observer is notified around every request.  Observers are diagnostic:
// they cannot alter the outcome, and a panicking observer is recovered.
type Observer interface {
	BeforeRequest(ctx context.Context, req RequestInfo)
	AfterResponse(ctx context.Context, req RequestInfo, resp ResponseInfo)
}

// ObserverFuncs adapts plain functions to Observer.  Nil fields are skipped.
type ObserverFuncs struct {
	Before func(ctx context.Context, req RequestInfo)
	After  func(ctx context.Context, req RequestInfo, resp ResponseInfo)
}

// BeforeRequest implements Observer.
func (o ObserverFuncs) BeforeRequest(ctx context.Context, req RequestInfo) {
	if o.Before != nil {
		o.Before(ctx, req)
	}
}

// AfterResponse implements Observer.
func (o ObserverFuncs) AfterResponse(ctx context.Context, req RequestInfo, resp ResponseInfo) {
	if o.After != nil {
		o.After(ctx, req, resp)
	}
}

// logObserver writes the request/response lines through the client Logger.
type logObserver struct {
	logger Logger
}

func (o logObserver) BeforeRequest(_ context.Context, req RequestInfo) {
	o.logger.Debugf("API Request: %s %s", req.Method, req.Path)
}

func (o logObserver) AfterResponse(_ context.Context, req RequestInfo, resp ResponseInfo) {
	if resp.Err != nil {
		o.logger.Errorf("API Response Error: %s %s: %v", req.Method, req.Path, resp.Err)
		return
	}
	o.logger.Debugf("API Response: %d %s", resp.StatusCode, req.Path)
}

func (c *Client) notifyBefore(ctx context.Context, req RequestInfo) {
	for _, o := range c.observers {
		c.safely(func() { o.BeforeRequest(ctx, req) })
	}
}

func (c *Client) notifyAfter(ctx context.Context, req RequestInfo, resp ResponseInfo) {
	for _, o := range c.observers {
		c.safely(func() { o.AfterResponse(ctx, req, resp) })
	}
}

func (c *Client) safely(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Errorf("request observer panicked: %v", r)
		}
	}()
	fn()
}
