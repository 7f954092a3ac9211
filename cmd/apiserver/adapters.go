package main

import (
	"context"

	"github.com/turtacn/DevFolio/internal/application/acquisition"
	"github.com/turtacn/DevFolio/pkg/client"
	"github.com/turtacn/DevFolio/pkg/errors"
)

// Adapters for HealthHandler.

// acquisitionReadiness is ready once the first acquisition attempt has
// committed, whatever its outcome: fallback data is still servable.
type acquisitionReadiness struct {
	svc *acquisition.Service
}

func (a *acquisitionReadiness) Name() string {
	return "acquisition"
}

func (a *acquisitionReadiness) Check(context.Context) error {
	if !a.svc.Ready() {
		return errors.New(errors.CodeUnavailable, "first acquisition attempt still running")
	}
	return nil
}

// backendProbe reports the live health of the portfolio API.  It is a
// diagnostic only; a down backend does not make the server unready.
type backendProbe struct {
	client *client.Client
}

func (a *backendProbe) Name() string {
	return "backend"
}

func (a *backendProbe) Check(ctx context.Context) error {
	res := a.client.HealthCheck(ctx)
	if res.Failed() {
		code := res.Code
		if code == "" {
			code = errors.CodeUnknown
		}
		return errors.New(code, res.Error)
	}
	return nil
}
