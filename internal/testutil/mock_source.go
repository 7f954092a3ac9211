package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/turtacn/DevFolio/pkg/client"
	ptypes "github.com/turtacn/DevFolio/pkg/types/portfolio"
)

// MockSource is a testify mock of the portfolio API surface used by the
// acquisition service.
type MockSource struct {
	mock.Mock
}

func (m *MockSource) HealthCheck(ctx context.Context) client.Result[ptypes.Health] {
	args := m.Called(ctx)
	return args.Get(0).(client.Result[ptypes.Health])
}

func (m *MockSource) GetPortfolioData(ctx context.Context) client.Result[*ptypes.Envelope] {
	args := m.Called(ctx)
	return args.Get(0).(client.Result[*ptypes.Envelope])
}

// Healthy is a successful health result.
func Healthy() client.Result[ptypes.Health] {
	return client.Result[ptypes.Health]{Success: true, Data: ptypes.Health{Status: "healthy"}}
}

// Unhealthy is a failed health result carrying msg.
func Unhealthy(msg string) client.Result[ptypes.Health] {
	return client.Result[ptypes.Health]{Error: msg}
}

// Payload is a successful portfolio result wrapping doc.
func Payload(doc *ptypes.Document) client.Result[*ptypes.Envelope] {
	return client.Result[*ptypes.Envelope]{Success: true, Data: &ptypes.Envelope{Success: true, Data: doc}}
}

// FetchFailure is a failed portfolio result carrying msg.
func FetchFailure(msg string) client.Result[*ptypes.Envelope] {
	return client.Result[*ptypes.Envelope]{Error: msg}
}

// NamedDocument returns a document whose personal info carries only name.
func NamedDocument(name string) *ptypes.Document {
	return &ptypes.Document{PersonalInfo: &ptypes.PersonalInfo{Name: ptypes.Plain(name)}}
}
