package client

import "github.com/turtacn/DevFolio/pkg/errors"

// Result is the uniform outcome of every client call.  Exactly one of Data
// (Success true) or Error (Success false) is meaningful.
type Result[T any] struct {
	Success bool             `json:"success"`
	Data    T                `json:"data,omitempty"`
	Error   string           `json:"error,omitempty"`
	Code    errors.ErrorCode `json:"-"`
}

// Failed reports whether the call did not succeed.
func (r Result[T]) Failed() bool { return !r.Success }

// Err returns the failure as an *errors.AppError, or nil on success.
func (r Result[T]) Err() error {
	if r.Success {
		return nil
	}
	return errors.New(r.Code, r.Error)
}

func success[T any](data T) Result[T] {
	return Result[T]{Success: true, Data: data}
}

func failure[T any](err error) Result[T] {
	return Result[T]{Error: errors.Message(err), Code: errors.GetCode(err)}
}
