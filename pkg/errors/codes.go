package errors

import "net/http"

// ErrorCode is a string representation of a specific error condition.
type ErrorCode string

func (c ErrorCode) String() string {
	return string(c)
}

// Common error codes.
const (
	CodeOK          ErrorCode = "OK"
	CodeUnknown     ErrorCode = "COMMON_000"
	CodeInternal    ErrorCode = "COMMON_001"
	CodeBadRequest  ErrorCode = "COMMON_002"
	CodeNotFound    ErrorCode = "COMMON_005"
	CodeUnavailable ErrorCode = "COMMON_008"
	CodeRateLimited ErrorCode = "COMMON_009"
)

// Configuration error codes.
const (
	CodeInvalidConfig ErrorCode = "CONFIG_001"
)

// API client error codes.  All of them collapse into the same failure shape
// for callers of pkg/client; the distinction is kept for logs and metrics.
const (
	CodeNetwork   ErrorCode = "CLIENT_001"
	CodeTimeout   ErrorCode = "CLIENT_002"
	CodeBadStatus ErrorCode = "CLIENT_003"
	CodeDecode    ErrorCode = "CLIENT_004"
	CodeCanceled  ErrorCode = "CLIENT_005"
)

// Portfolio domain error codes.
const (
	CodeTransformFailed ErrorCode = "PORTFOLIO_001"
	CodeUnsupportedLang ErrorCode = "PORTFOLIO_002"
)

// ErrorCodeHTTPStatus maps codes to the HTTP status the server answers with.
var ErrorCodeHTTPStatus = map[ErrorCode]int{
	CodeOK:              http.StatusOK,
	CodeUnknown:         http.StatusInternalServerError,
	CodeInternal:        http.StatusInternalServerError,
	CodeBadRequest:      http.StatusBadRequest,
	CodeNotFound:        http.StatusNotFound,
	CodeUnavailable:     http.StatusServiceUnavailable,
	CodeRateLimited:     http.StatusTooManyRequests,
	CodeInvalidConfig:   http.StatusInternalServerError,
	CodeNetwork:         http.StatusBadGateway,
	CodeTimeout:         http.StatusGatewayTimeout,
	CodeBadStatus:       http.StatusBadGateway,
	CodeDecode:          http.StatusBadGateway,
	CodeCanceled:        http.StatusServiceUnavailable,
	CodeTransformFailed: http.StatusBadGateway,
	CodeUnsupportedLang: http.StatusNotFound,
}

// HTTPStatus returns the HTTP status for err, defaulting to 500.
func HTTPStatus(err error) int {
	if status, ok := ErrorCodeHTTPStatus[GetCode(err)]; ok {
		return status
	}
	return http.StatusInternalServerError
}
