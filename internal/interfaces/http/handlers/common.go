// Package handlers implements the gin handlers of the DevFolio HTTP API.
package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/turtacn/DevFolio/internal/interfaces/http/middleware"
	"github.com/turtacn/DevFolio/pkg/errors"
	ptypes "github.com/turtacn/DevFolio/pkg/types/portfolio"
)

// ErrorResponse is the standard error response body.
type ErrorResponse struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"requestId,omitempty"`
}

// writeAppError answers with the status mapped from err's code.  Server-side
// failures are masked.
func writeAppError(c *gin.Context, err error) {
	status := errors.HTTPStatus(err)
	resp := ErrorResponse{
		Code:      errors.GetCode(err).String(),
		Message:   errors.Message(err),
		RequestID: middleware.GetRequestID(c),
	}
	if status == http.StatusInternalServerError {
		resp.Code = errors.CodeInternal.String()
		resp.Message = "internal server error"
	}
	_ = c.Error(err)
	c.AbortWithStatusJSON(status, resp)
}

// parseLang accepts pt or en, case-insensitively.  An empty value means pt.
func parseLang(raw string) (ptypes.Lang, error) {
	if strings.TrimSpace(raw) == "" {
		return ptypes.LangPT, nil
	}
	lang, ok := ptypes.ParseLang(strings.ToLower(strings.TrimSpace(raw)))
	if !ok {
		return "", errors.New(errors.CodeUnsupportedLang, fmt.Sprintf("unsupported language %q; expected pt or en", raw))
	}
	return lang, nil
}

// nullable maps "" to nil so the field encodes as JSON null.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
