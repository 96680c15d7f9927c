package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/fekuna/omnipos-supplychain-service/internal/apperr"
	"github.com/fekuna/omnipos-supplychain-service/pkg/logger"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type ErrorResponse struct {
	Error     string `json:"error"`
	Kind      string `json:"kind"`
	RequestID string `json:"request_id,omitempty"`
}

// ErrorHandler renders every error as ErrorResponse, mapping apperr kinds onto
// HTTP statuses. Internal errors are logged and their detail withheld.
func ErrorHandler(log logger.ZapLogger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := apperr.HTTPStatus(err)
		kind := apperr.KindOf(err).String()
		message := apperr.PublicMessage(err)

		var he *echo.HTTPError
		if errors.As(err, &he) && apperr.KindOf(err) == apperr.KindInternal {
			code = he.Code
			message = fmt.Sprint(he.Message)
			kind = http.StatusText(he.Code)
		}

		if code >= http.StatusInternalServerError {
			log.Error("request failed", zap.Error(err), zap.String("route", c.Path()))
		}

		resp := ErrorResponse{
			Error:     message,
			Kind:      kind,
			RequestID: c.Response().Header().Get(echo.HeaderXRequestID),
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(code)
		} else {
			err = c.JSON(code, resp)
		}
		if err != nil {
			log.Warn("write error response", zap.Error(err))
		}
	}
}
