package httputil

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fekuna/omnipos-supplychain-service/internal/apperr"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Bind decodes the request into T and validates it. Both failures are reported
// as invalid input.
func Bind[T any](c echo.Context) (T, error) {
	var v T

	if err := c.Bind(&v); err != nil {
		return v, apperr.Wrap(apperr.KindInvalidInput, err, "malformed request body")
	}

	if err := Validate(v); err != nil {
		return v, err
	}
	return v, nil
}

func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperr.Wrap(apperr.KindInvalidInput, err, "invalid request")
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("%s failed rule '%s=%s'", fe.Field(), fe.Tag(), fe.Param()))
			continue
		}
		msgs = append(msgs, fmt.Sprintf("%s failed rule '%s'", fe.Field(), fe.Tag()))
	}
	return apperr.InvalidInput("invalid request: %s", strings.Join(msgs, "; "))
}
