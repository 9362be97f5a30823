package http

import (
	"net/http"

	"pizzeria/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Success bool      `json:"success"`
	Kind    errs.Kind `json:"kind"`
	Detail  string    `json:"detail"`
}

func statusFor(kind errs.Kind) int {
	switch kind {
	case errs.KindNotFound:
		return http.StatusNotFound
	case errs.KindInvalidInput:
		return http.StatusBadRequest
	case errs.KindRangeViolation, errs.KindCompositionViolation, errs.KindAgeViolation, errs.KindDietaryViolation:
		return http.StatusUnprocessableEntity
	case errs.KindAlreadyUsed, errs.KindWindowExpired, errs.KindNoCourierAvailable, errs.KindInvalidTransition:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// fail renders err. Storage failures are logged and reported without their
// internal detail.
func (s *Server) fail(c echo.Context, err error) error {
	kind := errs.KindOf(err)
	detail := err.Error()
	if kind == errs.KindStorageError {
		s.logger.ErrorContext(c.Request().Context(), "storage failure",
			"method", c.Request().Method, "path", c.Path(), "error", err)
		detail = "the request could not be completed, please retry"
	}
	return c.JSON(statusFor(kind), ErrorResponse{Success: false, Kind: kind, Detail: detail})
}

// badRequest renders a body that could not be decoded.
func (s *Server) badRequest(c echo.Context, err error) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{
		Success: false,
		Kind:    errs.KindInvalidInput,
		Detail:  "invalid request body: " + err.Error(),
	})
}
