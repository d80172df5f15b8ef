package middleware

import (
	"errors"
	"log"

	"jobtrack/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type AppError struct {
	StatusCode int
	Message    string
	Cause      error
}

func (e *AppError) Error() string {
	if e == nil {
		return ""
	}
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func NewAppError(statusCode int, message string, cause error) *AppError {
	return &AppError{StatusCode: statusCode, Message: message, Cause: cause}
}

type ErrorMiddleware struct {
	logger *log.Logger
}

func NewErrorMiddleware(logger *log.Logger) *ErrorMiddleware {
	if logger == nil {
		logger = log.Default()
	}
	return &ErrorMiddleware{logger: logger}
}

// Middleware converts handler errors into the JSON envelope. Errors are logged
// server-side with their cause; 5xx bodies never carry internal detail.
func (m *ErrorMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				m.logger.Printf("panic recovered: %v", r)
				err = response.Error(c, fiber.StatusInternalServerError, response.MessageInternalServerError)
			}
		}()

		err = c.Next()
		if err == nil {
			return nil
		}

		status, msg := m.normalize(c, err)
		return response.Error(c, status, msg)
	}
}

func (m *ErrorMiddleware) normalize(c fiber.Ctx, err error) (int, string) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		status := appErr.StatusCode
		if status <= 0 {
			status = fiber.StatusInternalServerError
		}
		if status >= 500 {
			m.logger.Printf("%s %s -> %d: %v", c.Method(), c.OriginalURL(), status, appErr)
			return fiber.StatusInternalServerError, response.MessageInternalServerError
		}
		msg := appErr.Message
		if msg == "" {
			msg = response.DefaultMessageForStatus(status)
		}
		return status, msg
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) && fiberErr.Code < 500 && fiberErr.Code > 0 {
		msg := fiberErr.Message
		if msg == "" {
			msg = response.DefaultMessageForStatus(fiberErr.Code)
		}
		return fiberErr.Code, msg
	}

	m.logger.Printf("%s %s -> 500: %v", c.Method(), c.OriginalURL(), err)
	return fiber.StatusInternalServerError, response.MessageInternalServerError
}
