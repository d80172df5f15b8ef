package response

import "github.com/gofiber/fiber/v3"

// Every endpoint answers with the same envelope; Data carries the payload and
// is null for errors and empty results.
type Envelope struct {
	Status  int         `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

const (
	MessageOK                  = "ok"
	MessageBadRequest          = "bad request"
	MessageUnauthorized        = "unauthorized"
	MessageNotFound            = "not found"
	MessageInternalServerError = "internal server error"
	MessageError               = "error"
)

func Success(c fiber.Ctx, status int, message string, data interface{}) error {
	return write(c, status, message, data)
}

func Error(c fiber.Ctx, status int, message string) error {
	return write(c, status, message, nil)
}

func write(c fiber.Ctx, status int, message string, data interface{}) error {
	if status < 100 || status > 599 {
		status = fiber.StatusInternalServerError
	}
	if message == "" {
		message = DefaultMessageForStatus(status)
	}
	return c.Status(status).JSON(Envelope{Status: status, Message: message, Data: data})
}

func DefaultMessageForStatus(status int) string {
	switch status {
	case fiber.StatusOK:
		return MessageOK
	case fiber.StatusBadRequest:
		return MessageBadRequest
	case fiber.StatusUnauthorized:
		return MessageUnauthorized
	case fiber.StatusNotFound:
		return MessageNotFound
	default:
		if status >= 500 {
			return MessageInternalServerError
		}
		return MessageError
	}
}
