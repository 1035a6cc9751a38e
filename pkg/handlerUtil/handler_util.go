package handlerUtil

import (
	"errors"

	"github.com/sahilkhan786000/AeroLead-AI-BlogGenerator/pkg/log"
	"github.com/sahilkhan786000/AeroLead-AI-BlogGenerator/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	TraceID string `json:"trace_id,omitempty"`
}

type ErrorHandler struct {
	logger *logrus.Logger
}

func New(logger *logrus.Logger) *ErrorHandler {
	return &ErrorHandler{
		logger: logger,
	}
}

// Handle writes err to the client. A *response.Error anywhere in the chain
// decides the status and the message; the full chain is only logged.
func (h *ErrorHandler) Handle(c *fiber.Ctx, requestID string, err error, path string, operation string) error {
	var respErr *response.Error
	if errors.As(err, &respErr) {
		entry := h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"code":       respErr.Code,
			"path":       path,
			"operation":  operation,
		})
		if respErr.Code >= fiber.StatusInternalServerError {
			entry.Error("Operation failed with error response")
		} else {
			entry.Warn("Operation failed with error response")
		}
		return c.Status(respErr.Code).JSON(ErrorResponse{Error: respErr.Error()})
	}

	traceID := log.ErrorWithTraceID(h.logger, log.Fields{
		"request_id": requestID,
		"error":      err.Error(),
		"path":       path,
		"operation":  operation,
	}, "Unexpected error")

	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
		Error:   "An unexpected error occurred",
		TraceID: traceID,
	})
}

// HandleValidationError answers 400 with badRequest's message, logging the
// underlying validation or decode error.
func (h *ErrorHandler) HandleValidationError(c *fiber.Ctx, requestID string, err error, path string, badRequest error) error {
	h.logger.WithFields(log.Fields{
		"request_id": requestID,
		"error":      err.Error(),
		"path":       path,
	}).Warn("Validation failed")

	status, _ := response.StatusOf(badRequest)
	return c.Status(status).JSON(ErrorResponse{Error: badRequest.Error()})
}

func (h *ErrorHandler) HandleSuccess(c *fiber.Ctx, statusCode int, data interface{}) error {
	if data == nil {
		return c.SendStatus(statusCode)
	}
	return c.Status(statusCode).JSON(data)
}

// FiberErrorHandler is installed as the app-wide fiber error handler and
// catches errors no handler answered, recovered panics included.
func FiberErrorHandler(logger *logrus.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			if fiberErr.Code >= fiber.StatusInternalServerError {
				logger.WithFields(log.Fields{
					"path":  c.Path(),
					"error": err.Error(),
				}).Error("Unhandled fiber error")
			}
			return c.Status(fiberErr.Code).JSON(ErrorResponse{Error: fiberErr.Message})
		}

		traceID := log.ErrorWithTraceID(logger, log.Fields{
			"path":  c.Path(),
			"error": err.Error(),
		}, "Unhandled error")

		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error:   "Internal Server Error",
			TraceID: traceID,
		})
	}
}
