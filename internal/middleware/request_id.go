package middleware

import (
	"time"

	contextPkg "github.com/sahilkhan786000/AeroLead-AI-BlogGenerator/pkg/context"
	"github.com/sahilkhan786000/AeroLead-AI-BlogGenerator/pkg/utils"

	"github.com/gofiber/fiber/v2"
)

const RequestIDKey = contextPkg.LocalsRequestIDKey

func newRequestIDMiddleware(utilsInstance utils.IUtils) fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := c.Get(RequestIDKey)

		if requestID == "" {
			requestID, _ = utilsInstance.NewULIDFromTimestamp(time.Now())
		}

		c.Locals(RequestIDKey, requestID)
		c.Set(RequestIDKey, requestID)

		return c.Next()
	}
}
