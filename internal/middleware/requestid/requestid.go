package requestid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofrs/uuid"

	"github.com/ciaanhq/ciaan-api/internal/pkg/log"
)

const (
	// HeaderRequestID is the HTTP header name for the request ID
	HeaderRequestID = "X-Request-ID"
	// ContextKeyRequestID is the key used to store the request ID in fiber Locals
	ContextKeyRequestID = "request_id"
)

// New creates a middleware that propagates or generates an X-Request-ID.
// The ID is attached to the request context so the context-aware loggers
// tag their output with it.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := c.Get(HeaderRequestID)
		if requestID == "" {
			id, err := uuid.NewV4()
			if err == nil {
				requestID = id.String()
			}
		}

		c.Locals(ContextKeyRequestID, requestID)
		c.Set(HeaderRequestID, requestID)
		c.SetUserContext(log.WithRequestID(c.UserContext(), requestID))
		return c.Next()
	}
}

// GetRequestID retrieves the request ID from fiber Locals
func GetRequestID(c *fiber.Ctx) string {
	if id, ok := c.Locals(ContextKeyRequestID).(string); ok {
		return id
	}
	return ""
}
