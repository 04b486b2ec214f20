package middleware

import (
	"math/rand"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/oklog/ulid/v2"
)

// HeaderRequestID is the response header carrying the request ULID.
const HeaderRequestID = "X-Request-Id"

// LocalsRequestID is the fiber locals key for the request ULID.
const LocalsRequestID = "request_id"

// RequestID stamps every request with a ULID for log correlation.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		entropy := ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0)
		id := ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()

		c.Locals(LocalsRequestID, id)
		c.Set(HeaderRequestID, id)
		return c.Next()
	}
}
