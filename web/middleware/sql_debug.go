package middleware

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/technest/database"
)

// SQLDebug reports how many SQL statements each request executed via the
// X-SQL-Queries response header. The statements themselves are available
// from the /api/debug/sql endpoint.
func SQLDebug() fiber.Handler {
	return func(c *fiber.Ctx) error {
		before := database.SQLLogger.Total()

		err := c.Next()

		// The monotonic total keeps counting once the ring is full.
		executed := database.SQLLogger.Total() - before
		c.Set("X-SQL-Queries", strconv.Itoa(executed))

		return err
	}
}
