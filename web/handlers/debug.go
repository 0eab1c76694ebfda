package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/technest/database"
)

// GetSQLLogs returns recently executed SQL statements
func GetSQLLogs(c *fiber.Ctx) error {
	queries := database.SQLLogger.GetQueries()
	return c.JSON(fiber.Map{
		"count":   len(queries),
		"queries": queries,
	})
}

// ClearSQLLogs clears the SQL log ring
func ClearSQLLogs(c *fiber.Ctx) error {
	database.SQLLogger.Clear()
	return c.SendStatus(fiber.StatusNoContent)
}
