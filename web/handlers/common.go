package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const (
	defaultPageSize = 50
	maxPageSize     = 200
)

// paginated runs a filtered list query with count/page/page_size handling
// and writes the standard list envelope. The order string is the default
// admin ordering unless the request overrides it with ?order=.
func paginated(c *fiber.Ctx, query *gorm.DB, order string, out interface{}) error {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	pageSize := c.QueryInt("page_size", defaultPageSize)
	if pageSize < 1 || pageSize > maxPageSize {
		pageSize = defaultPageSize
	}
	if o := c.Query("order"); o != "" {
		order = orderClause(o)
	}

	q := query.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return err
	}

	err := q.Order(order).Offset((page - 1) * pageSize).Limit(pageSize).Find(out).Error
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"count":     total,
		"page":      page,
		"page_size": pageSize,
		"results":   out,
	})
}

// orderClause turns an admin-style ordering value ("-created_at") into a
// SQL ORDER BY clause. Only plain column names are accepted; anything else
// falls back to newest-first.
func orderClause(field string) string {
	desc := strings.HasPrefix(field, "-")
	field = strings.TrimPrefix(field, "-")
	for _, r := range field {
		if r != '_' && (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return "created_at DESC"
		}
	}
	if field == "" {
		return "created_at DESC"
	}
	if desc {
		return field + " DESC"
	}
	return field
}

// boolFilter applies an optional ?name=true|false filter.
func boolFilter(c *fiber.Ctx, query *gorm.DB, param, column string) *gorm.DB {
	if v := c.Query(param); v != "" {
		return query.Where(column+" = ?", v == "true" || v == "1")
	}
	return query
}
