package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

const defaultPageSize = 20

// pageParams reads the 1-based page query param and returns the page and the
// row offset for a fixed page size.
func pageParams(c *fiber.Ctx, pageSize int) (page int, offset int) {
	page, _ = strconv.Atoi(c.Query("page", "1"))
	if page < 1 {
		page = 1
	}
	return page, (page - 1) * pageSize
}

// hasNextPage reports whether a further page exists given how many rows a
// query limited to pageSize+1 actually returned.
func hasNextPage(fetched, pageSize int) bool {
	return fetched > pageSize
}
