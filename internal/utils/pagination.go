package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yuzuhara/survey-admin-api/internal/repository"
)

// GetPageOptions extracts sortBy, limit and page from the query string.
// Out-of-range values are left for the pagination engine to clamp.
func GetPageOptions(c *gin.Context) repository.PageOptions {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))

	return repository.PageOptions{
		SortBy: c.Query("sortBy"),
		Limit:  limit,
		Page:   page,
	}
}

// CollectFilter builds an exact-match filter from whitelisted query
// parameters, mapping each parameter name to its column name and
// skipping ones the caller did not supply.
func CollectFilter(c *gin.Context, fields map[string]string) map[string]any {
	filter := make(map[string]any, len(fields))
	for param, column := range fields {
		if value, ok := c.GetQuery(param); ok && value != "" {
			filter[column] = value
		}
	}
	return filter
}
