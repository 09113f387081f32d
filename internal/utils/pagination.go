package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/skillnet/skillnet-api/internal/constants"
)

// PaginationParams holds the validated page and limit from a request. Offset
// arithmetic lives in the database package's Paginate scope.
type PaginationParams struct {
	Page  int
	Limit int
}

// PaginationResponse represents the pagination metadata in API responses
type PaginationResponse struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

// GetPaginationParams reads `page` and `limit` from the query string,
// clamping out-of-range values to the defaults.
func GetPaginationParams(c *gin.Context) PaginationParams {
	params := PaginationParams{
		Page:  constants.MinPageSize,
		Limit: constants.DefaultPageSize,
	}

	if page, err := strconv.Atoi(c.Query("page")); err == nil && page >= constants.MinPageSize {
		params.Page = page
	}
	if limit, err := strconv.Atoi(c.Query("limit")); err == nil &&
		limit >= constants.MinPageSize && limit <= constants.MaxPageSize {
		params.Limit = limit
	}

	return params
}
