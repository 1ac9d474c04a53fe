package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// Pagination represents pagination parameters
type Pagination struct {
	Page   int
	Limit  int
	Offset int
	Total  int64
	Pages  int
}

// PaginationMeta is the pagination block of list responses
type PaginationMeta struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

// NewPagination builds a Pagination from already-parsed values, clamping
// page to >= 1 and limit to 1..MaxPaginationLimit.
func NewPagination(page, limit int) *Pagination {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPaginationLimit
	}
	if limit > MaxPaginationLimit {
		limit = MaxPaginationLimit
	}
	return &Pagination{
		Page:   page,
		Limit:  limit,
		Offset: (page - 1) * limit,
	}
}

// PaginationFromQuery reads page and limit from query parameters
func PaginationFromQuery(c *gin.Context) *Pagination {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(DefaultPaginationLimit)))
	if err != nil {
		limit = DefaultPaginationLimit
	}
	return NewPagination(page, limit)
}

// SetTotal sets the total number of items and calculates the page count
func (p *Pagination) SetTotal(total int64) {
	p.Total = total
	if p.Limit > 0 {
		p.Pages = int((total + int64(p.Limit) - 1) / int64(p.Limit))
	}
}

// Meta returns the JSON pagination block
func (p *Pagination) Meta() PaginationMeta {
	return PaginationMeta{
		Page:  p.Page,
		Limit: p.Limit,
		Total: p.Total,
		Pages: p.Pages,
	}
}
