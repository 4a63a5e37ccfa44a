package utils

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// Pagination represents pagination parameters and, once SetTotal is called, the page count
type Pagination struct {
	Page       int
	Size       int
	Offset     int
	Total      int64
	TotalPages int
}

// NewPagination builds a Pagination for a 1-based page of the given size
func NewPagination(page, size int) (*Pagination, error) {
	if page < 1 || size < 1 {
		return nil, ValidationErr(ErrInvalidPagination, nil)
	}
	if size > MaxPaginationLimit {
		size = MaxPaginationLimit
	}
	return &Pagination{
		Page:   page,
		Size:   size,
		Offset: (page - 1) * size,
	}, nil
}

// PaginationFromQuery reads page and size from the query string. Present but
// non-positive or non-numeric values are rejected rather than defaulted.
func PaginationFromQuery(c *gin.Context) (*Pagination, error) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		return nil, ValidationErr(ErrInvalidPagination, err)
	}
	size, err := strconv.Atoi(c.DefaultQuery("size", strconv.Itoa(DefaultPaginationLimit)))
	if err != nil {
		return nil, ValidationErr(ErrInvalidPagination, err)
	}
	return NewPagination(page, size)
}

// SetTotal sets the total number of items and calculates the page count
func (p *Pagination) SetTotal(total int64) {
	p.Total = total
	p.TotalPages = TotalPages(total, p.Size)
}

// Apply limits a query to the current page
func (p *Pagination) Apply(db *gorm.DB) *gorm.DB {
	return db.Offset(p.Offset).Limit(p.Size)
}

// TotalPages returns ceil(total / size)
func TotalPages(total int64, size int) int {
	if size <= 0 {
		return 0
	}
	return int((total + int64(size) - 1) / int64(size))
}

// ParseSort normalizes a sort direction, using def when value is empty
func ParseSort(value, def string) (string, error) {
	switch v := strings.ToLower(strings.TrimSpace(value)); v {
	case "":
		return def, nil
	case SortAsc, SortDesc:
		return v, nil
	default:
		return "", ValidationErr(ErrInvalidSort, nil)
	}
}

// OrderClause renders "<column> ASC|DESC" for a parsed sort direction
func OrderClause(column, sort string) string {
	if sort == SortAsc {
		return column + " ASC"
	}
	return column + " DESC"
}
