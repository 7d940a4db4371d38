package middleware

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// Pagination son los parámetros page/page_size ya saneados.
type Pagination struct {
	Page     int
	PageSize int
}

// GetPagination lee page y page_size de la consulta. El tamaño de
// página se limita a 100 y por omisión es 10.
func GetPagination(c *gin.Context) Pagination {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(defaultPageSize)))
	if err != nil || pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	return Pagination{Page: page, PageSize: pageSize}
}

// PaginatedResponse arma la respuesta paginada estándar sobre un
// listado ya completo en memoria.
func PaginatedResponse[T any](c *gin.Context, items []T, p Pagination) gin.H {
	count := len(items)

	start := (p.Page - 1) * p.PageSize
	if start > count {
		start = count
	}
	end := start + p.PageSize
	if end > count {
		end = count
	}

	return gin.H{
		"count":    count,
		"next":     pageLink(c, p, p.Page+1, end < count),
		"previous": pageLink(c, p, p.Page-1, p.Page > 1),
		"results":  items[start:end],
	}
}

func pageLink(c *gin.Context, p Pagination, page int, exists bool) *string {
	if !exists {
		return nil
	}
	link := fmt.Sprintf("%s?page=%d&page_size=%d", c.Request.URL.Path, page, p.PageSize)
	return &link
}
