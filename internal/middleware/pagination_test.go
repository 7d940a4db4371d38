package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext(t *testing.T, target string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", target, nil)
	return c
}

func TestGetPagination(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		wantPage int
		wantSize int
	}{
		{"valores por omisión", "/prices/", 1, 10},
		{"valores explícitos", "/prices/?page=3&page_size=25", 3, 25},
		{"tamaño limitado a 100", "/prices/?page_size=500", 1, 100},
		{"valores inválidos", "/prices/?page=cero&page_size=-1", 1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := GetPagination(testContext(t, tt.target))
			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, tt.wantSize, p.PageSize)
		})
	}
}

func TestPaginatedResponse(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}
	c := testContext(t, "/coins/?page=2&page_size=2")

	response := PaginatedResponse(c, items, Pagination{Page: 2, PageSize: 2})

	assert.Equal(t, 5, response["count"])
	assert.Equal(t, []int{3, 4}, response["results"])

	next, ok := response["next"].(*string)
	require.True(t, ok)
	require.NotNil(t, next)
	assert.Equal(t, "/coins/?page=3&page_size=2", *next)

	previous, ok := response["previous"].(*string)
	require.True(t, ok)
	require.NotNil(t, previous)
	assert.Equal(t, "/coins/?page=1&page_size=2", *previous)
}

func TestPaginatedResponseOutOfRange(t *testing.T) {
	items := []int{1, 2}
	c := testContext(t, "/coins/?page=9")

	response := PaginatedResponse(c, items, Pagination{Page: 9, PageSize: 10})

	assert.Equal(t, 2, response["count"])
	assert.Empty(t, response["results"])
	assert.Nil(t, response["next"].(*string))
}
