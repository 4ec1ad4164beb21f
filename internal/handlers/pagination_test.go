package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func testContext(t *testing.T, url string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", url, nil)
	return c
}

func TestPageParams(t *testing.T) {
	tests := []struct {
		name         string
		url          string
		wantPage     int
		wantPageSize int
	}{
		{"значения по умолчанию", "/x", 1, DefaultPageSize},
		{"обычный запрос", "/x?page=3&pageSize=50", 3, 50},
		{"размер страницы ограничен сверху", "/x?pageSize=9999", 1, MaxPageSize},
		{"мусор в параметрах", "/x?page=abc&pageSize=-5", 1, DefaultPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, pageSize := pageParams(testContext(t, tt.url))
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantPageSize, pageSize)
		})
	}
}

func TestCreatePaginatedResponse(t *testing.T) {
	c := testContext(t, "/x?page=2&pageSize=10")
	resp := CreatePaginatedResponse(c, []string{"a", "b"}, 25)

	assert.Equal(t, int64(25), resp.TotalRows)
	assert.Equal(t, 3, resp.TotalPages)
	assert.Equal(t, 2, resp.CurrentPage)
	assert.Equal(t, 10, resp.PageSize)
}

func TestCreatePaginatedResponseEmpty(t *testing.T) {
	c := testContext(t, "/x")
	resp := CreatePaginatedResponse(c, []string{}, 0)

	assert.Equal(t, 0, resp.TotalPages)
	assert.Equal(t, int64(0), resp.TotalRows)
}
