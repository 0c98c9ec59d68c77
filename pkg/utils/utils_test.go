package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newContext(target string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	return c, w
}

func TestGetPaginationParams(t *testing.T) {
	tests := []struct {
		name      string
		target    string
		wantPage  int
		wantLimit int
	}{
		{"Defaults", "/items", 1, 10},
		{"Explicit", "/items?page=3&limit=25", 3, 25},
		{"CapsLimit", "/items?limit=1000", 1, 100},
		{"IgnoresGarbage", "/items?page=abc&limit=-4", 1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newContext(tt.target)
			page, limit := GetPaginationParams(c)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}

func TestGetIDParam(t *testing.T) {
	c, _ := newContext("/items/7")
	c.Params = gin.Params{{Key: "id", Value: "7"}}
	id, err := GetIDParam(c)
	require.NoError(t, err)
	assert.Equal(t, uint(7), id)

	c.Params = gin.Params{{Key: "id", Value: "0"}}
	_, err = GetIDParam(c)
	assert.Error(t, err)

	c.Params = gin.Params{{Key: "id", Value: "seven"}}
	_, err = GetIDParam(c)
	assert.Error(t, err)
}

func TestPaginatedSuccessResponse(t *testing.T) {
	c, w := newContext("/items")
	PaginatedSuccessResponse(c, "ok", []int{1, 2}, 2, 10, 21)

	var resp PaginatedResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 3, resp.Pagination.TotalPages)
	assert.Equal(t, int64(21), resp.Pagination.Total)
}

func TestErrorResponse(t *testing.T) {
	c, w := newContext("/items")
	BadRequestResponse(c, "Invalid request", errors.New("name is required"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "name is required", resp.Error)
}

func TestRedirectResponse(t *testing.T) {
	c, w := newContext("/items")
	RedirectResponse(c, http.StatusForbidden, "Forbidden", "/")

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "/", w.Header().Get("X-Redirect-To"))
	var resp APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "/", resp.Redirect)
	assert.Equal(t, "Forbidden", resp.Message)
}
