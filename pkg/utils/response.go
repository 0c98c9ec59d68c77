package utils

import (
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIResponse is the envelope every endpoint of the service answers with
type APIResponse struct {
	Success  bool        `json:"success" example:"true"`
	Message  string      `json:"message" example:"Operation completed successfully"`
	Data     interface{} `json:"data,omitempty"`
	Error    string      `json:"error,omitempty"`
	Redirect string      `json:"redirect,omitempty" example:"/"`
}

// PaginationMeta describes a page of results
type PaginationMeta struct {
	Page       int   `json:"page" example:"1"`
	Limit      int   `json:"limit" example:"10"`
	Total      int64 `json:"total" example:"42"`
	TotalPages int   `json:"total_pages" example:"5"`
}

// PaginatedResponse is APIResponse with pagination metadata
type PaginatedResponse struct {
	Success    bool           `json:"success" example:"true"`
	Message    string         `json:"message" example:"Data retrieved successfully"`
	Data       interface{}    `json:"data"`
	Pagination PaginationMeta `json:"pagination"`
}

// SuccessResponse sends a 200 response
func SuccessResponse(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// CreatedResponse sends a 201 response
func CreatedResponse(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// PaginatedSuccessResponse sends a 200 response carrying pagination metadata
func PaginatedSuccessResponse(c *gin.Context, message string, data interface{}, page, limit int, total int64) {
	totalPages := 0
	if limit > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(limit)))
	}

	c.JSON(http.StatusOK, PaginatedResponse{
		Success: true,
		Message: message,
		Data:    data,
		Pagination: PaginationMeta{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
		},
	})
}

// ErrorResponse sends an error response with the given status
func ErrorResponse(c *gin.Context, status int, message string, err error) {
	resp := APIResponse{
		Success: false,
		Message: message,
	}
	if err != nil {
		resp.Error = err.Error()
	}
	c.JSON(status, resp)
}

// RedirectHeader carries the navigation target of a RedirectResponse
const RedirectHeader = "X-Redirect-To"

// RedirectResponse sends an error response that tells the panel to navigate away
func RedirectResponse(c *gin.Context, status int, message, target string) {
	c.Header(RedirectHeader, target)
	c.JSON(status, APIResponse{
		Success:  false,
		Message:  message,
		Redirect: target,
	})
}

// BadRequestResponse sends a 400 response
func BadRequestResponse(c *gin.Context, message string, err error) {
	ErrorResponse(c, http.StatusBadRequest, message, err)
}

// UnauthorizedResponse sends a 401 response
func UnauthorizedResponse(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusUnauthorized, message, nil)
}

// ForbiddenResponse sends a 403 response
func ForbiddenResponse(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusForbidden, message, nil)
}

// NotFoundResponse sends a 404 response
func NotFoundResponse(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusNotFound, message, nil)
}

// InternalServerErrorResponse sends a 500 response
func InternalServerErrorResponse(c *gin.Context, message string, err error) {
	ErrorResponse(c, http.StatusInternalServerError, message, err)
}
