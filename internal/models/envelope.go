package models

// Envelope is the { message, result } wrapper returned by the society API
type Envelope[T any] struct {
	Message string `json:"message"`
	Result  T      `json:"result"`
}

// Pagination is the pagination block of a list result
type Pagination struct {
	Page       int   `json:"page" example:"1"`
	Limit      int   `json:"limit" example:"10"`
	Total      int64 `json:"total" example:"42"`
	TotalPages int   `json:"totalPages" example:"5"`
}

// Page is the result of a list endpoint
type Page[T any] struct {
	Items      []T        `json:"items"`
	Pagination Pagination `json:"pagination"`
}
