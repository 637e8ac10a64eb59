package repository

import "errors"

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrAlreadyExists is returned when a unique constraint is violated.
var ErrAlreadyExists = errors.New("record already exists")

// Page carries pagination metadata for search results.
type Page struct {
	PerPage     int64 `json:"per_page"`
	TotalPage   int64 `json:"total_page"`
	Count       int64 `json:"count"`
	CurrentPage int64 `json:"current_page"`
}
