package domain

import "errors"

// Store errors, translated to HTTP status codes at the API boundary
var (
	ErrNotFound  = errors.New("record not found")     // Referenced entity absent
	ErrDuplicate = errors.New("record already exists") // Unique constraint violated
)
