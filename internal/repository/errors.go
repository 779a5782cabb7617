package repository

import "errors"

var (
	ErrNotFound         = errors.New("entity not found")
	ErrConnectionFailed = errors.New("database connection failed")
	ErrQueryFailed      = errors.New("database query failed")
)
