package repository

import "errors"

var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyLinked = errors.New("alert already has an order")
)
