package errors

import "errors"

var (
	ErrInvalidInput       = errors.New("view tracking input is invalid")
	ErrViewRecordNotFound = errors.New("view record not found")
	ErrViewRecordExists   = errors.New("view record already exists for comic")
)
