package errors

import "errors"

var (
	ErrInvalidInput    = errors.New("catalog input is invalid")
	ErrComicNotFound   = errors.New("comic not found")
	ErrChapterNotFound = errors.New("chapter not found")
	ErrSlugTaken       = errors.New("slug is already taken")
)
