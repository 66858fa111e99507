package errors

import "errors"

var (
	ErrInvalidInput    = errors.New("reading list input is invalid")
	ErrReaderNotFound  = errors.New("reader not found")
	ErrChapterNotFound = errors.New("chapter not found")
	ErrComicNotFound   = errors.New("comic not found")
)
