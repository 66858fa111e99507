package errors

import "errors"

var (
	ErrInvalidInput           = errors.New("chapter access input is invalid")
	ErrChapterNotFound        = errors.New("chapter not found")
	ErrReaderNotFound         = errors.New("reader not found")
	ErrAuthenticationRequired = errors.New("please authenticate")
	ErrNotEnoughRuby          = errors.New("not enough ruby")
)
