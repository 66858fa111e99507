package errors

import "errors"

var (
	ErrInvalidInput            = errors.New("progression input is invalid")
	ErrReaderNotFound          = errors.New("reader not found")
	ErrAchievementNotFound     = errors.New("achievement not found")
	ErrAchievementAlreadyOwned = errors.New("achievement already added")
	ErrAchievementNotOwned     = errors.New("achievement not present")
	ErrNotEnoughRuby           = errors.New("not enough ruby")
)
