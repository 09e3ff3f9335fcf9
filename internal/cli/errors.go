package cli

import (
	"errors"
	"strconv"
)

// Ошибки разбора верхней границы.
var (
	// ErrInvalidBound — аргумент не является целым числом.
	ErrInvalidBound = errors.New("bound is not an integer")

	// ErrNegativeBound — аргумент является отрицательным числом.
	ErrNegativeBound = errors.New("bound must be non-negative")
)

// BoundError — ошибка конфигурации с контекстом:
// какой аргумент пришёл и почему он отвергнут.
type BoundError struct {
	Arg     string // переданный аргумент
	Message string // описание ошибки
	Err     error  // базовая ошибка
}

// Error реализует интерфейс error.
func (e *BoundError) Error() string {
	return "invalid bound " + strconv.Quote(e.Arg) + ": " + e.Message
}

// Unwrap возвращает базовую ошибку.
func (e *BoundError) Unwrap() error {
	return e.Err
}

// NewBoundError создаёт новую ошибку разбора границы.
func NewBoundError(arg, message string, err error) *BoundError {
	return &BoundError{
		Arg:     arg,
		Message: message,
		Err:     err,
	}
}
