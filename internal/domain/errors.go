package domain

import (
	"errors"
	"fmt"

	"git.appkode.ru/pub/go/failure"

	"bankocr/pkg/errcodes"
)

// Сентинелы для errors.Is: сравнение идёт по коду ошибки.
var (
	ErrMalformedRow       = NewError(errcodes.MalformedRow, "malformed glyph row")
	ErrMalformedSeparator = NewError(errcodes.MalformedSeparator, "malformed separator row")
	ErrInvalidBlockLength = NewError(errcodes.InvalidBlockLength, "invalid glyph block length")
	ErrEmptyInput         = NewError(errcodes.EmptyInput, "empty input")
)

// AppError представляет доменную ошибку приложения.
type AppError struct {
	Code    failure.ErrorCode
	Message string

	// Позиция во входной сетке (1-based), если ошибка относится к разбору.
	Entry int
	Row   int
	Line  int

	cause error
}

// Error реализует интерфейс error.
func (e *AppError) Error() string {
	msg := e.Message
	if e.Entry > 0 {
		msg = fmt.Sprintf("%s (entry %d, row %d, line %d)", msg, e.Entry, e.Row, e.Line)
	}

	if e.cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.cause)
	}
	return msg
}

// ErrorCode отдаёт код для HTTP-ответа.
func (e *AppError) ErrorCode() failure.ErrorCode {
	return e.Code
}

// Unwrap возвращает обёрнутую ошибку для errors.Is/As.
func (e *AppError) Unwrap() error {
	return e.cause
}

// Is сравнивает ошибки по коду, чтобы работал errors.Is(err, ErrMalformedRow).
func (e *AppError) Is(target error) bool {
	var t *AppError
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code
}

// NewError создаёт новую доменную ошибку.
func NewError(code failure.ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// NewGridError создаёт ошибку разбора с позицией записи и строки.
func NewGridError(code failure.ErrorCode, message string, entry, row, line int) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Entry:   entry,
		Row:     row,
		Line:    line,
	}
}

// WrapError оборачивает существующую ошибку с доменным контекстом.
func WrapError(err error, code failure.ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		cause:   err,
	}
}

// IsAppError проверяет, является ли ошибка доменной.
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetCode извлекает код ошибки, если это AppError.
func GetCode(err error) (failure.ErrorCode, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code, true
	}
	return "", false
}
