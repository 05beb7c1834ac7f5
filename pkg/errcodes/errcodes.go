package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError failure.ErrorCode = "InternalServerError"
	ValidationError     failure.ErrorCode = "ValidationError"
	NotFound            failure.ErrorCode = "NotFound"
	NotReady            failure.ErrorCode = "NotReady"

	// Разбор сетки глифов
	MalformedRow       failure.ErrorCode = "MalformedRow"       // строка глифов не 27 символов
	MalformedSeparator failure.ErrorCode = "MalformedSeparator" // 4-я строка записи не пустая
	InvalidBlockLength failure.ErrorCode = "InvalidBlockLength" // блок не 81 символ
	EmptyInput         failure.ErrorCode = "EmptyInput"         // пустой обязательный аргумент
	InvalidNumber      failure.ErrorCode = "InvalidNumber"      // номер нельзя отрисовать глифами
)
