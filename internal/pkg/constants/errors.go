package constants

import "net/http"

// CodedError carries the HTTP status that the api layer should answer with.
// Storage and services return these instead of relying on message matching.
type CodedError struct {
	code int
	msg  string
}

func NewCodedError(code int, msg string) *CodedError {
	return &CodedError{code: code, msg: msg}
}

func (e *CodedError) Error() string {
	return e.msg
}

func (e *CodedError) Code() int {
	return e.code
}

var (
	ErrDBNotFound   = NewCodedError(http.StatusNotFound, "registro não encontrado")
	ErrDBConflict   = NewCodedError(http.StatusConflict, "registro já existe")
	ErrUnauthorized = NewCodedError(http.StatusUnauthorized, "não autorizado")
)
