package api

import (
	"net/http"

	"github.com/gcsolar/usinas-backend/internal/pkg/constants"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	return &Validator{validate: validator.New()}
}

func (v *Validator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return constants.NewCodedError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// Binder maps bind failures to the 400 side of the error taxonomy instead of
// echo's default HTTPError.
type Binder struct {
	binder echo.DefaultBinder
}

func NewBinder() *Binder {
	return &Binder{}
}

func (b *Binder) Bind(i any, c echo.Context) error {
	if err := b.binder.Bind(i, c); err != nil {
		return constants.NewCodedError(http.StatusBadRequest, "corpo da requisição inválido")
	}
	return nil
}
