package service

import (
	"errors"
	"fmt"

	"toy-store-backend/internal/repository"
)

// Errores de negocio exportados (los usa el controller para mapear a HTTP).
var (
	ErrForbidden          = errors.New("no tenés permiso para operar sobre esta orden")
	ErrAdminOnly          = errors.New("se requieren permisos de administrador")
	ErrInvalidCredentials = errors.New("email o contraseña incorrectos")
)

// RuleError es una violación de regla de negocio: validación de campos o
// conflicto de estado. El controller la devuelve como 400 con el mensaje
// tal cual, sin tocar.
type RuleError struct {
	Msg string
}

func (e *RuleError) Error() string { return e.Msg }

func ruleErr(format string, args ...any) error {
	return &RuleError{Msg: fmt.Sprintf(format, args...)}
}

func isNotFound(err error) bool {
	return errors.Is(err, repository.ErrNotFound)
}
