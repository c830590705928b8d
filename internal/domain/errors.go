package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	// Autenticación y tenant.
	ErrAuthentication   = errors.New("credenciales inválidas")
	ErrInvalidTenant    = errors.New("el usuario no pertenece al cliente solicitado")
	ErrTokenInvalid     = errors.New("token inválido")
	ErrTokenExpired     = errors.New("token expirado")
	ErrUserNotFound     = errors.New("usuario no encontrado o inactivo")
	ErrTenantMembership = errors.New("el usuario ya no pertenece al cliente del token")

	// Recursos.
	ErrValidation = errors.New("entrada inválida")
	ErrNotFound   = errors.New("recurso no encontrado")
	// ErrDuplicate es un caso de ErrValidation: errors.Is(ErrDuplicate, ErrValidation) es verdadero.
	ErrDuplicate         = fmt.Errorf("%w: recurso duplicado", ErrValidation)
	ErrConflict          = errors.New("conflicto con el estado actual")
	ErrInvalidTransition = errors.New("transición de estado no permitida")
)

// FieldError describe un campo inválido de la entrada.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError agrupa los campos inválidos; errors.Is(err, ErrValidation) es verdadero.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// Invalid construye un ValidationError de un solo campo.
func Invalid(field, message string) error {
	return &ValidationError{Fields: []FieldError{{Field: field, Message: message}}}
}

// Validator acumula errores de campo; Err devuelve nil si no hubo ninguno.
type Validator struct {
	fields []FieldError
}

// Check registra message para field cuando ok es falso.
func (v *Validator) Check(ok bool, field, message string) {
	if !ok {
		v.fields = append(v.fields, FieldError{Field: field, Message: message})
	}
}

func (v *Validator) Err() error {
	if len(v.fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: v.fields}
}

// IsAuthError informa si err pertenece a la familia de errores de autenticación (401).
func IsAuthError(err error) bool {
	for _, target := range []error{ErrAuthentication, ErrInvalidTenant, ErrTokenInvalid, ErrTokenExpired, ErrUserNotFound, ErrTenantMembership} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
