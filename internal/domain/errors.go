package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrHasReferences      = errors.New("el recurso tiene registros asociados")
	ErrMissingSecret      = errors.New("JWT_SECRET no configurado")
)

// ValidationError agrupa todos los problemas de una petición para responderlos
// juntos: el cliente ve la lista completa en un solo round trip en vez de
// descubrirlos de a uno.
type ValidationError struct {
	Details []string
}

func (e *ValidationError) Error() string {
	if len(e.Details) == 0 {
		return "entrada inválida"
	}
	return e.Details[0]
}

// NewValidationError construye el error con los mensajes recolectados.
func NewValidationError(details ...string) *ValidationError {
	return &ValidationError{Details: details}
}
