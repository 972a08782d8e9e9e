package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrInsufficientStock = errors.New("stock insuficiente")
	// ErrBackend agrupa fallos de red y respuestas no exitosas del backend.
	ErrBackend = errors.New("error al comunicarse con el backend")
	// ErrInconsistentState el registro quedó creado pero el stock no se ajustó ni pudo revertirse.
	ErrInconsistentState = errors.New("registro y stock inconsistentes")
)
