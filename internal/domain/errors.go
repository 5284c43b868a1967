package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrReferenceNotFound = errors.New("el registro referenciado no existe")
	ErrReferenced        = errors.New("el registro está referenciado por otros registros")
)
