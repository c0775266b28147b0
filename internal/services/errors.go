package services

import "errors"

// Common service errors
var (
	ErrNotFound           = errors.New("registro no encontrado")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrDuplicate          = errors.New("registro duplicado")
	ErrInvalidState       = errors.New("transición de estado inválida")
	ErrValidation         = errors.New("datos inválidos")
)
