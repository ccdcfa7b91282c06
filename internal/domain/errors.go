package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")

	// ErrMissingUpload el alta de producto llegó sin imagen.
	ErrMissingUpload = errors.New("no se subió ningún archivo")

	ErrUnregisteredEmail = errors.New("email no registrado")
	ErrIncorrectPassword = errors.New("contraseña incorrecta")
	ErrDuplicateAccount  = errors.New("el email ya está registrado")
)

// IsValidation indica si err es un error corregible por el cliente (400).
func IsValidation(err error) bool {
	return errors.Is(err, ErrInvalidInput) || errors.Is(err, ErrMissingUpload)
}

// IsAuth indica si err pertenece a la familia de errores de autenticación,
// que se muestran como mensaje y no como fallo.
func IsAuth(err error) bool {
	return errors.Is(err, ErrUnregisteredEmail) ||
		errors.Is(err, ErrIncorrectPassword) ||
		errors.Is(err, ErrDuplicateAccount)
}
