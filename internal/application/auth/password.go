package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Modos de almacenamiento de contraseña.
const (
	PasswordModePlain  = "plain"
	PasswordModeBcrypt = "bcrypt"
)

// PasswordMatcher prepara la contraseña para persistir y la compara en el login.
type PasswordMatcher interface {
	Hash(password string) (string, error)
	Matches(stored, given string) bool
}

// NewPasswordMatcher devuelve el matcher del modo indicado. El modo plain
// compara en texto claro, que es el comportamiento histórico de la tienda.
func NewPasswordMatcher(mode string) (PasswordMatcher, error) {
	switch mode {
	case "", PasswordModePlain:
		return PlainMatcher{}, nil
	case PasswordModeBcrypt:
		return BcryptMatcher{Cost: bcrypt.DefaultCost}, nil
	default:
		return nil, fmt.Errorf("auth: modo de contraseña desconocido %q", mode)
	}
}

// PlainMatcher guarda la contraseña tal cual y exige igualdad exacta.
type PlainMatcher struct{}

func (PlainMatcher) Hash(password string) (string, error) { return password, nil }
func (PlainMatcher) Matches(stored, given string) bool    { return stored == given }

// BcryptMatcher guarda hash bcrypt.
type BcryptMatcher struct {
	Cost int
}

func (m BcryptMatcher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), m.Cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (BcryptMatcher) Matches(stored, given string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(given)) == nil
}
