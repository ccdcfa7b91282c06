// Package session asocia un token opaco de cliente con la identidad (email)
// autenticada. El almacenamiento está detrás de Store para poder cambiar el
// mapa en memoria por Redis sin tocar el caso de uso de auth.
package session

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Store puerto de persistencia de sesiones.
type Store interface {
	Save(ctx context.Context, token, email string) error
	// Get devuelve ("", false, nil) si el token no existe.
	Get(ctx context.Context, token string) (string, bool, error)
	// Delete no falla si el token no existe.
	Delete(ctx context.Context, token string) error
}

// Manager crea, resuelve y destruye sesiones. Sin expiración: una sesión vive
// hasta Destroy o hasta que el Store la pierda (reinicio del proceso en memoria).
type Manager struct {
	store    Store
	newToken func() string
}

// NewManager construye el gestor con tokens UUIDv4.
func NewManager(store Store) *Manager {
	return &Manager{store: store, newToken: func() string { return uuid.NewString() }}
}

// Create emite un token nuevo ligado a identity.
func (m *Manager) Create(ctx context.Context, identity string) (string, error) {
	token := m.newToken()
	if err := m.store.Save(ctx, token, identity); err != nil {
		return "", fmt.Errorf("guardar sesión: %w", err)
	}
	return token, nil
}

// Resolve devuelve la identidad del token o ok=false si es desconocido o fue destruido.
func (m *Manager) Resolve(ctx context.Context, token string) (string, bool, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return "", false, nil
	}
	email, ok, err := m.store.Get(ctx, token)
	if err != nil {
		return "", false, fmt.Errorf("leer sesión: %w", err)
	}
	return email, ok, nil
}

// Destroy invalida el token. Un token inválido o vacío es un no-op.
func (m *Manager) Destroy(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil
	}
	if err := m.store.Delete(ctx, token); err != nil {
		return fmt.Errorf("borrar sesión: %w", err)
	}
	return nil
}
