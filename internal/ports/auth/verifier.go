package auth

import (
	"context"
	"errors"
)

// ErrNoSession indica que no hay sesión activa.
// Las operaciones de dominio abortan con este error antes de tocar storage.
var ErrNoSession = errors.New("no active session: sign in required")

// SessionVerifier verifica un token y devuelve claims o error.
type SessionVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}

// Gate es la verificación de sesión que cada servicio invoca como primer paso.
// La sesión en sí vive fuera del core; el gate solo confirma que existe.
type Gate interface {
	Ensure(ctx context.Context) (Claims, error)
}

// Provider agrupa el ciclo de vida de sesión del proveedor externo.
// El core no lo consume directamente; lo expone para la capa de presentación.
type Provider interface {
	SignIn(ctx context.Context, email, password string) (Session, error)
	SignUp(ctx context.Context, email, password string) (Session, error)
	SignOut(ctx context.Context, accessToken string) error
}

// Session es la sesión emitida por el proveedor tras sign-in/sign-up.
type Session struct {
	AccessToken string
	Claims      Claims
}
