package auth

// Claims representa la sesión autenticada extraída del token.
type Claims struct {
	UserID string
	Email  string
}
