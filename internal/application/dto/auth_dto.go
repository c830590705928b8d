package dto

// TokenRequest entrada de POST /v1/auth/token/.
type TokenRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	ClientID int64  `json:"client_id" validate:"required,min=1"`
}

// TokenResponse par de tokens emitidos para el client solicitado.
type TokenResponse struct {
	Access   string `json:"access"`
	Refresh  string `json:"refresh"`
	ClientID int64  `json:"client_id"`
}

// RefreshRequest entrada de POST /v1/auth/token/refresh/.
type RefreshRequest struct {
	Refresh string `json:"refresh" validate:"required"`
}

// RefreshResponse nuevo access token (mismo client_id que el refresh).
type RefreshResponse struct {
	Access string `json:"access"`
}
