package jwt

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Tipos de token emitidos por el par access/refresh.
const (
	TypeAccess  = "access"
	TypeRefresh = "refresh"
)

var (
	// ErrExpired el token tiene firma válida pero ya venció.
	ErrExpired = errors.New("jwt: token expirado")
	// ErrInvalid el token está malformado, con firma incorrecta o es de otro tipo.
	ErrInvalid = errors.New("jwt: token inválido")
)

// Claims incluye los claims estándar JWT más los campos propios de la aplicación.
// ClientID es el tenant para el que se emitió el token; nunca se toma del cuerpo de la petición.
type Claims struct {
	jwt.RegisteredClaims
	UserID    int64  `json:"user_id"`
	ClientID  int64  `json:"client_id"`
	TokenType string `json:"token_type"`
}

// Generate genera un token firmado (HS256) del tipo indicado con user_id, client_id y un jti único.
func Generate(secret, issuer, tokenType string, userID, clientID int64, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	if tokenType != TypeAccess && tokenType != TypeRefresh {
		return "", fmt.Errorf("jwt: tipo de token desconocido %q", tokenType)
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    issuer,
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UserID:    userID,
		ClientID:  clientID,
		TokenType: tokenType,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida firma y expiración y devuelve los claims.
// Si expectedType no está vacío, el token debe ser de ese tipo (un access no sirve como refresh).
// Los errores devueltos envuelven ErrExpired o ErrInvalid.
func Parse(secret, tokenString, expectedType string) (*Claims, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: %v", ErrExpired, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("%w: claims inválidos", ErrInvalid)
	}
	if claims.UserID <= 0 || claims.ClientID <= 0 {
		return nil, fmt.Errorf("%w: faltan user_id o client_id", ErrInvalid)
	}
	if claims.Subject != strconv.FormatInt(claims.UserID, 10) {
		return nil, fmt.Errorf("%w: subject no coincide con user_id", ErrInvalid)
	}
	if expectedType != "" && claims.TokenType != expectedType {
		return nil, fmt.Errorf("%w: se esperaba token %s", ErrInvalid, expectedType)
	}
	return claims, nil
}
