package models

import "github.com/golang-jwt/jwt/v5"

// UserClaims is the JWT payload issued by the auth provider.
type UserClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
	Sub   string `json:"sub"`
	Role  string `json:"role"`
}
