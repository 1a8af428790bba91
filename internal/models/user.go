package models

import "github.com/golang-jwt/jwt/v5"

// AuthUser is the caller identity carried by a bearer token.
type AuthUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Claims defines the structure of the JWT claims.
type Claims struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}
