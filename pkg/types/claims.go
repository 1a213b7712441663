package types

import "github.com/golang-jwt/jwt/v5"

// Claims is the JWT payload issued to console staff.
type Claims struct {
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
	jwt.RegisteredClaims
}
