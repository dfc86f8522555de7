package domain

import "github.com/golang-jwt/jwt/v5"

// Claims representa as informações do administrador no token JWT
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// RoleAdmin é o único papel com acesso às rotas administrativas
const RoleAdmin = "admin"

// LoginRequest é o corpo esperado em /v1/login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse devolve o token gerado
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
}
