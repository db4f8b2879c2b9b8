package domain

import "github.com/golang-jwt/jwt/v5"

// Claims é o conteúdo do token emitido pelo serviço de autenticação do back-office.
// Este serviço apenas valida o token e aplica as regras de papel.
type Claims struct {
	UserID     int    `json:"user_id"`
	UserName   string `json:"user_name"`
	UserEmail  string `json:"user_email"`
	UserRoleID int    `json:"user_role_id"`
	LocationID string `json:"location_id,omitempty"`
	jwt.RegisteredClaims
}
