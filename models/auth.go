package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// OperatorSubject is the only principal the API knows about.
const OperatorSubject = "operator"

type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}

type Claims struct {
	Operator string `json:"operator"`
	jwt.RegisteredClaims
}
