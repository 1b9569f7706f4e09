package middleware

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"attendance_app/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// TokenTTL is how long an operator access token stays valid.
const TokenTTL = 12 * time.Hour

// AuthMiddleware creates a gin middleware for JWT authentication
func AuthMiddleware(tokens *TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header must be in the format: Bearer {token}"})
			c.Abort()
			return
		}

		claims, err := tokens.Validate(parts[1])
		if err != nil {
			log.Printf("Token validation error: %v", err)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		c.Set("operator", claims.Operator)
		c.Next()
	}
}

// TokenService signs and checks operator tokens.
type TokenService struct {
	JWTSecret    []byte
	PasswordHash string
}

func NewTokenService(jwtSecret []byte, passwordHash string) *TokenService {
	return &TokenService{
		JWTSecret:    jwtSecret,
		PasswordHash: passwordHash,
	}
}

// ErrInvalidCredentials is returned by Login for a wrong or unconfigured password.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Login checks the operator password and returns a signed access token.
func (s *TokenService) Login(password string) (models.LoginResponse, error) {
	if s.PasswordHash == "" || !VerifyPassword(s.PasswordHash, password) {
		return models.LoginResponse{}, ErrInvalidCredentials
	}
	token, err := s.GenerateToken()
	if err != nil {
		return models.LoginResponse{}, err
	}
	return models.LoginResponse{AccessToken: token, ExpiresIn: int64(TokenTTL.Seconds())}, nil
}

func (s *TokenService) GenerateToken() (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &models.Claims{
		Operator: models.OperatorSubject,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   models.OperatorSubject,
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	})
	return token.SignedString(s.JWTSecret)
}

func (s *TokenService) Validate(tokenString string) (*models.Claims, error) {
	claims := &models.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.JWTSecret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// VerifyPassword checks if a password matches the hashed version
func VerifyPassword(hashedPassword, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}

// HashPassword creates a bcrypt hash of a password
func HashPassword(password string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}
