package util

import (
	"aluno_ai_backend/internal/model"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

type Claims struct {
	UserID uint           `json:"user_id,omitempty"`
	RA     int            `json:"ra,omitempty"`
	Name   string         `json:"name,omitempty"`
	Role   model.UserRole `json:"role"`
	jwt.RegisteredClaims
}

// GenerateStudentJWT issues a session token for a student identified by RA.
// Students have no account row; the RA claim is the session key.
func GenerateStudentJWT(ra int, name, secret string, expiration time.Duration) (string, error) {
	claims := &Claims{
		RA:   ra,
		Name: name,
		Role: model.RoleStudent,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func GenerateStaffJWT(user *model.User, secret string, expiration time.Duration) (string, error) {
	claims := &Claims{
		UserID: user.ID,
		Name:   user.Name,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func ParseJWT(tokenString, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, err
}

func GetUserFromContext(c *gin.Context) *Claims {
	user, exists := c.Get("user")
	if !exists {
		return nil
	}
	claims, ok := user.(*Claims)
	if !ok {
		return nil
	}
	return claims
}

// SessionIDFromContext returns the JWT issued-at timestamp as a stable
// per-session identifier for conversation history boundaries.
func SessionIDFromContext(c *gin.Context) string {
	claims := GetUserFromContext(c)
	if claims == nil || claims.IssuedAt == nil {
		return ""
	}
	return claims.IssuedAt.Time.Format("20060102150405")
}
