package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pageza/ghibli-kitchen/backend/internal/middleware"
)

// KitchenAuth issues and checks the bearer tokens that identify a kitchen.
// Tokens carry no expiry: losing one means losing access to the kitchen.
type KitchenAuth struct {
	jwtSecret string
}

func NewKitchenAuth(jwtSecret string) *KitchenAuth {
	return &KitchenAuth{jwtSecret: jwtSecret}
}

// NewKitchen allocates a kitchen id and returns it with its token.
func (s *KitchenAuth) NewKitchen() (string, string, error) {
	kitchenID := uuid.New().String()
	token, err := s.GenerateToken(kitchenID)
	if err != nil {
		return "", "", err
	}
	return kitchenID, token, nil
}

func (s *KitchenAuth) GenerateToken(kitchenID string) (string, error) {
	claims := jwt.MapClaims{
		"kitchen_id": kitchenID,
		"iat":        time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

func (s *KitchenAuth) ValidateToken(tokenString string) (*middleware.KitchenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		kitchenIDStr, ok := claims["kitchen_id"].(string)
		if !ok {
			return nil, errors.New("invalid token claims")
		}

		kitchenID, err := uuid.Parse(kitchenIDStr)
		if err != nil {
			return nil, err
		}

		return &middleware.KitchenClaims{KitchenID: kitchenID.String()}, nil
	}

	return nil, errors.New("invalid token")
}
