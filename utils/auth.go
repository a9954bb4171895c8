package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/advisorhub/agentcrm/config"
	"github.com/advisorhub/agentcrm/models"
)

var jwtSecret = []byte(config.LoadConfig().JWTKey)

// GenerateToken signs a session token for the advisor.
func GenerateToken(agent models.Agent) (string, error) {
	claims := jwt.MapClaims{
		"name":  agent.Name,
		"email": agent.Email,
		"phone": agent.Phone,
		"exp":   time.Now().Add(time.Hour * 24 * 30).Unix(), // 30 days
		"iat":   time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(jwtSecret)
	if err != nil {
		Logger.Error().Err(err).Msg("token signing failed")
		return "", err
	}

	return tokenString, nil
}

// ParseToken validates a session token and returns its claims.
func ParseToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return jwtSecret, nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}
