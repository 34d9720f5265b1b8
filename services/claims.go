package services

import (
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"

	"github.com/CPU-commits/LMS_Backend/models"
)

// Token lifetime, mirrors the 30d expiry the SPA expects
const TOKEN_EXPIRES = time.Hour * 24 * 30

type Claims struct {
	ID       string
	Name     string
	Email    string
	UserType string
}

func (claims *Claims) IsAdmin() bool {
	return claims.UserType == models.ADMIN
}

func NewClaimsFromContext(ctx *gin.Context) (*Claims, bool) {
	user, exists := ctx.Get("user")
	if !exists {
		return nil, false
	}
	claims, ok := user.(*Claims)
	return claims, ok
}

func NewAuthToken(user *models.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"_id":   user.ID.Hex(),
		"name":  user.Name,
		"email": user.Email,
		"role":  user.Role,
		"exp":   time.Now().Add(TOKEN_EXPIRES).Unix(),
	})
	return token.SignedString([]byte(settingsData.JWT_SECRET_KEY))
}

func VerifyToken(tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(settingsData.JWT_SECRET_KEY), nil
	})
	if err != nil {
		return nil, err
	}
	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	claims := &Claims{}
	if id, ok := mapClaims["_id"].(string); ok {
		claims.ID = id
	}
	if name, ok := mapClaims["name"].(string); ok {
		claims.Name = name
	}
	if email, ok := mapClaims["email"].(string); ok {
		claims.Email = email
	}
	if role, ok := mapClaims["role"].(string); ok {
		claims.UserType = role
	}
	if claims.ID == "" || claims.UserType == "" {
		return nil, fmt.Errorf("invalid token claims")
	}
	return claims, nil
}
